package storage

import "github.com/charmbracelet/log"

// HighScoreKeeper adapts a Store to a single mode's best score.
// Storage failures are logged and read as 0; they never reach the game.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScoreKeeper returns a keeper for gameID. A nil store yields a keeper
// that reads 0 and discards writes. A nil logger discards warnings.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	return &HighScoreKeeper{store: store, gameID: gameID, logger: logger}
}

// ReadHighScore returns the stored best score, or 0 on any failure.
func (k *HighScoreKeeper) ReadHighScore() int {
	if k.store == nil {
		return 0
	}
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.warn("read high score", err)
		return 0
	}
	return best
}

// WriteHighScoreIfGreater stores score if it beats the stored best.
func (k *HighScoreKeeper) WriteHighScoreIfGreater(score int) {
	if k.store == nil {
		return
	}
	updated, err := k.store.RecordBest(k.gameID, score)
	if err != nil {
		k.warn("write high score", err)
		return
	}
	if updated && k.logger != nil {
		k.logger.Debug("new high score", "game", k.gameID, "score", score)
	}
}

func (k *HighScoreKeeper) warn(action string, err error) {
	if k.logger != nil {
		k.logger.Warn("storage: "+action, "game", k.gameID, "err", err)
	}
}
