package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
)

// Pipe is a pair of segments with a passable gap between them.
// Top spans from the ceiling line to the gap, Bottom from the gap to the ground line.
type Pipe struct {
	Top    core.Box
	Bottom core.Box
	GapY   float64 // Center of the gap
	Passed bool    // Whether the bird has scored this pipe
}

// X returns the left edge shared by both segments.
func (p Pipe) X() float64 {
	return p.Top.X
}

// Right returns the trailing edge shared by both segments.
func (p Pipe) Right() float64 {
	return p.Top.Right()
}

// PipeManager handles spawning, movement, and recycling of pipes.
//
// Pipes live in an arena of slots. Retired slots go to a free list and are
// overwritten by the next spawn, so steady-state play never allocates.
type PipeManager struct {
	slots []Pipe
	free  []int // Stack of unused slot indices
	live  []int // Slot indices in spawn order, x ascending
	view  []Pipe

	obstacles config.ObstacleConfig
	worldW    float64
	ceilingY  float64
	groundY   float64
	minGapY   float64
	maxGapY   float64

	rng          *rand.Rand
	sinceSpawnMs float64 // Time cadence accumulator
	lastSpawnX   float64 // Current x of the most recent spawn
	spawned      bool    // Whether lastSpawnX is meaningful
	lastGapY     float64 // Gap center of the most recent spawn
	placed       bool    // Whether lastGapY is meaningful
}

// NewPipeManager creates a pipe manager with the given RNG seed.
// The arena is sized for the most pipes that can be on screen at once.
func NewPipeManager(cfg config.FlappyConfig, seed int64) *PipeManager {
	capacity := int(math.Ceil(cfg.World.Width/200)) + 5

	pm := &PipeManager{
		slots:     make([]Pipe, capacity),
		free:      make([]int, 0, capacity),
		live:      make([]int, 0, capacity),
		view:      make([]Pipe, 0, capacity),
		obstacles: cfg.Obstacles,
		worldW:    cfg.World.Width,
		ceilingY:  cfg.CeilingY(),
		groundY:   cfg.GroundY(),
		minGapY:   cfg.MinGapY(),
		maxGapY:   cfg.MaxGapY(),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := capacity - 1; i >= 0; i-- {
		pm.free = append(pm.free, i)
	}
	return pm
}

// Reset retires every live pipe and forgets spawn and placement history.
// The RNG keeps its position so consecutive runs differ.
func (pm *PipeManager) Reset() {
	for i := len(pm.live) - 1; i >= 0; i-- {
		pm.free = append(pm.free, pm.live[i])
	}
	pm.live = pm.live[:0]
	pm.sinceSpawnMs = 0
	pm.lastSpawnX = 0
	pm.spawned = false
	pm.lastGapY = 0
	pm.placed = false
}

// SpawnX returns the x at which the time cadence spawns pipes.
func (pm *PipeManager) SpawnX() float64 {
	return pm.worldW + pm.obstacles.SpawnOffset
}

// Spawn places a new pipe with its left edge at x.
func (pm *PipeManager) Spawn(x float64) Pipe {
	var idx int
	if n := len(pm.free); n > 0 {
		idx = pm.free[n-1]
		pm.free = pm.free[:n-1]
	} else {
		idx = len(pm.slots)
		pm.slots = append(pm.slots, Pipe{})
	}

	gapY := pm.nextGapY()
	half := pm.obstacles.GapSize / 2
	w := pm.obstacles.PipeWidth

	pm.slots[idx] = Pipe{
		Top:    core.NewBox(x, pm.ceilingY, w, gapY-half-pm.ceilingY),
		Bottom: core.NewBox(x, gapY+half, w, pm.groundY-(gapY+half)),
		GapY:   gapY,
		Passed: false,
	}
	pm.live = append(pm.live, idx)
	pm.lastSpawnX = x
	pm.spawned = true
	return pm.slots[idx]
}

// nextGapY picks the gap center for the next spawn.
func (pm *PipeManager) nextGapY() float64 {
	mid := (pm.minGapY + pm.maxGapY) / 2

	gapY := mid
	if pm.obstacles.Placement == config.PlacementCorrelated && pm.placed {
		spread := pm.maxGapY - pm.minGapY
		gapY = core.ClampF(pm.lastGapY+(pm.rng.Float64()-0.5)*spread, pm.minGapY, pm.maxGapY)
	}

	pm.lastGapY = gapY
	pm.placed = true
	return gapY
}

// Update moves pipes left, retires the ones that left the world, and
// spawns new ones when the cadence calls for it.
func (pm *PipeManager) Update(elapsedMs float64) {
	dx := -pm.obstacles.Speed * core.FrameMultiplier(elapsedMs)

	for _, idx := range pm.live {
		pm.slots[idx].Top.X += dx
		pm.slots[idx].Bottom.X += dx
	}
	if pm.spawned {
		pm.lastSpawnX += dx
	}

	kept := pm.live[:0]
	for _, idx := range pm.live {
		if pm.slots[idx].Right() < 0 {
			pm.free = append(pm.free, idx)
			continue
		}
		kept = append(kept, idx)
	}
	pm.live = kept

	switch pm.obstacles.Cadence {
	case config.CadenceDistance:
		if !pm.spawned {
			pm.Spawn(pm.SpawnX())
		}
		for pm.lastSpawnX+pm.obstacles.Spacing <= pm.SpawnX() {
			pm.Spawn(pm.lastSpawnX + pm.obstacles.Spacing)
		}
	default:
		pm.sinceSpawnMs += elapsedMs
		if pm.sinceSpawnMs >= pm.obstacles.SpawnIntervalMs {
			pm.Spawn(pm.SpawnX())
			pm.sinceSpawnMs = 0
		}
	}
}

// CheckPassed marks the first unpassed pipe whose trailing edge is behind
// leadingX. It reports whether a pipe was marked, so each pipe scores at
// most once.
func (pm *PipeManager) CheckPassed(leadingX float64) bool {
	for _, idx := range pm.live {
		p := &pm.slots[idx]
		if !p.Passed && leadingX > p.Right() {
			p.Passed = true
			return true
		}
	}
	return false
}

// Pipes returns the live pipes in spawn order.
// The slice is reused by the next call.
func (pm *PipeManager) Pipes() []Pipe {
	pm.view = pm.view[:0]
	for _, idx := range pm.live {
		pm.view = append(pm.view, pm.slots[idx])
	}
	return pm.view
}

// Collides reports whether the hitbox overlaps any live pipe.
func (pm *PipeManager) Collides(hitbox core.Box) bool {
	return HitAnyObstacle(hitbox, pm.Pipes())
}

// Live returns the number of live pipes.
func (pm *PipeManager) Live() int {
	return len(pm.live)
}

// Free returns the number of pooled slots.
func (pm *PipeManager) Free() int {
	return len(pm.free)
}

// Capacity returns the number of slots in the arena.
func (pm *PipeManager) Capacity() int {
	return len(pm.slots)
}
