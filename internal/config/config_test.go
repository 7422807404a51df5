package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := ParseFlappy(DefaultFlappyYAML())
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded yaml drifted from DefaultFlappyConfig:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		for _, chase := range []bool{false, true} {
			cfg := DefaultFlappyConfig()
			ApplyFlappyPreset(&cfg, p)
			if chase {
				EnableChase(&cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s (chase=%v) rejected: %v", p, chase, err)
			}
		}
	}
}

func TestPresetValues(t *testing.T) {
	easy := DefaultFlappyConfig()
	ApplyFlappyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.Placement != PlacementFixed {
		t.Errorf("easy placement = %q, expected fixed", easy.Obstacles.Placement)
	}

	normal := DefaultFlappyConfig()
	ApplyFlappyPreset(&normal, DifficultyNormal)
	if normal != DefaultFlappyConfig() {
		t.Error("normal preset should leave defaults untouched")
	}

	hard := DefaultFlappyConfig()
	ApplyFlappyPreset(&hard, DifficultyHard)
	d := DefaultFlappyConfig().Obstacles
	if hard.Obstacles.GapSize >= d.GapSize {
		t.Errorf("hard gap %g should be narrower than %g", hard.Obstacles.GapSize, d.GapSize)
	}
	if hard.Obstacles.Speed <= d.Speed {
		t.Errorf("hard speed %g should be faster than %g", hard.Obstacles.Speed, d.Speed)
	}
	if easy.Obstacles.GapSize <= d.GapSize || easy.Obstacles.Speed >= d.Speed {
		t.Error("easy should be wider and slower than the defaults")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"":       "",
		"insane": "",
	}
	for in, want := range tests {
		if got := ParseDifficultyPreset(in); got != want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero world", func(c *FlappyConfig) { c.World.Width = 0 }},
		{"zero bird", func(c *FlappyConfig) { c.Bird.Height = 0 }},
		{"start outside world", func(c *FlappyConfig) { c.Bird.StartY = 1.5 }},
		{"positive jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 3 }},
		{"zero jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 0 }},
		{"zero terminal velocity", func(c *FlappyConfig) { c.Physics.MaxFallSpeed = 0 }},
		{"no room for bird", func(c *FlappyConfig) { c.Bird.Height = 400 }},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapSize = 0 }},
		{"zero speed", func(c *FlappyConfig) { c.Obstacles.Speed = 0 }},
		{"zero interval", func(c *FlappyConfig) { c.Obstacles.SpawnIntervalMs = 0 }},
		{"inverted gap range", func(c *FlappyConfig) { c.Obstacles.GapMargin = 200 }},
		{"negative top segment", func(c *FlappyConfig) { c.Obstacles.GapSize = 200 }},
		{"unknown placement", func(c *FlappyConfig) { c.Obstacles.Placement = "spiral" }},
		{"unknown cadence", func(c *FlappyConfig) { c.Obstacles.Cadence = "random" }},
		{"overlapping pipes by time", func(c *FlappyConfig) { c.Obstacles.SpawnIntervalMs = 500 }},
		{"overlapping pipes by distance", func(c *FlappyConfig) {
			c.Obstacles.Cadence = CadenceDistance
			c.Obstacles.Spacing = 100
		}},
		{"negative bird padding", func(c *FlappyConfig) { c.Bird.HitboxPadding = -1 }},
		{"bird padding empties hitbox", func(c *FlappyConfig) { c.Bird.HitboxPadding = 30 }},
		{"bird padding empties short hitbox", func(c *FlappyConfig) {
			c.Bird.Width = 80
			c.Bird.Height = 20
			c.Bird.HitboxPadding = 10
		}},
		{"chaser padding empties hitbox", func(c *FlappyConfig) {
			c.Chaser.Enabled = true
			c.Chaser.HitboxPadding = 24
		}},
		{"chaser zero speed", func(c *FlappyConfig) {
			c.Chaser.Enabled = true
			c.Chaser.Speed = 0
		}},
		{"chaser smoothing above one", func(c *FlappyConfig) {
			c.Chaser.Enabled = true
			c.Chaser.Smoothing = 1.5
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestPaddingJustBelowHalfIsValid(t *testing.T) {
	cfg := DefaultFlappyConfig()
	EnableChase(&cfg)
	cfg.Bird.HitboxPadding = 29.5
	cfg.Chaser.HitboxPadding = 23.5
	if err := cfg.Validate(); err != nil {
		t.Errorf("padding that leaves a 1x1 hitbox should be valid: %v", err)
	}
}

func TestDisabledChaserIsNotValidated(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Chaser.Speed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled chaser should not be validated: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	doc := "obstacles:\n  gap_size: 140\n  placement: fixed\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg.Obstacles.GapSize != 140 || cfg.Obstacles.Placement != PlacementFixed {
		t.Errorf("overrides not applied: %+v", cfg.Obstacles)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics != DefaultFlappyConfig().Physics {
		t.Errorf("physics should keep defaults, got %+v", cfg.Physics)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("expected parse error")
	}

	invalidDoc := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidDoc, []byte("physics:\n  jump_impulse: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(invalidDoc)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("expected embedded defaults when no files exist")
	}

	// Local ./configs wins over embedded
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := "obstacles:\n  gap_size: 140\n"
	if err := os.WriteFile(filepath.Join(work, "configs", "flappy.yaml"), []byte(local), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlappy("")
	if cfg.Obstacles.GapSize != 140 {
		t.Errorf("local config not used, gap = %g", cfg.Obstacles.GapSize)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".skybrick", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := "obstacles:\n  gap_size: 130\n"
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), []byte(user), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlappy("")
	if cfg.Obstacles.GapSize != 130 {
		t.Errorf("user config not used, gap = %g", cfg.Obstacles.GapSize)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := MarshalFlappy(DefaultFlappyConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseFlappy(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config does not decode to the same values")
	}
}
