package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/spf13/viper"
)

func loadFrom(dir string) (Config, error) {
	v := viper.New()
	v.Set(ConfigPathKey, dir)
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)

	cfg, err := loadFrom(t.TempDir())
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, Config{
		Width:      10,
		Height:     20,
		WinLines:   5,
		IntroDelay: 2 * time.Second,
		OutroDelay: 2 * time.Second,
		LogFile:    ".puzzle.log",
		UI:         UITermloop,
	})
}

func TestLoadFile(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "puzzle.yaml"), []byte(`width: 12
height: 24
seed: 99
win_lines: 8
intro_delay: 500ms
ui: tcell
opponent: envoy
`), 0o600)
	c.Assert(err, qt.IsNil)

	cfg, err := loadFrom(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Width, qt.Equals, 12)
	c.Assert(cfg.Height, qt.Equals, 24)
	c.Assert(cfg.RandomSeed(), qt.Equals, int64(99))
	c.Assert(cfg.WinLines, qt.Equals, 8)
	c.Assert(cfg.IntroDelay, qt.Equals, 500*time.Millisecond)
	c.Assert(cfg.OutroDelay, qt.Equals, 2*time.Second)
	c.Assert(cfg.UI, qt.Equals, UITcell)
	c.Assert(cfg.Opponent, qt.Equals, "envoy")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	c.Assert(os.WriteFile(filepath.Join(dir, "puzzle.yaml"), []byte("win_lines: 8\n"), 0o600), qt.IsNil)
	t.Setenv("PUZZLE_WIN_LINES", "3")

	cfg, err := loadFrom(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.WinLines, qt.Equals, 3)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"tiny board", "width: 2\n", `invalid config: board must be at least 4x4, got 2x20`},
		{"no win lines", "win_lines: 0\n", `invalid config: win_lines must be positive, got 0`},
		{"negative delay", "outro_delay: -1s\n", `invalid config: delays cannot be negative`},
		{"unknown ui", "ui: gtk\n", `invalid config: unknown ui "gtk"`},
		{"bad yaml", "width: [\n", `reading config: .*`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			dir := t.TempDir()
			c.Assert(os.WriteFile(filepath.Join(dir, "puzzle.yaml"), []byte(tt.yaml), 0o600), qt.IsNil)

			_, err := loadFrom(dir)
			c.Assert(err, qt.ErrorMatches, tt.want)
		})
	}
}

func TestRandomSeedFallsBackToClock(t *testing.T) {
	c := qt.New(t)
	c.Assert(Config{}.RandomSeed(), qt.Not(qt.Equals), int64(0))
}
