package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jauhararifin/puzzle"
)

const (
	UITermloop = "termloop"
	UITcell    = "tcell"

	// ConfigPathKey names the directory that holds puzzle.yaml.
	ConfigPathKey = "config-path"
)

type Config struct {
	Width         int           `mapstructure:"width"`
	Height        int           `mapstructure:"height"`
	Seed          int64         `mapstructure:"seed"`
	WinLines      int           `mapstructure:"win_lines"`
	IntroDelay    time.Duration `mapstructure:"intro_delay"`
	OutroDelay    time.Duration `mapstructure:"outro_delay"`
	LogFile       string        `mapstructure:"log_file"`
	UI            string        `mapstructure:"ui"`
	OpponentsFile string        `mapstructure:"opponents_file"`
	Opponent      string        `mapstructure:"opponent"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", puzzle.DefaultWidth)
	v.SetDefault("height", puzzle.DefaultHeight)
	v.SetDefault("seed", 0)
	v.SetDefault("win_lines", puzzle.DefaultWinLines)
	v.SetDefault("intro_delay", puzzle.DefaultIntroDelay)
	v.SetDefault("outro_delay", puzzle.DefaultOutroDelay)
	v.SetDefault("log_file", ".puzzle.log")
	v.SetDefault("ui", UITermloop)
	v.SetDefault("opponents_file", "")
	v.SetDefault("opponent", "")
}

// Load reads puzzle.yaml from the config path (or the user config directory),
// then applies PUZZLE_* environment variables and whatever flags are bound
// to v. A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	configPath := configdir.LocalConfig("puzzle")
	if p := v.GetString(ConfigPathKey); len(p) > 0 {
		configPath = p
	}

	v.SetConfigName("puzzle")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("PUZZLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("invalid config: board must be at least 4x4, got %dx%d", c.Width, c.Height)
	}
	if c.WinLines < 1 {
		return fmt.Errorf("invalid config: win_lines must be positive, got %d", c.WinLines)
	}
	if c.IntroDelay < 0 || c.OutroDelay < 0 {
		return fmt.Errorf("invalid config: delays cannot be negative")
	}
	switch c.UI {
	case UITermloop, UITcell:
	default:
		return fmt.Errorf("invalid config: unknown ui %q", c.UI)
	}
	return nil
}

// RandomSeed returns the configured seed, or one derived from now when unset.
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
