// Package config provides YAML-based configuration loading for the game,
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/candy-maze/internal/game"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Game      GameConfig    `yaml:"game"`
	Prizes    PrizesConfig  `yaml:"prizes"`
	Generator string        `yaml:"generator"`
	Seed      int64         `yaml:"seed"` // 0 = time-based
	Audio     AudioConfig   `yaml:"audio"`
	Journal   JournalConfig `yaml:"journal"`
	Server    ServerConfig  `yaml:"server"`
}

// GameConfig holds round and timing parameters.
type GameConfig struct {
	RoundTime     int           `yaml:"round_time"`
	StepPoints    int           `yaml:"step_points"`
	Rows          int           `yaml:"rows"`
	Cols          int           `yaml:"cols"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	PrizeText     time.Duration `yaml:"prize_text"`
	LevelEndDelay time.Duration `yaml:"level_end_delay"`
}

// PrizesConfig configures both prizes.
type PrizesConfig struct {
	Lollipop PrizeConfig `yaml:"lollipop"`
	IceCream PrizeConfig `yaml:"ice_cream"`
}

// PrizeConfig configures one prize.
type PrizeConfig struct {
	Label       string        `yaml:"label"`
	BonusPoints int           `yaml:"bonus_points"`
	BonusTime   int           `yaml:"bonus_time"`
	SpawnDelay  time.Duration `yaml:"spawn_delay,omitempty"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// JournalConfig controls event journaling.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address string `yaml:"address"`
	HostKey string `yaml:"host_key"`
}

// Default returns the built-in configuration. It matches the embedded
// defaults/candymaze.yaml.
func Default() Config {
	r := game.DefaultRules()
	iceCream := prizeConfig(r.Prize(game.IceCream))
	iceCream.SpawnDelay = 0 // follows round_time
	return Config{
		Game: GameConfig{
			RoundTime:     r.RoundTime,
			StepPoints:    r.StepPoints,
			Rows:          r.Rows,
			Cols:          r.Cols,
			TickInterval:  r.TickInterval,
			PrizeText:     r.PrizeTextDuration,
			LevelEndDelay: r.LevelEndDelay,
		},
		Prizes: PrizesConfig{
			Lollipop: prizeConfig(r.Prize(game.Lollipop)),
			IceCream: iceCream,
		},
		Generator: "backtracker",
		Audio:     AudioConfig{Enabled: true, Volume: 0.5},
		Journal:   JournalConfig{Path: "~/.candymaze/journal.db"},
		Server:    ServerConfig{Address: ":23234"},
	}
}

func prizeConfig(p game.PrizeRules) PrizeConfig {
	return PrizeConfig{
		Label:       p.Label,
		BonusPoints: p.BonusPoints,
		BonusTime:   p.BonusTime,
		SpawnDelay:  p.SpawnDelay,
	}
}

func (p PrizeConfig) rules() game.PrizeRules {
	return game.PrizeRules{
		Label:       p.Label,
		BonusPoints: p.BonusPoints,
		BonusTime:   p.BonusTime,
		SpawnDelay:  p.SpawnDelay,
	}
}

// Rules converts the game section into engine rules. The ice cream delay
// is derived from the round time.
func (c Config) Rules() game.Rules {
	iceCream := c.Prizes.IceCream.rules()
	iceCream.SpawnDelay = game.IceCreamSpawnDelay(c.Game.RoundTime)

	return game.Rules{
		RoundTime:  c.Game.RoundTime,
		StepPoints: c.Game.StepPoints,
		Rows:       c.Game.Rows,
		Cols:       c.Game.Cols,
		Prizes: [game.PrizeKinds]game.PrizeRules{
			game.Lollipop: c.Prizes.Lollipop.rules(),
			game.IceCream: iceCream,
		},
		TickInterval:      c.Game.TickInterval,
		PrizeTextDuration: c.Game.PrizeText,
		LevelEndDelay:     c.Game.LevelEndDelay,
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Rows < 2 || g.Cols < 2:
		return fmt.Errorf("%w: maze must be at least 2x2, got %dx%d", ErrInvalidConfig, g.Cols, g.Rows)
	case game.IceCreamSpawnDelay(g.RoundTime) <= 0:
		return fmt.Errorf("%w: round_time must be longer than %d seconds, got %d",
			ErrInvalidConfig, int(game.IceCreamLead/time.Second), g.RoundTime)
	case g.StepPoints < 0:
		return fmt.Errorf("%w: step_points must not be negative", ErrInvalidConfig)
	case g.TickInterval <= 0 || g.PrizeText <= 0 || g.LevelEndDelay <= 0:
		return fmt.Errorf("%w: tick_interval, prize_text and level_end_delay must be positive", ErrInvalidConfig)
	case c.Generator == "":
		return fmt.Errorf("%w: generator is empty", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %.2f outside 0..1", ErrInvalidConfig, c.Audio.Volume)
	}

	if c.Prizes.Lollipop.SpawnDelay <= 0 {
		return fmt.Errorf("%w: lollipop spawn_delay must be positive", ErrInvalidConfig)
	}
	if c.Prizes.IceCream.SpawnDelay != 0 {
		return fmt.Errorf("%w: ice_cream spawn_delay follows round_time and cannot be set", ErrInvalidConfig)
	}

	for name, p := range map[string]PrizeConfig{"lollipop": c.Prizes.Lollipop, "ice_cream": c.Prizes.IceCream} {
		if p.BonusPoints < 0 || p.BonusTime < 0 {
			return fmt.Errorf("%w: %s bonus must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}
