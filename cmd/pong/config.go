package main

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/entree/game/pong"
)

// Config is read from the environment. Unset variables keep their defaults.
type Config struct {
	Width     int     `config:"PONG_WIDTH"`
	Height    int     `config:"PONG_HEIGHT"`
	BallSpeed float64 `config:"PONG_BALL_SPEED"`
	MaxSpeed  float64 `config:"PONG_MAX_SPEED"`
	DebugUI   bool    `config:"PONG_DEBUG_UI"`
	LogLevel  string  `config:"PONG_LOG_LEVEL"`
}

func defaultConfig() Config {
	world := pong.DefaultConfig()
	return Config{
		Width:     world.Width,
		Height:    world.Height,
		BallSpeed: world.BallSpeed,
		MaxSpeed:  world.MaxSpeed,
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// LoadConfig applies environment overrides to the defaults and validates the result.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "reading environment")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, eris.Errorf("arena must have a positive size, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxSpeed < 0 {
		return cfg, eris.Errorf("max speed must not be negative, got %v", cfg.MaxSpeed)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, eris.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	return cfg, nil
}

// World returns the parameters used to build the pong tree.
func (c Config) World() pong.Config {
	return pong.Config{
		Width:     c.Width,
		Height:    c.Height,
		BallSpeed: c.BallSpeed,
		MaxSpeed:  c.MaxSpeed,
	}
}

// Level returns the configured log level, which LoadConfig has validated.
func (c Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}
