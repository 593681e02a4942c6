package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

// Config holds the settings shared by every command. Values come from the
// environment first; global flags override them when set.
type Config struct {
	MaxPlayers int           `env:"VOTEPOWER_MAX_PLAYERS" envDefault:"20"`
	Timeout    time.Duration `env:"VOTEPOWER_TIMEOUT"     envDefault:"0s"`
	LogLevel   string        `env:"VOTEPOWER_LOG_LEVEL"   envDefault:"warn"`
	CacheSize  int           `env:"VOTEPOWER_CACHE_SIZE"  envDefault:"128"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, xerrors.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

var globalFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "max-players",
		Usage: "reject games with more players, capped per index at its hard limit (overrides VOTEPOWER_MAX_PLAYERS)",
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Usage: "abort after this long, 0 for no limit (overrides VOTEPOWER_TIMEOUT)",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error (overrides VOTEPOWER_LOG_LEVEL)",
	},
	&cli.IntFlag{
		Name:  "cache-size",
		Usage: "results kept by the batch engine (overrides VOTEPOWER_CACHE_SIZE)",
	},
}

// settings resolves the effective Config for c and applies its log level.
func settings(c *cli.Context) (Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return Config{}, err
	}
	if c.IsSet("max-players") {
		cfg.MaxPlayers = c.Int("max-players")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("cache-size") {
		cfg.CacheSize = c.Int("cache-size")
	}

	for _, name := range []string{"votepower", "votepower/cli"} {
		if err := logging.SetLogLevel(name, cfg.LogLevel); err != nil {
			return Config{}, xerrors.Errorf("setting log level of %s: %w", name, err)
		}
	}
	log.Debugw("settings resolved", "maxPlayers", cfg.MaxPlayers, "timeout", cfg.Timeout, "cacheSize", cfg.CacheSize)

	return cfg, nil
}
