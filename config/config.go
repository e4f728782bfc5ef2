// Package config loads the bot's runtime knobs from the environment. The
// referee passes no flags, so the environment is the only channel for
// local-run options.
package config

import (
	env "github.com/caarlos0/env/v11"
)

type Config struct {
	// LogLevel sets the zerolog level for the stderr log.
	LogLevel string `env:"RAILBOT_LOG_LEVEL" envDefault:"info"`
	// HistoryDB enables the SQLite turn recorder when set to a file path.
	HistoryDB string `env:"RAILBOT_HISTORY_DB"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
