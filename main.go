package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"railbot/config"
	"railbot/engine"
	"railbot/game"
	"railbot/history"
	"railbot/protocol"
)

func main() {
	// Stdout belongs to the referee; all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad environment configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	reader := protocol.NewReader(os.Stdin)
	frame, err := reader.ReadInit()
	if err != nil {
		log.Fatal().Err(err).Msg("initialization frame unreadable")
	}
	state, err := game.NewGameState(frame.MyID, frame.Width, frame.Height, frame.Tiles, frame.Towns)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid initialization data")
	}

	recorder := history.Nop()
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.HistoryDB).Msg("history store unavailable, recording disabled")
		} else {
			recorder = store
			defer store.Close()
		}
	}

	e := engine.New(state, reader, os.Stdout, recorder)
	if err := e.Run(); err != nil {
		log.Error().Err(err).Msg("match aborted")
	}
}
