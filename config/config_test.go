package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "info", cfg.LogLevel)
		require.Empty(t, cfg.HistoryDB)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("RAILBOT_LOG_LEVEL", "debug")
		t.Setenv("RAILBOT_HISTORY_DB", "/tmp/turns.db")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "/tmp/turns.db", cfg.HistoryDB)
	})
}
