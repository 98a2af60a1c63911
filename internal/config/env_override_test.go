package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_TraceDB(t *testing.T) {
	t.Setenv("JUSTACT_DEBUG", "")
	t.Setenv("JUSTACT_TRACE_DB", "/tmp/trace.db")

	cfg := &Config{}
	cfg.applyEnvOverrides()

	assert.True(t, cfg.TraceStore.Enabled)
	assert.Equal(t, "/tmp/trace.db", cfg.TraceStore.Path)
}

func TestEnvOverrides_Debug(t *testing.T) {
	t.Setenv("JUSTACT_TRACE_DB", "")

	t.Run("unset leaves DebugMode untouched", func(t *testing.T) {
		t.Setenv("JUSTACT_DEBUG", "")
		cfg := &Config{Logging: LoggingConfig{DebugMode: true}}
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("1 enables DebugMode", func(t *testing.T) {
		t.Setenv("JUSTACT_DEBUG", "1")
		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("true enables DebugMode", func(t *testing.T) {
		t.Setenv("JUSTACT_DEBUG", "true")
		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})
}
