package config

import (
	"testing"

	"incomedash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_FILE", "SCATTER_SAMPLE_LIMIT", "PREVIEW_ROWS", "PPROF_ENABLED", "PPROF_PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "data/uploaded_data_history.csv", cfg.Data.File)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/tmp/income.xlsx")
	t.Setenv("SCATTER_SAMPLE_LIMIT", "0")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/income.xlsx", cfg.Data.File)
	assert.Equal(t, 0, cfg.Dashboard.ScatterSampleLimit)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "http"},
		{"negative scatter limit", "SCATTER_SAMPLE_LIMIT", "-1"},
		{"negative preview rows", "PREVIEW_ROWS", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
