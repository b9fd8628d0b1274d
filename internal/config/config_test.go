package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Min)
	assert.Equal(t, time.Second, cfg.Latency.Max)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.SeedTasks)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"ADDR":            "127.0.0.1:9000",
		"LATENCY_MIN":     "0",
		"LATENCY_MAX":     "0s",
		"REQUEST_TIMEOUT": "10s",
		"SEED_TASKS":      "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, time.Duration(0), cfg.Latency.Min)
	assert.Equal(t, time.Duration(0), cfg.Latency.Max)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.SeedTasks)
}

func TestLoadFrom_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad duration":      {"LATENCY_MIN": "fast"},
		"negative duration": {"LATENCY_MAX": "-1s"},
		"max below min":     {"LATENCY_MIN": "2s", "LATENCY_MAX": "1s"},
		"zero timeout":      {"REQUEST_TIMEOUT": "0s"},
		"bad bool":          {"SEED_TASKS": "maybe"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(env(vars))
			require.Error(t, err)
		})
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LATENCY_MIN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Min)
}
