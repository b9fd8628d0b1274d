package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/latency"
)

type Config struct {
	Addr           string
	Latency        latency.Config
	RequestTimeout time.Duration
	SeedTasks      bool
}

func Default() Config {
	return Config{
		Addr:           ":8080",
		Latency:        latency.DefaultConfig(),
		RequestTimeout: 3 * time.Second,
		SeedTasks:      true,
	}
}

func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv. Unset or empty variables keep
// their defaults.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv("ADDR")); v != "" {
		cfg.Addr = v
	}

	var err error
	if cfg.Latency.Min, err = duration(getenv, "LATENCY_MIN", cfg.Latency.Min); err != nil {
		return Config{}, err
	}
	if cfg.Latency.Max, err = duration(getenv, "LATENCY_MAX", cfg.Latency.Max); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = duration(getenv, "REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(getenv("SEED_TASKS")); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SEED_TASKS must be a boolean: %q", v)
		}
		cfg.SeedTasks = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Latency.Max < c.Latency.Min {
		return errors.New("LATENCY_MAX must not be less than LATENCY_MIN")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 500ms: %q", key, v)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
