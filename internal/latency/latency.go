package latency

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

type Config struct {
	Min time.Duration // e.g. 500ms
	Max time.Duration // exclusive, e.g. 1s
}

func DefaultConfig() Config {
	return Config{
		Min: 500 * time.Millisecond,
		Max: 1000 * time.Millisecond,
	}
}

// Disabled returns a config that never sleeps.
func Disabled() Config {
	return Config{}
}

// Simulator delays callers by a uniformly random duration in [Min, Max)
// to emulate a network round trip. A nil *Simulator never sleeps.
type Simulator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

func New(cfg Config, rng *rand.Rand) *Simulator {
	if cfg.Min < 0 {
		cfg.Min = 0
	}
	if cfg.Max < cfg.Min {
		cfg.Max = cfg.Min
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{cfg: cfg, rng: rng}
}

// Next returns the next delay. When Max <= Min the delay is exactly Min.
func (s *Simulator) Next() time.Duration {
	if s == nil {
		return 0
	}
	span := s.cfg.Max - s.cfg.Min
	if span <= 0 {
		return s.cfg.Min
	}

	// rand.Rand is not safe for concurrent use
	s.mu.Lock()
	jitter := time.Duration(s.rng.Int63n(int64(span)))
	s.mu.Unlock()

	return s.cfg.Min + jitter
}

// Wait sleeps for Next() or until ctx is done, whichever comes first.
func (s *Simulator) Wait(ctx context.Context) error {
	d := s.Next()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
