package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/mafiad/internal/random Source

// Source provides the randomness used for user ids and role dealing
type Source interface {
	// Uint64 returns a uniformly distributed 64-bit value
	Uint64() uint64

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))

	// Fork returns an independent source seeded from this one
	Fork() Source
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// Rand is a Source that is safe for concurrent use. Each room forks its own
// so rooms never share the lock.
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Uint64 returns a random 64-bit value
func (r *Rand) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Uint64()
}

// Shuffle performs a Fisher-Yates shuffle of n elements
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

// Fork derives a new source from the next value of r. Forks of equally seeded
// sources produce the same sequences.
func (r *Rand) Fork() Source {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &Rand{
		random: rand.New(rand.NewSource(r.random.Int63())),
	}
}
