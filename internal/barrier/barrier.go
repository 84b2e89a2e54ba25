// Package barrier implements the rendezvous that gates each game phase.
//
// A Barrier tracks an explicit set of expected participants. Every participant
// arrives once per generation with a payload; the arrival that completes the set
// runs the Resolver and releases all parked callers with the same result. Leaving
// participants are removed with Forfeit, which shrinks the target and may complete
// the generation on behalf of the callers already waiting.
//
// All methods must be called with the Locker held, the same way sync.Cond is used.
// Arrive releases the Locker while parked and reacquires it before returning.
package barrier

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilLocker      = errors.New("locker cannot be nil")
	ErrNilResolver    = errors.New("resolver cannot be nil")
	ErrNotExpected    = errors.New("participant not expected at this barrier")
	ErrAlreadyArrived = errors.New("participant already arrived for this phase")
)

// Resolver computes the outcome of a completed generation from the payload each
// participant arrived with. It runs with the Locker held.
type Resolver[P, R any] func(arrivals map[uint64]P) (R, error)

// Config for a barrier
type Config[P, R any] struct {
	// Locker guards the barrier and whatever state Resolve touches
	Locker sync.Locker

	// Quorum is the minimum number of expected participants before a generation
	// can complete. Values below 1 mean 1.
	Quorum int

	// Resolve runs once per generation
	Resolve Resolver[P, R]
}

type generation[P, R any] struct {
	arrivals map[uint64]P
	done     chan struct{}
	result   R
	err      error
}

func newGeneration[P, R any]() *generation[P, R] {
	return &generation[P, R]{
		arrivals: make(map[uint64]P),
		done:     make(chan struct{}),
	}
}

// Barrier is a reusable rendezvous point for an explicit participant set
type Barrier[P, R any] struct {
	l        sync.Locker
	quorum   int
	resolve  Resolver[P, R]
	expected map[uint64]struct{}
	current  *generation[P, R]
	released uint64
}

// New creates a barrier with no expected participants
func New[P, R any](cfg *Config[P, R]) (*Barrier[P, R], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Locker == nil {
		return nil, ErrNilLocker
	}

	if cfg.Resolve == nil {
		return nil, ErrNilResolver
	}

	quorum := cfg.Quorum
	if quorum < 1 {
		quorum = 1
	}

	return &Barrier[P, R]{
		l:        cfg.Locker,
		quorum:   quorum,
		resolve:  cfg.Resolve,
		expected: make(map[uint64]struct{}),
		current:  newGeneration[P, R](),
	}, nil
}

// Expect adds participants to the expected set
func (b *Barrier[P, R]) Expect(ids ...uint64) {
	for _, id := range ids {
		b.expected[id] = struct{}{}
	}
}

// Expects reports whether id is in the expected set
func (b *Barrier[P, R]) Expects(id uint64) bool {
	_, ok := b.expected[id]
	return ok
}

// Forfeit removes id from the expected set for good, withdrawing its arrival
// in the current generation. If the remaining participants have all arrived the
// generation completes. It reports whether id was expected.
func (b *Barrier[P, R]) Forfeit(id uint64) bool {
	if _, ok := b.expected[id]; !ok {
		return false
	}

	delete(b.expected, id)
	delete(b.current.arrivals, id)
	b.tryComplete()
	return true
}

// Arrive records the participant's arrival and parks until the generation
// completes or ctx ends. A caller whose context ends first withdraws its
// arrival and gets ctx.Err().
func (b *Barrier[P, R]) Arrive(ctx context.Context, id uint64, payload P) (R, error) {
	var zero R

	if _, ok := b.expected[id]; !ok {
		return zero, ErrNotExpected
	}

	gen := b.current
	if _, ok := gen.arrivals[id]; ok {
		return zero, ErrAlreadyArrived
	}
	gen.arrivals[id] = payload
	b.tryComplete()

	select {
	case <-gen.done:
		return gen.result, gen.err
	default:
	}

	b.l.Unlock()
	select {
	case <-gen.done:
	case <-ctx.Done():
	}
	b.l.Lock()

	select {
	case <-gen.done:
		return gen.result, gen.err
	default:
		delete(gen.arrivals, id)
		return zero, ctx.Err()
	}
}

// Abort releases every parked caller of the current generation with err and
// starts a fresh generation. The expected set is kept.
func (b *Barrier[P, R]) Abort(err error) {
	gen := b.current
	b.current = newGeneration[P, R]()
	gen.err = err
	close(gen.done)
}

// Target returns the number of expected participants
func (b *Barrier[P, R]) Target() int {
	return len(b.expected)
}

// Arrived returns the number of arrivals in the current generation
func (b *Barrier[P, R]) Arrived() int {
	return len(b.current.arrivals)
}

// Generation returns how many generations have completed through resolution
func (b *Barrier[P, R]) Generation() uint64 {
	return b.released
}

func (b *Barrier[P, R]) tryComplete() {
	gen := b.current
	if len(b.expected) < b.quorum || len(gen.arrivals) < len(b.expected) {
		return
	}

	// swap first so a Resolver that calls back into the barrier sees the next generation
	b.current = newGeneration[P, R]()
	b.released++
	gen.result, gen.err = b.resolve(gen.arrivals)
	close(gen.done)
}
