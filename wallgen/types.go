// Package wallgen defines the random-source contract, options, and sentinel
// errors for the wall carver.
package wallgen

import "errors"

// Sentinel errors for wall carving.
var (
	// ErrNilGrid indicates Carve was called on a nil grid.
	ErrNilGrid = errors.New("wallgen: grid is nil")

	// ErrNilRand indicates Carve was called without a random source.
	ErrNilRand = errors.New("wallgen: random source is nil")

	// ErrBadTurnProbability indicates WithTurnProbability received a value
	// outside [0, 1].
	ErrBadTurnProbability = errors.New("wallgen: turn probability must be in [0,1]")
)

// Rand is the random source Carve consumes. *math/rand.Rand satisfies it;
// tests supply a seeded instance for reproducible mazes.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// defaultTurnProbability is the chance, per placed cell, that the segment
// turns 90° instead of continuing straight.
const defaultTurnProbability = 0.3

// Options configures Carve.
type Options struct {
	// TurnProbability is the per-cell chance of a 90° turn, in [0, 1].
	TurnProbability float64
}

// Option is a functional option for Carve.
type Option func(*Options)

// WithTurnProbability overrides the per-cell turn chance.
// Panics with ErrBadTurnProbability outside [0, 1].
func WithTurnProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			panic(ErrBadTurnProbability.Error())
		}
		o.TurnProbability = p
	}
}

// DefaultOptions returns the options Carve starts from before applying
// functional overrides.
func DefaultOptions() Options {
	return Options{TurnProbability: defaultTurnProbability}
}
