package ant

import (
	"errors"
	"math/rand"
)

// Sentinel errors for ant construction.
var (
	// ErrNilView is returned when New receives a zero maze.View.
	ErrNilView = errors.New("ant: view is not initialized")
	// ErrInvalidWeight is returned for a negative or non-finite alpha or beta.
	ErrInvalidWeight = errors.New("ant: weights must be finite and non-negative")
)

const (
	// HeuristicEpsilon keeps the heuristic finite on the food cell.
	HeuristicEpsilon = 1e-5
	// MinPheromone replaces smaller intensities before exponentiation so a
	// zero trail never collapses the distribution when alpha > 0.
	MinPheromone = 1e-10

	// DefaultAlpha is the standard pheromone weight.
	DefaultAlpha = 1.0
	// DefaultBeta is the standard heuristic weight.
	DefaultBeta = 4.0
	// ScoutBeta is the heuristic weight of the pure-heuristic scout used to
	// validate generated mazes.
	ScoutBeta = 5.0
)

// Option configures an Ant at construction.
type Option func(*options)

type options struct {
	alpha, beta float64
	rng         *rand.Rand
}

func defaultOptions() options {
	return options{alpha: DefaultAlpha, beta: DefaultBeta}
}

// WithWeights sets the pheromone (alpha) and heuristic (beta) exponents.
func WithWeights(alpha, beta float64) Option {
	return func(o *options) {
		o.alpha, o.beta = alpha, beta
	}
}

// WithRand makes the ant draw from rng. The ant takes ownership of it.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed seeds the ant's private generator deterministically.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = NewRand(seed)
	}
}
