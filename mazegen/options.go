package mazegen

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/antcolony/ant"
)

// Sentinel errors for maze generation.
var (
	// ErrWallChance indicates a wall probability outside [0,1).
	ErrWallChance = errors.New("mazegen: wall chance must be in [0,1)")
	// ErrAttemptsExhausted indicates no solvable layout within MaxAttempts.
	ErrAttemptsExhausted = errors.New("mazegen: no solvable maze within attempt limit")
)

// DefaultWallChance is the probability of walling a pillar-adjacent cell.
const DefaultWallChance = 0.2

// Option configures a generator call.
type Option func(*Options)

// Options holds generation parameters. Use DefaultOptions and Option
// helpers rather than filling it by hand.
type Options struct {
	WallChance  float64
	MaxAttempts int // 0 means retry until solvable
	Rand        *rand.Rand
	Seed        int64
	Logger      *slog.Logger
}

// DefaultOptions returns a 20% wall chance, unbounded attempts and a random seed.
func DefaultOptions() Options {
	return Options{
		WallChance: DefaultWallChance,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWallChance sets the wall probability of candidate cells.
func WithWallChance(p float64) Option {
	return func(o *Options) { o.WallChance = p }
}

// WithMaxAttempts caps the number of candidates; 0 removes the cap.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithRand uses rng for every draw. It takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithSeed makes generation reproducible. Zero means a random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes per-attempt debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.WallChance >= 0 && o.WallChance < 1) {
		return o, ErrWallChance
	}
	if o.Rand != nil {
		o.Seed = 0
		return o, nil
	}
	if o.Seed == 0 {
		o.Seed = ant.RandomSeed()
	}
	o.Rand = ant.NewRand(o.Seed)
	return o, nil
}
