package colony

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antcolony/ant"
	"github.com/katalvlaran/antcolony/maze"
)

// Colony owns the ant pool and the pheromone field of one maze.
// It is not safe for concurrent use: drive it from a single goroutine.
type Colony struct {
	cfg   Config
	grid  *maze.Grid
	field *maze.Field
	view  maze.View

	ants     []*ant.Ant
	outcomes []outcome
	ranked   []int

	seed     int64
	workers  int
	maxSteps int
	deposit  float64
	target   int

	logger  *slog.Logger
	metrics *Metrics
	hook    func(RoundStats)
	tracer  trace.Tracer

	round      int
	best       []maze.Pos
	stagnation int
}

// outcome is written by exactly one walker per round.
type outcome struct {
	steps    int
	timedOut bool
}

// New builds a colony of cfg.Ants ants on grid. When field is nil a fresh
// field with cfg.InitialPheromone is created; otherwise it must match the
// grid dimensions and is updated in place.
//
// Errors: ErrNilGrid, ErrInvalidConfig, maze.ErrInvalidDimensions (field
// mismatch), ant.ErrInvalidWeight.
func New(grid *maze.Grid, field *maze.Field, cfg Config, opts ...Option) (*Colony, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if field == nil {
		var err error
		if field, err = maze.NewFieldFor(grid, cfg.InitialPheromone); err != nil {
			return nil, fmt.Errorf("colony: field: %w", err)
		}
	}
	view, err := maze.NewView(grid, field)
	if err != nil {
		return nil, fmt.Errorf("colony: %w", err)
	}

	seed := cfg.Seed
	if o.seedSet {
		seed = o.seed
	}
	seeder := ant.NewSeeder(seed)

	workers := cfg.Workers
	if o.workers > 0 {
		workers = o.workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Ants {
		workers = cfg.Ants
	}

	c := &Colony{
		cfg:      cfg,
		grid:     grid,
		field:    field,
		view:     view,
		ants:     make([]*ant.Ant, cfg.Ants),
		outcomes: make([]outcome, cfg.Ants),
		ranked:   make([]int, 0, cfg.Ants),
		seed:     seeder.Parent(),
		workers:  workers,
		maxSteps: cfg.maxStepsFor(grid.Width(), grid.Height()),
		deposit:  cfg.depositFor(grid.Width(), grid.Height()),
		target:   o.target,
		logger:   o.logger,
		metrics:  o.metrics,
		hook:     o.hook,
		tracer:   o.tracer,
	}
	for i := range c.ants {
		a, err := ant.New(view, ant.WithWeights(cfg.Alpha, cfg.Beta), ant.WithRand(seeder.Rand()))
		if err != nil {
			return nil, fmt.Errorf("colony: ant %d: %w", i, err)
		}
		c.ants[i] = a
	}

	c.logger.Debug("colony created",
		"ants", cfg.Ants,
		"workers", workers,
		"seed", c.seed,
		"max_steps", c.maxSteps,
		"deposit", c.deposit,
	)

	return c, nil
}

// Run plays rounds until the colony converges, stagnates, spends its
// Iterations budget or ctx ends. Rounds already played by RunRound count
// toward the budget. On cancellation the partial Result is returned together
// with the context error.
func (c *Colony) Run(ctx context.Context) (Result, error) {
	ctx, span := startRunSpan(ctx, c.tracer, c.cfg, c.grid.Width(), c.grid.Height(), c.seed)
	defer span.End()

	res := Result{Status: Running, Seed: c.seed}
	var runErr error
	for res.Status == Running {
		if c.round >= c.cfg.Iterations {
			res.Status = ExhaustedIterations
			break
		}
		if err := ctx.Err(); err != nil {
			res.Status, runErr = Canceled, err
			break
		}
		stats, err := c.RunRound(ctx)
		if err != nil {
			if ctx.Err() != nil {
				res.Status = Canceled
			}
			runErr = err
			break
		}
		res.History = append(res.History, stats)
		res.Status = c.status()
	}

	res.Rounds = c.round
	res.Best = c.Best()
	res.BestLength = len(c.best)
	setRunSpanResult(span, res, runErr)

	c.logger.Info("colony stopped",
		"status", res.Status.String(),
		"rounds", res.Rounds,
		"best_length", res.BestLength,
		"stagnation", c.stagnation,
	)
	return res, runErr
}

// status evaluates the stop conditions after a round.
func (c *Colony) status() Status {
	switch {
	case c.target > 0 && len(c.best) > 0 && len(c.best) <= c.target:
		return Converged
	case c.cfg.StagnationLimit > 0 && c.stagnation >= c.cfg.StagnationLimit:
		return Stagnated
	case c.round >= c.cfg.Iterations:
		return ExhaustedIterations
	default:
		return Running
	}
}

// Best returns a copy of the best-ever path, nil before the first success.
func (c *Colony) Best() []maze.Pos {
	if len(c.best) == 0 {
		return nil
	}
	out := make([]maze.Pos, len(c.best))
	copy(out, c.best)
	return out
}

// BestLength returns the length of the best-ever path, 0 if none.
func (c *Colony) BestLength() int { return len(c.best) }

// Round returns the number of completed rounds.
func (c *Colony) Round() int { return c.round }

// Stagnation returns the number of consecutive rounds without improvement.
func (c *Colony) Stagnation() int { return c.stagnation }

// View returns a read-only view of the grid and the field.
func (c *Colony) View() maze.View { return c.view }

// Seed returns the root seed of the per-ant random streams.
func (c *Colony) Seed() int64 { return c.seed }

// Ants returns the colony size.
func (c *Colony) Ants() int { return len(c.ants) }
