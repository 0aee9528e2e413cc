package colony

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antcolony/ant"
)

// RunRound plays one full round: walk, evaporate, elite deposit, best-ever
// bonus and stagnation bookkeeping. If ctx ends while ants are walking the
// round is abandoned before the field is touched and ctx's error is returned.
func (c *Colony) RunRound(ctx context.Context) (RoundStats, error) {
	ctx, span := startRoundSpan(ctx, c.tracer, c.round+1)
	defer span.End()
	start := time.Now()

	if err := c.walk(ctx); err != nil {
		span.RecordError(err)
		return RoundStats{}, err
	}

	stats := RoundStats{Round: c.round + 1}
	for i, a := range c.ants {
		stats.Steps += c.outcomes[i].steps
		switch {
		case a.ReachedFood():
			stats.Successes++
		case c.outcomes[i].timedOut:
			stats.Failures++
			stats.Timeouts++
		default:
			stats.Failures++
		}
	}

	if err := c.field.Evaporate(c.cfg.EvaporationRate, c.cfg.PheromoneFloor); err != nil {
		return RoundStats{}, fmt.Errorf("colony: evaporate: %w", err)
	}

	improved, err := c.depositElite(&stats)
	if err != nil {
		return RoundStats{}, err
	}
	if err := c.depositBonus(stats.Successes > 0); err != nil {
		return RoundStats{}, err
	}

	if improved {
		c.stagnation = 0
	} else {
		c.stagnation++
	}
	c.round++

	stats.Improved = improved
	stats.BestLength = len(c.best)
	stats.Stagnation = c.stagnation
	stats.FieldTotal = c.field.Total()
	stats.Elapsed = time.Since(start)

	setRoundSpanResult(span, stats)
	c.metrics.observe(stats)
	c.logger.Debug("round finished",
		"round", stats.Round,
		"successes", stats.Successes,
		"failures", stats.Failures,
		"timeouts", stats.Timeouts,
		"round_best", stats.RoundBest,
		"best", stats.BestLength,
		"stagnation", stats.Stagnation,
		"elapsed", stats.Elapsed,
	)
	if c.hook != nil {
		c.hook(stats)
	}
	return stats, nil
}

// walk resets every ant and runs it to completion on a bounded worker pool.
// Each ant is owned by exactly one goroutine; the field is only read.
func (c *Colony) walk(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, a := range c.ants {
		if gctx.Err() != nil {
			break
		}
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a.Reset()
			steps, timedOut := ant.Walk(a, c.maxSteps)
			c.outcomes[i] = outcome{steps: steps, timedOut: timedOut}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// depositElite lets the shortest successful paths of the round deposit.
// Ties keep ant index order. Reports whether the best-ever path improved.
func (c *Colony) depositElite(stats *RoundStats) (bool, error) {
	c.ranked = c.ranked[:0]
	for i, a := range c.ants {
		if a.ReachedFood() {
			c.ranked = append(c.ranked, i)
		}
	}
	if len(c.ranked) == 0 {
		return false, nil
	}
	sort.SliceStable(c.ranked, func(i, j int) bool {
		return c.ants[c.ranked[i]].PathLen() < c.ants[c.ranked[j]].PathLen()
	})
	stats.RoundBest = c.ants[c.ranked[0]].PathLen()

	n := c.cfg.Elite
	if n > len(c.ranked) {
		n = len(c.ranked)
	}
	improved := false
	for _, idx := range c.ranked[:n] {
		path := c.ants[idx].Path()
		if err := c.field.Deposit(path, c.deposit); err != nil {
			return false, fmt.Errorf("colony: deposit ant %d: %w", idx, err)
		}
		if len(c.best) == 0 || len(path) < len(c.best) {
			c.best = path
			improved = true
		}
	}
	return improved, nil
}

// depositBonus reinforces the best-ever path according to BonusPolicy.
func (c *Colony) depositBonus(roundSucceeded bool) error {
	if len(c.best) == 0 || c.cfg.BonusFactor == 0 {
		return nil
	}
	switch c.cfg.BonusPolicy {
	case BonusNever:
		return nil
	case BonusOnSuccess:
		if !roundSucceeded {
			return nil
		}
	}
	bonus := c.deposit * float64(c.cfg.Elite) * c.cfg.BonusFactor
	if err := c.field.Deposit(c.best, bonus); err != nil {
		return fmt.Errorf("colony: bonus deposit: %w", err)
	}
	return nil
}
