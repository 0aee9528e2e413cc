package colony_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/colony"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := colony.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Ants)
	assert.Equal(t, 350, cfg.Iterations)
	assert.Equal(t, 1.0, cfg.Alpha)
	assert.Equal(t, 4.0, cfg.Beta)
	assert.Equal(t, 0.35, cfg.EvaporationRate)
	assert.Equal(t, 0.01, cfg.PheromoneFloor)
	assert.Equal(t, 5, cfg.Elite)
	assert.Equal(t, 35, cfg.StagnationLimit)
	assert.Equal(t, colony.BonusAlways, cfg.BonusPolicy)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*colony.Config)
		ok     bool
	}{
		{"zero ants", func(c *colony.Config) { c.Ants = 0 }, false},
		{"zero iterations", func(c *colony.Config) { c.Iterations = 0 }, false},
		{"negative alpha", func(c *colony.Config) { c.Alpha = -1 }, false},
		{"negative beta", func(c *colony.Config) { c.Beta = -0.5 }, false},
		{"rate above one", func(c *colony.Config) { c.EvaporationRate = 1.2 }, false},
		{"negative floor", func(c *colony.Config) { c.PheromoneFloor = -0.01 }, false},
		{"zero elite", func(c *colony.Config) { c.Elite = 0 }, false},
		{"unknown bonus policy", func(c *colony.Config) { c.BonusPolicy = "sometimes" }, false},
		{"zero timeout factor", func(c *colony.Config) { c.StepTimeoutFactor = 0 }, false},
		{"negative workers", func(c *colony.Config) { c.Workers = -1 }, false},
		{"stagnation disabled", func(c *colony.Config) { c.StagnationLimit = -1 }, true},
		{"pure heuristic", func(c *colony.Config) { c.Alpha = 0 }, true},
		{"full evaporation", func(c *colony.Config) { c.EvaporationRate = 1 }, true},
		{"on success bonus", func(c *colony.Config) { c.BonusPolicy = colony.BonusOnSuccess }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := colony.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, colony.ErrInvalidConfig)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", colony.Running.String())
	assert.Equal(t, "converged", colony.Converged.String())
	assert.Equal(t, "stagnated", colony.Stagnated.String())
	assert.Equal(t, "exhausted_iterations", colony.ExhaustedIterations.String())
	assert.Equal(t, "canceled", colony.Canceled.String())
	assert.Equal(t, "unknown", colony.Status(42).String())
}
