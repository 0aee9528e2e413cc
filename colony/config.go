package colony

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/antcolony/ant"
	"github.com/katalvlaran/antcolony/maze"
)

// Sentinel errors for colony construction.
var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("colony: invalid config")
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("colony: grid is nil")
)

// BonusPolicy decides in which rounds the best-ever path gets its bonus deposit.
type BonusPolicy string

const (
	// BonusAlways reinforces the best-ever path every round once one exists.
	BonusAlways BonusPolicy = "always"
	// BonusOnSuccess reinforces it only in rounds where some ant reached food.
	BonusOnSuccess BonusPolicy = "on_success"
	// BonusNever disables the elitist bonus.
	BonusNever BonusPolicy = "never"
)

// Config holds every tunable of a colony run. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Ants is the colony size.
	Ants int `json:"ants" yaml:"ants" validate:"gte=1"`
	// Iterations is the round budget.
	Iterations int `json:"iterations" yaml:"iterations" validate:"gte=1"`

	// Alpha weighs the pheromone trail, Beta the distance heuristic.
	Alpha float64 `json:"alpha" yaml:"alpha" validate:"gte=0"`
	Beta  float64 `json:"beta" yaml:"beta" validate:"gte=0"`

	// EvaporationRate is the fraction of pheromone lost each round.
	EvaporationRate float64 `json:"evaporation_rate" yaml:"evaporation_rate" validate:"gte=0,lte=1"`
	// PheromoneFloor is the minimum intensity after evaporation.
	PheromoneFloor float64 `json:"pheromone_floor" yaml:"pheromone_floor" validate:"gte=0"`
	// InitialPheromone is the intensity of every cell at start.
	InitialPheromone float64 `json:"initial_pheromone" yaml:"initial_pheromone" validate:"gte=0"`

	// DepositIntensity is the budget an elite ant spreads over its path.
	// Zero means 0.1 × width × height.
	DepositIntensity float64 `json:"deposit_intensity" yaml:"deposit_intensity" validate:"gte=0"`
	// Elite is how many of the shortest successful paths deposit each round.
	Elite int `json:"elite" yaml:"elite" validate:"gte=1"`
	// BonusFactor scales the best-ever bonus: DepositIntensity × Elite × BonusFactor.
	BonusFactor float64 `json:"bonus_factor" yaml:"bonus_factor" validate:"gte=0"`
	// BonusPolicy selects the rounds that receive the bonus.
	BonusPolicy BonusPolicy `json:"bonus_policy" yaml:"bonus_policy" validate:"oneof=always on_success never"`

	// StepTimeoutFactor caps an ant at factor × width × height steps per round.
	StepTimeoutFactor float64 `json:"step_timeout_factor" yaml:"step_timeout_factor" validate:"gt=0"`
	// StagnationLimit stops the run after that many rounds without a
	// shorter best path. Zero or negative disables it.
	StagnationLimit int `json:"stagnation_limit" yaml:"stagnation_limit"`

	// Workers bounds parallel walkers. Zero means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers" validate:"gte=0"`
	// Seed roots every per-ant random stream. Zero draws a random seed.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the reference parameters: 100 ants, 350 rounds,
// alpha=1, beta=4, 35% evaporation, floor 0.01, elite 5, stagnation 35.
func DefaultConfig() Config {
	return Config{
		Ants:              100,
		Iterations:        350,
		Alpha:             ant.DefaultAlpha,
		Beta:              ant.DefaultBeta,
		EvaporationRate:   0.35,
		PheromoneFloor:    0.01,
		InitialPheromone:  maze.DefaultInitialPheromone,
		DepositIntensity:  0,
		Elite:             5,
		BonusFactor:       0.5,
		BonusPolicy:       BonusAlways,
		StepTimeoutFactor: 2,
		StagnationLimit:   35,
		Workers:           0,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every field against its constraints.
// Returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.ActualTag()+paramSuffix(fe.Param()), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// depositFor returns the elite deposit budget for a w×h grid.
func (c Config) depositFor(w, h int) float64 {
	if c.DepositIntensity > 0 {
		return c.DepositIntensity
	}
	return 0.1 * float64(w*h)
}

// maxStepsFor returns the per-ant step ceiling for a w×h grid.
func (c Config) maxStepsFor(w, h int) int {
	n := int(c.StepTimeoutFactor * float64(w*h))
	if n < 1 {
		n = 1
	}
	return n
}
