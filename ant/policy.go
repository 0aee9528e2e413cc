package ant

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/maze"
)

// Heuristic returns the desirability of cell m for an ant looking for food:
// 1/(manhattan(m, food) + HeuristicEpsilon).
// Complexity: O(1).
func Heuristic(m, food maze.Pos) float64 {
	return 1.0 / (float64(maze.Manhattan(m, food)) + HeuristicEpsilon)
}

// Transition computes the probability of moving to each of moves and appends
// them to dst, which is returned.
//
// For every candidate m:
//
//	attractiveness(m) = max(pheromone(m), MinPheromone)^alpha × Heuristic(m)^beta
//
// The attractiveness values are normalized into a probability simplex. If
// their sum is zero or not finite, the distribution falls back to uniform.
//
// Complexity: O(len(moves)).
func Transition(v maze.View, moves []maze.Pos, alpha, beta float64, dst []float64) []float64 {
	if len(moves) == 0 {
		return dst
	}
	food := v.Food()
	start := len(dst)
	sum := 0.0
	for _, m := range moves {
		ph, err := v.Pheromone(m)
		if err != nil || ph < MinPheromone {
			ph = MinPheromone
		}
		w := math.Pow(ph, alpha) * math.Pow(Heuristic(m, food), beta)
		dst = append(dst, w)
		sum += w
	}

	probs := dst[start:]
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		u := 1.0 / float64(len(probs))
		for i := range probs {
			probs[i] = u
		}
		return dst
	}
	for i := range probs {
		probs[i] /= sum
	}
	return dst
}

// Sample draws an index from the categorical distribution probs using one
// rng.Float64() draw. probs must be non-empty; rounding slack at the top of
// the cumulative sum falls to the last index with non-zero probability.
// Complexity: O(len(probs)).
func Sample(probs []float64, rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	last := 0
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		acc += p
		if r < acc {
			return i
		}
	}
	return last
}
