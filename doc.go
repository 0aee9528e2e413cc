// Package antcolony is an ant-colony optimization playground: generate a grid
// maze, release a colony of ants from the nest, and watch pheromone trails
// converge on a short route to the food.
//
// 🐜 What is antcolony?
//
//	A small, dependency-light toolkit that brings together:
//		• Mazes: pillar layouts, random-wall "hard" layouts with a solvability scout
//		• Ants: stochastic depth-first walkers with backtracking
//		• Colony: parallel rounds, evaporation, elite deposit, best-ever bonus
//		• Grid graphs: connected components and BFS optimum for reference
//		• Snapshots: CSV frames of the pheromone field for replay
//
// ✨ Why antcolony?
//
//   - Reproducible: every ant owns a seeded random stream
//   - Race-free: ants only ever see a read-only maze.View
//   - Observable: slog logs, Prometheus collectors, OpenTelemetry spans
//
// Subpackages:
//
//	maze/        Grid, CellKind, Pos, pheromone Field and the read-only View
//	ant/         the Ant state machine, transition policy, seeded RNG helpers
//	colony/      the round controller, Config, Metrics
//	mazegen/     simple and hard maze generation
//	gridgraph/   grid connectivity and shortest paths
//	snapshot/    CSV frame export
//	config/      YAML configuration for the antmaze command
//	cmd/antmaze  the command-line front end
//
// Quick ASCII example (11×11, N = nest, F = food, * = best path):
//
//	###########
//	#********N#
//	#*#.#.#.#.#
//	#*........#
//	#*#.#.#.#.#
//	#*........#
//	#*#.#.#.#.#
//	#*........#
//	#*#.#.#.#.#
//	#F........#
//	###########
//
//	go run ./cmd/antmaze run --width 41 --height 41 --hard
package antcolony
