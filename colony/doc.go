// Package colony drives a pool of ants through repeated rounds over a shared
// pheromone field until the colony stagnates, converges or runs out of rounds.
//
// Round:
//
//  1. Reset every ant onto the nest.
//  2. Walk all ants in parallel on a bounded worker pool. Ants only read the
//     field through maze.View; a step ceiling force-fails wanderers.
//  3. Evaporate the field.
//  4. Stable-sort successful ants by path length and let up to Elite of them
//     deposit DepositIntensity along their path.
//  5. Keep the best-ever path (strictly shorter replaces it) and reinforce it
//     with a bonus deposit, subject to BonusPolicy.
//  6. Count rounds without improvement; StagnationLimit stops the run.
//
// Phases 3 to 6 run on the caller's goroutine after every walker has returned,
// so the field is never read and written at the same time and needs no lock.
//
// Termination (Status):
//
//	Running → Converged            best length reached the target length
//	        → Stagnated            StagnationLimit rounds without improvement
//	        → ExhaustedIterations  Iterations rounds done
//	        → Canceled             the context ended
//
// Observability:
//
//   - *slog.Logger via WithLogger (silent by default).
//   - Prometheus collectors via NewMetrics + WithMetrics.
//   - OpenTelemetry spans "colony.Run" and "colony.Round" from the global
//     tracer provider (no-op unless the host installs one), or from the
//     provider passed to WithTracerProvider.
//
// Errors:
//
//   - ErrInvalidConfig: Config.Validate failed.
//   - ErrNilGrid: New received a nil grid.
//   - context errors from Run / RunRound.
package colony
