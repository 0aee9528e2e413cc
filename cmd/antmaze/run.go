package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/gridgraph"
	"github.com/katalvlaran/antcolony/maze"
	"github.com/katalvlaran/antcolony/mazegen"
	"github.com/katalvlaran/antcolony/snapshot"
)

type runFlags struct {
	configPath    string
	width, height int
	hard          bool
	ants          int
	iterations    int
	seed          int64
	mazeSeed      int64
	snapshotDir   string
	metricsAddr   string
	trace         string
	stopAtOptimal bool
	showPath      bool
}

func newRunCmd() *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the colony on a maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd, rf)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runColony(ctx, cfg, rf, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rf.configPath, "config", "c", "", "YAML configuration file")
	f.IntVar(&rf.width, "width", 0, "maze width (overrides config)")
	f.IntVar(&rf.height, "height", 0, "maze height (overrides config)")
	f.BoolVar(&rf.hard, "hard", false, "random-wall maze (overrides config)")
	f.IntVar(&rf.ants, "ants", 0, "colony size (overrides config)")
	f.IntVar(&rf.iterations, "iterations", 0, "round budget (overrides config)")
	f.Int64Var(&rf.seed, "seed", 0, "colony seed (overrides config)")
	f.Int64Var(&rf.mazeSeed, "maze-seed", 0, "maze generator seed (overrides config)")
	f.StringVar(&rf.snapshotDir, "snapshot-dir", "", "CSV frame directory, empty disables (overrides config)")
	f.StringVar(&rf.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address (overrides config)")
	f.StringVar(&rf.trace, "trace", "", "span exporter: none or stdout (overrides config)")
	f.BoolVar(&rf.stopAtOptimal, "stop-at-optimal", false, "stop once the best path matches the BFS optimum")
	f.BoolVar(&rf.showPath, "show-path", false, "print the maze with the best path")
	return cmd
}

// loadRunConfig loads the file and applies the flags the user actually set.
func loadRunConfig(cmd *cobra.Command, rf *runFlags) (config.Config, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("width") {
		cfg.Maze.Width = rf.width
	}
	if set("height") {
		cfg.Maze.Height = rf.height
	}
	if set("hard") {
		cfg.Maze.Hard = rf.hard
	}
	if set("ants") {
		cfg.Colony.Ants = rf.ants
	}
	if set("iterations") {
		cfg.Colony.Iterations = rf.iterations
	}
	if set("seed") {
		cfg.Colony.Seed = rf.seed
	}
	if set("maze-seed") {
		cfg.Maze.Seed = rf.mazeSeed
	}
	if set("snapshot-dir") {
		cfg.Snapshot.Dir = rf.snapshotDir
	}
	if set("metrics-addr") {
		cfg.Metrics.Addr = rf.metricsAddr
	}
	if set("trace") {
		cfg.Trace.Exporter = rf.trace
	}
	return cfg, cfg.Validate()
}

func runColony(ctx context.Context, cfg config.Config, rf *runFlags, stdout, stderr io.Writer) error {
	start := time.Now()
	logger := cfg.Log.NewLogger(stderr).With("run_id", uuid.NewString())

	tp, shutdownTracer, err := initTracer(cfg.Trace.Exporter, stderr)
	if err != nil {
		return err
	}
	defer shutdownTracer()

	grid, mst, err := mazegen.Generate(ctx, cfg.Maze.Width, cfg.Maze.Height, cfg.Maze.Hard,
		mazegen.WithSeed(cfg.Maze.Seed),
		mazegen.WithWallChance(cfg.Maze.WallChance),
		mazegen.WithMaxAttempts(cfg.Maze.MaxAttempts),
		mazegen.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	optimal, err := gridgraph.OptimalLength(grid)
	if err != nil {
		return fmt.Errorf("maze check: %w", err)
	}
	logger.Info("maze ready",
		"width", grid.Width(), "height", grid.Height(), "hard", cfg.Maze.Hard,
		"attempts", mst.Attempts, "walls", mst.Walls, "pockets", mst.Pockets,
		"pocket_cells", mst.PocketCells, "optimal_length", optimal)

	field, err := maze.NewFieldFor(grid, cfg.Colony.InitialPheromone)
	if err != nil {
		return err
	}
	view, err := maze.NewView(grid, field)
	if err != nil {
		return err
	}

	var rec *snapshot.Recorder
	if cfg.Snapshot.Dir != "" {
		rec = &snapshot.Recorder{Dir: cfg.Snapshot.Dir, Every: cfg.Snapshot.Every, Logger: logger}
		if err := rec.Clear(); err != nil {
			return err
		}
		if err := rec.Initial(view); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	metrics := colony.NewMetrics(reg)
	if cfg.Metrics.Addr != "" {
		shutdown, err := serveMetrics(cfg.Metrics.Addr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	var snapErr error
	progress := rate.Sometimes{First: 1, Interval: time.Second}
	hook := func(st colony.RoundStats) {
		progress.Do(func() {
			logger.Info("round",
				"round", st.Round,
				"of", cfg.Colony.Iterations,
				"successes", st.Successes,
				"timeouts", st.Timeouts,
				"round_best", st.RoundBest,
				"best", st.BestLength,
				"stagnation", st.Stagnation)
		})
		if rec == nil || snapErr != nil {
			return
		}
		if _, err := rec.Record(st.Round, view); err != nil {
			snapErr = err
			logger.Error("snapshot failed", "round", st.Round, "error", err)
		}
	}

	opts := []colony.Option{
		colony.WithLogger(logger),
		colony.WithMetrics(metrics),
		colony.WithRoundHook(hook),
		colony.WithTracerProvider(tp),
	}
	if rf != nil && rf.stopAtOptimal {
		opts = append(opts, colony.WithTargetLength(optimal))
	}
	col, err := colony.New(grid, field, cfg.Colony, opts...)
	if err != nil {
		return err
	}

	res, runErr := col.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if rec != nil && snapErr == nil && (rec.Every <= 0 || res.Rounds%rec.Every != 0) {
		if _, err := rec.Save(res.Rounds, view); err != nil {
			snapErr = err
		}
	}

	printSummary(stdout, res, optimal, time.Since(start))
	if rf != nil && rf.showPath && res.Found() {
		fmt.Fprint(stdout, renderPath(grid, res.Best))
	}
	return snapErr
}

func printSummary(w io.Writer, res colony.Result, optimal int, elapsed time.Duration) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	fmt.Fprintf(w, "rounds: %d\n", res.Rounds)
	if res.Found() {
		fmt.Fprintf(w, "best length: %d (optimal %d)\n", res.BestLength, optimal)
	} else {
		fmt.Fprintf(w, "best length: none (optimal %d)\n", optimal)
	}
	fmt.Fprintf(w, "seed: %d\n", res.Seed)
	fmt.Fprintf(w, "elapsed: %s\n", elapsed.Round(time.Millisecond))
}

// serveMetrics exposes reg on addr/metrics until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
