package colony

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option customizes a Colony at construction time.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	seed    int64
	seedSet bool
	workers int
	hook    func(RoundStats)
	target  int
	tracer  trace.Tracer
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: defaultTracer(),
	}
}

// WithLogger routes colony logs to l. A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records every round into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSeed overrides Config.Seed. Zero still means a random seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithWorkers overrides Config.Workers.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRoundHook calls fn on the controller goroutine after every round.
func WithRoundHook(fn func(RoundStats)) Option {
	return func(o *options) { o.hook = fn }
}

// WithTargetLength makes Run stop with Converged once the best path is at
// most n cells long. n <= 0 disables the check.
func WithTargetLength(n int) Option {
	return func(o *options) { o.target = n }
}

// WithTracerProvider takes colony spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracer = tp.Tracer(tracerName)
		}
	}
}
