package colony

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName scopes the colony spans.
const tracerName = "antcolony.colony"

func defaultTracer() trace.Tracer { return otel.Tracer(tracerName) }

// Ant outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailed  = "failed"
	outcomeTimeout = "timeout"
)

// Metrics groups the Prometheus collectors a colony updates after each round.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	rounds        prometheus.Counter
	outcomes      *prometheus.CounterVec
	bestLength    prometheus.Gauge
	stagnation    prometheus.Gauge
	fieldTotal    prometheus.Gauge
	roundDuration prometheus.Histogram
}

// NewMetrics creates the colony collectors and registers them with reg.
// Panics if they are already registered there, like promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "antcolony_rounds_total",
			Help: "Total colony rounds completed",
		}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "antcolony_ant_outcomes_total",
			Help: "Ant walks by outcome",
		}, []string{"outcome"}),
		bestLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "antcolony_best_path_length",
			Help: "Length of the best-ever nest to food path, 0 before the first success",
		}),
		stagnation: f.NewGauge(prometheus.GaugeOpts{
			Name: "antcolony_stagnation_rounds",
			Help: "Consecutive rounds without a shorter best path",
		}),
		fieldTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "antcolony_pheromone_total",
			Help: "Sum of pheromone over the field after the round",
		}),
		roundDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "antcolony_round_duration_seconds",
			Help:    "Wall time of one colony round",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}),
	}
}

func (m *Metrics) observe(s RoundStats) {
	if m == nil {
		return
	}
	m.rounds.Inc()
	m.outcomes.WithLabelValues(outcomeSuccess).Add(float64(s.Successes))
	m.outcomes.WithLabelValues(outcomeFailed).Add(float64(s.Failures - s.Timeouts))
	m.outcomes.WithLabelValues(outcomeTimeout).Add(float64(s.Timeouts))
	m.bestLength.Set(float64(s.BestLength))
	m.stagnation.Set(float64(s.Stagnation))
	m.fieldTotal.Set(s.FieldTotal)
	m.roundDuration.Observe(s.Elapsed.Seconds())
}

// startRunSpan creates the span covering a whole Run.
func startRunSpan(ctx context.Context, tracer trace.Tracer, cfg Config, width, height int, seed int64) (context.Context, trace.Span) {
	return tracer.Start(ctx, "colony.Run",
		trace.WithAttributes(
			attribute.Int("colony.ants", cfg.Ants),
			attribute.Int("colony.iterations", cfg.Iterations),
			attribute.Int("maze.width", width),
			attribute.Int("maze.height", height),
			attribute.Int64("colony.seed", seed),
		),
	)
}

// setRunSpanResult records the final state of a run.
func setRunSpanResult(span trace.Span, res Result, err error) {
	span.SetAttributes(
		attribute.String("colony.status", res.Status.String()),
		attribute.Int("colony.rounds", res.Rounds),
		attribute.Int("colony.best_length", res.BestLength),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// startRoundSpan creates the span covering one round.
func startRoundSpan(ctx context.Context, tracer trace.Tracer, round int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "colony.Round",
		trace.WithAttributes(attribute.Int("colony.round", round)),
	)
}

// setRoundSpanResult records the outcome counts of a round.
func setRoundSpanResult(span trace.Span, s RoundStats) {
	span.SetAttributes(
		attribute.Int("colony.successes", s.Successes),
		attribute.Int("colony.failures", s.Failures),
		attribute.Int("colony.timeouts", s.Timeouts),
		attribute.Int("colony.best_length", s.BestLength),
		attribute.Bool("colony.improved", s.Improved),
	)
}
