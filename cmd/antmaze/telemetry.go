package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// initTracer returns the provider selected by exporter and a shutdown func
// that flushes pending spans.
func initTracer(exporter string, w io.Writer) (trace.TracerProvider, func(), error) {
	switch exporter {
	case "", "none":
		return noop.NewTracerProvider(), func() {}, nil
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("create exporter: %w", err)
		}
		// Synchronous export keeps span output ordered with the log lines.
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exp),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		return tp, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown trace exporter %q", exporter)
	}
}
