package httpapi

import (
	"context"

	"github.com/riskibarqy/league-tracker/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler entry points get spans; helpers and middleware ride on the otelhttp server span.
var apiTracer = tracing.New("league-tracker/internal/interfaces/httpapi", tracing.WithNamePrefix("httpapi.Handler."))

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiTracer.Start(ctx, name)
}
