// Package tracing opens child spans for in-process layers without starting new traces.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

type Tracer struct {
	tracer   trace.Tracer
	prefixes []string
}

type Option func(*Tracer)

// WithNamePrefix restricts span creation to names with one of the given prefixes.
func WithNamePrefix(prefixes ...string) Option {
	return func(t *Tracer) {
		t.prefixes = append(t.prefixes, prefixes...)
	}
}

// WithTracer overrides the global tracer provider lookup.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Tracer) {
		t.tracer = tracer
	}
}

func New(scope string, opts ...Option) Tracer {
	t := Tracer{}
	for _, opt := range opts {
		opt(&t)
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(scope)
	}
	return t
}

// Start returns ctx unchanged and a noop span when ctx is not traced or name is filtered out.
func (t Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !t.Allows(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if len(attrs) == 0 {
		return t.tracer.Start(ctx, name)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (t Tracer) Allows(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if len(t.prefixes) == 0 {
		return true
	}
	for _, prefix := range t.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// RecordError marks span as failed. It is a no-op for a nil error.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
