package httpapi

import (
	"context"
	"testing"
)

func TestAPITracer_HandlerPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.CreateMatch", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apiTracer.Allows(tt.in); got != tt.want {
				t.Fatalf("apiTracer.Allows(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoParentReturnsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.ListTeams")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent")
	}
}

func TestShouldTraceRequest(t *testing.T) {
	cases := map[string]bool{
		"/healthz":                false,
		" /HEALTHZ ":              false,
		"/readyz":                 false,
		"/v1/teams":               true,
		"/v1/matches/1":           true,
		"/v1/standings/recompute": true,
		"/docs":                   true,
	}
	for path, want := range cases {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}
