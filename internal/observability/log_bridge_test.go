package observability

import (
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipLog(t *testing.T) {
	if !shouldSkipLog("http request", map[string]any{"path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipLog("http request", map[string]any{"path": "/v1/standings"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipLog("standings recomputed", map[string]any{"path": "/healthz"}) {
		t.Fatalf("did not expect non request log to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"team_id":  int64(7),
		"name":     "Arsenal",
		"trace_id": "0102030405060708090a0b0c0d0e0f10",
	})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "name" || attrs[0].Value.AsString() != "Arsenal" {
		t.Fatalf("unexpected name attribute")
	}
	if attrs[1].Key != "team_id" || attrs[1].Value.AsInt64() != 7 {
		t.Fatalf("unexpected team_id attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	v := toOTelLogValue(map[string]any{"wins": 3, "promoted": true}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if len(v.AsMap()) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(v.AsMap()))
	}

	if got := toOTelLogValue(int16(4), 0); got.AsInt64() != 4 {
		t.Fatalf("unexpected int16 conversion: %v", got)
	}
	if got := toOTelLogValue(2*time.Second, 0); got.AsString() != "2s" {
		t.Fatalf("unexpected duration conversion: %v", got)
	}
	if got := toOTelLogValue(nil, 0); got.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil, got %s", got.Kind())
	}
}

func TestContextFromTraceFields(t *testing.T) {
	ctx := contextFromTraceFields(map[string]any{
		"trace_id": "0102030405060708090a0b0c0d0e0f10",
		"span_id":  "0102030405060708",
	})
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		t.Fatalf("expected valid span context")
	}
	if spanCtx.TraceID().String() != "0102030405060708090a0b0c0d0e0f10" {
		t.Fatalf("unexpected trace id: %s", spanCtx.TraceID())
	}

	ctx = contextFromTraceFields(map[string]any{"trace_id": "not-hex", "span_id": "0102030405060708"})
	if trace.SpanContextFromContext(ctx).IsValid() {
		t.Fatalf("expected invalid span context for malformed trace id")
	}
}

func TestOTelLogCore_LevelAndFields(t *testing.T) {
	core := newOTelLogCore("test", zapcore.WarnLevel)

	if ce := core.Check(zapcore.Entry{Level: zapcore.InfoLevel}, nil); ce != nil {
		t.Fatalf("expected info entry to be rejected")
	}
	if ce := core.Check(zapcore.Entry{Level: zapcore.ErrorLevel}, nil); ce == nil {
		t.Fatalf("expected error entry to be accepted")
	}

	child := core.With([]zapcore.Field{zap.String("component", "sqlstore")}).(*otelLogCore)
	if len(child.fields) != 1 || len(core.fields) != 0 {
		t.Fatalf("With must not mutate the parent core")
	}

	err := child.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "query failed", Time: time.Now()}, []zapcore.Field{zap.Int("attempt", 1)})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
}
