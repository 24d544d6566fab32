package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/league-tracker/internal/config"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

type captureServer struct {
	mu       sync.Mutex
	requests int
	auth     string
	body     string
}

func (c *captureServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.requests++
		c.auth = r.Header.Get("Authorization")
		c.body = string(body)
		c.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})
}

func betterStackTestConfig(endpoint string) config.Config {
	return config.Config{
		BetterStackEnabled:  true,
		BetterStackEndpoint: endpoint,
		BetterStackToken:    "secret-token",
		BetterStackTimeout:  2 * time.Second,
		BetterStackMinLevel: logging.LevelError,
		ServiceName:         "league-tracker-api",
		AppEnv:              config.EnvDev,
	}
}

func TestInitBetterStackLogger_ShipsBatch(t *testing.T) {
	t.Parallel()

	capture := &captureServer{}
	server := httptest.NewServer(capture.handler())
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackTestConfig(server.URL), logging.NewNop())
	if err != nil {
		t.Fatalf("init betterstack logger: %v", err)
	}

	logger.ErrorContext(context.Background(), "recompute failed", "team_id", int64(3))
	logger.Error("store unavailable")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown logger: %v", err)
	}

	capture.mu.Lock()
	defer capture.mu.Unlock()
	if capture.requests == 0 {
		t.Fatalf("expected Better Stack endpoint to receive a request")
	}
	if capture.auth != "Bearer secret-token" {
		t.Fatalf("unexpected authorization header: %q", capture.auth)
	}
	if !strings.HasPrefix(capture.body, "[") || !strings.HasSuffix(capture.body, "]") {
		t.Fatalf("expected JSON array body, got %q", capture.body)
	}
	if !strings.Contains(capture.body, `"message":"store unavailable"`) {
		t.Fatalf("expected shipped entry in body, got %q", capture.body)
	}
}

func TestInitBetterStackLogger_RespectsMinLevel(t *testing.T) {
	t.Parallel()

	capture := &captureServer{}
	server := httptest.NewServer(capture.handler())
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackTestConfig(server.URL), logging.NewNop())
	if err != nil {
		t.Fatalf("init betterstack logger: %v", err)
	}

	logger.InfoContext(context.Background(), "info log should not be shipped")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown logger: %v", err)
	}

	capture.mu.Lock()
	defer capture.mu.Unlock()
	if capture.requests != 0 {
		t.Fatalf("expected no request for info log, got %d", capture.requests)
	}
}

func TestNormalizeBetterStackEndpoint(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"in.logs.betterstack.com":  "https://in.logs.betterstack.com",
		"http://localhost:9000":    "http://localhost:9000",
		" https://logs.example.io": "https://logs.example.io",
	}
	for in, want := range cases {
		if got := normalizeBetterStackEndpoint(in); got != want {
			t.Fatalf("normalizeBetterStackEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}
