package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/league-tracker/internal/config"
)

func TestNewPprofServer(t *testing.T) {
	if srv := NewPprofServer(config.Config{PprofEnabled: false}); srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}

	srv := NewPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"})
	if srv == nil {
		t.Fatalf("expected server when pprof is enabled")
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected pprof index status: %d", rec.Code)
	}
}
