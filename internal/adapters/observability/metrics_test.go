package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"monastery_tours/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "monastery_http_requests_total") {
		t.Fatalf("expected monastery_http_requests_total in output")
	}
}

func TestCommunityEventsExported(t *testing.T) {
	reg := observability.InitRegistry()
	observability.ObserveCommunity("like")
	observability.SetActiveSessions(3)

	rr := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	out := rr.Body.String()
	if !strings.Contains(out, `monastery_community_events_total{event="like"}`) {
		t.Fatalf("expected like counter in output")
	}
	if !strings.Contains(out, "monastery_active_sessions 3") {
		t.Fatalf("expected active sessions gauge in output")
	}
}

func TestNewLogger_DevIsDebug(t *testing.T) {
	if l := observability.NewLogger("dev", "api"); l.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("dev logger level: %v", l.GetLevel())
	}
	if l := observability.NewLogger("prod", "api"); l.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("prod logger level: %v", l.GetLevel())
	}
}
