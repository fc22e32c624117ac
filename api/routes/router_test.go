package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rutamovil/booking-gateway/pkg/auth"
	"github.com/rutamovil/booking-gateway/pkg/auth/session"
	"github.com/rutamovil/booking-gateway/pkg/config"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type fakeSessions struct {
	records map[string]*session.Record
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (*session.Record, error) {
	if rec, ok := f.records[sessionID]; ok {
		return rec, nil
	}
	return nil, session.ErrSessionNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080", CORSOrigins: []string{"http://localhost:3000"}},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "rutamovil", ExpirationMinutes: 30},
	}
}

func newTestRouter(t *testing.T, sessions *fakeSessions) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewRouter(testConfig(), logg, nil, sessions, Services{}, prometheus.NewRegistry())
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPrivateRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRouteRejectsClientRole(t *testing.T) {
	cfg := testConfig()
	sessions := &fakeSessions{records: map[string]*session.Record{
		"sess-1": {UserID: 42, Role: auth.RoleCliente, UpstreamToken: "core-token"},
	}}
	token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
		UserID:    42,
		Email:     "ana@example.com",
		Role:      auth.RoleCliente,
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	router := newTestRouter(t, sessions)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/summary", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
