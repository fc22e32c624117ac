package coreapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rutamovil/booking-gateway/pkg/config"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	client, err := NewClient(config.CoreAPIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, srv
}

func TestLoginDecodesTokenResponse(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "ana@example.com" {
			t.Fatalf("unexpected email %q", req.Email)
		}
		json.NewEncoder(w).Encode(TokenResponse{
			Token:     "upstream-token",
			TokenType: "bearer",
			ExpiresIn: 3600,
			User:      User{ID: 9, FullName: "Ana", Email: req.Email, Role: "cliente"},
		})
	}))

	resp, err := client.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != "upstream-token" || resp.User.ID != 9 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestBearerTokenForwarded(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer core-token" {
			t.Fatalf("expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode(User{ID: 3, Role: "cliente"})
	}))

	if _, err := client.Me(context.Background(), "core-token"); err != nil {
		t.Fatalf("me: %v", err)
	}
}

func TestUpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   pkgerrors.Code
	}{
		{"unauthorized", http.StatusUnauthorized, pkgerrors.CodeUnauthorized},
		{"not found", http.StatusNotFound, pkgerrors.CodeNotFound},
		{"conflict", http.StatusConflict, pkgerrors.CodeConflict},
		{"validation", http.StatusUnprocessableEntity, pkgerrors.CodeValidation},
		{"dependency", http.StatusBadGateway, pkgerrors.CodeDependency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]string{"detail": "algo salio mal"})
			}))

			_, err := client.Me(context.Background(), "tok")
			if err == nil {
				t.Fatal("expected error")
			}
			var domainErr *pkgerrors.Error
			if !errors.As(err, &domainErr) {
				t.Fatalf("expected domain error, got %T", err)
			}
			if domainErr.Code() != tc.want {
				t.Fatalf("expected code %s, got %s", tc.want, domainErr.Code())
			}
			var upstream *UpstreamError
			if !errors.As(err, &upstream) {
				t.Fatalf("expected upstream error in chain")
			}
			if upstream.Status != tc.status || upstream.Detail != "algo salio mal" {
				t.Fatalf("upstream fields not preserved: %+v", upstream)
			}
		})
	}
}

func TestReadDetailFallsBackToRawBody(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "plain text failure")
	}))

	_, err := client.Me(context.Background(), "tok")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if upstream.Detail != "plain text failure" {
		t.Fatalf("unexpected detail %q", upstream.Detail)
	}
}

func TestQueryParamsEncoded(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/available-dates" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("origen") != "Monterrey" || r.URL.Query().Get("destino") != "Saltillo" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(AvailableDatesResponse{Origen: "Monterrey", Destino: "Saltillo"})
	}))

	if _, err := client.AvailableDates(context.Background(), "Monterrey", "Saltillo"); err != nil {
		t.Fatalf("available dates: %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	if _, err := NewClient(config.CoreAPIConfig{BaseURL: "  "}, logg); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := NewClient(config.CoreAPIConfig{BaseURL: "http://x"}, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}
