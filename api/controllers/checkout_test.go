package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/api/middleware"
	"github.com/rutamovil/booking-gateway/internal/checkout"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

type stubCheckoutService struct {
	beginUserID  int64
	beginInput   checkout.BeginInput
	intent       *checkout.Intent
	quote        *checkout.QuoteResult
	submitToken  string
	submitDetail checkout.PaymentDetails
	reservation  *coreapi.Reservation
	err          error
}

func (s *stubCheckoutService) Begin(_ context.Context, userID int64, input checkout.BeginInput) (*checkout.Intent, error) {
	s.beginUserID = userID
	s.beginInput = input
	return s.intent, s.err
}

func (s *stubCheckoutService) Get(context.Context, int64, string) (*checkout.Intent, error) {
	return s.intent, s.err
}

func (s *stubCheckoutService) List(context.Context, int64) ([]checkout.Intent, error) {
	if s.intent == nil {
		return nil, s.err
	}
	return []checkout.Intent{*s.intent}, s.err
}

func (s *stubCheckoutService) Update(context.Context, int64, string, checkout.UpdateInput) (*checkout.Intent, *checkout.QuoteResult, error) {
	return s.intent, s.quote, s.err
}

func (s *stubCheckoutService) Quote(context.Context, int64, string) (*checkout.QuoteResult, error) {
	return s.quote, s.err
}

func (s *stubCheckoutService) Submit(_ context.Context, _ int64, token, _ string, payment checkout.PaymentDetails) (*coreapi.Reservation, error) {
	s.submitToken = token
	s.submitDetail = payment
	return s.reservation, s.err
}

func (s *stubCheckoutService) Cancel(context.Context, int64, string) error {
	return s.err
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := middleware.WithIdentity(req.Context(), 42, "cliente", "sess-1", "core-token")
	return req.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCheckoutBeginCreatesIntent(t *testing.T) {
	svc := &stubCheckoutService{intent: &checkout.Intent{ID: "abc", UserID: 42, VehicleID: 5}}
	body, _ := json.Marshal(map[string]any{
		"vehicle_id":      5,
		"vehicle_name":    "Sprinter 2024",
		"price_per_day":   "1500.00",
		"origin":          "Monterrey",
		"destination":     "Saltillo",
		"passenger_count": 4,
	})
	rec := httptest.NewRecorder()

	CheckoutBegin(svc, testLogger())(rec, authedRequest(http.MethodPost, "/api/v1/checkout", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.beginUserID != 42 {
		t.Fatalf("expected user id from context, got %d", svc.beginUserID)
	}
	if !svc.beginInput.PricePerDay.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("price not forwarded: %s", svc.beginInput.PricePerDay)
	}
}

func TestCheckoutBeginRejectsBadPrice(t *testing.T) {
	svc := &stubCheckoutService{}
	body, _ := json.Marshal(map[string]any{
		"vehicle_id":      5,
		"vehicle_name":    "Sprinter 2024",
		"price_per_day":   "no-es-numero",
		"passenger_count": 4,
	})
	rec := httptest.NewRecorder()

	CheckoutBegin(svc, testLogger())(rec, authedRequest(http.MethodPost, "/api/v1/checkout", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.beginUserID != 0 {
		t.Fatal("service should not be called")
	}
}

func TestCheckoutUpdateReturnsIntentAndQuote(t *testing.T) {
	svc := &stubCheckoutService{
		intent: &checkout.Intent{ID: "abc"},
		quote: &checkout.QuoteResult{
			TotalDays: 3,
			Subtotal:  decimal.RequireFromString("4500.00"),
			Total:     decimal.RequireFromString("4500.00"),
			Valid:     true,
		},
	}
	body, _ := json.Marshal(map[string]any{"start_date": "2026-10-01", "end_date": "2026-10-04"})
	req := withURLParam(authedRequest(http.MethodPatch, "/api/v1/checkout/abc", body), "intentId", "abc")
	rec := httptest.NewRecorder()

	CheckoutUpdate(svc, testLogger())(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data struct {
			Intent checkout.Intent      `json:"intent"`
			Quote  checkout.QuoteResult `json:"quote"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data.Quote.TotalDays != 3 || !envelope.Data.Quote.Valid {
		t.Fatalf("unexpected quote: %+v", envelope.Data.Quote)
	}
}

func TestCheckoutSubmitForwardsUpstreamToken(t *testing.T) {
	svc := &stubCheckoutService{reservation: &coreapi.Reservation{ID: 99, Status: "pending"}}
	body, _ := json.Marshal(map[string]any{
		"payment_method": "tarjeta",
		"card_number":    "4111111111111111",
		"card_cvv":       "123",
	})
	req := withURLParam(authedRequest(http.MethodPost, "/api/v1/checkout/abc/submit", body), "intentId", "abc")
	rec := httptest.NewRecorder()

	CheckoutSubmit(svc, testLogger())(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submitToken != "core-token" {
		t.Fatalf("expected upstream token from context, got %q", svc.submitToken)
	}
	if svc.submitDetail.Method != "tarjeta" || svc.submitDetail.CardNumber != "4111111111111111" {
		t.Fatalf("payment details not forwarded: %+v", svc.submitDetail)
	}
}

func TestCheckoutGetMapsNotFound(t *testing.T) {
	svc := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeNotFound, "intento de reservacion no encontrado")}
	req := withURLParam(authedRequest(http.MethodGet, "/api/v1/checkout/zzz", nil), "intentId", "zzz")
	rec := httptest.NewRecorder()

	CheckoutGet(svc, testLogger())(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
