package support

import (
	"context"
	"errors"
	"testing"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

type stubSupport struct {
	lastTicket coreapi.SupportTicketCreate
	lastEmail  string
	lastLimit  int
	lastReview coreapi.ReviewCreate
}

func (s *stubSupport) CreateSupportTicket(_ context.Context, req coreapi.SupportTicketCreate) (*coreapi.SupportTicketResult, error) {
	s.lastTicket = req
	return &coreapi.SupportTicketResult{TicketID: 1, Folio: req.Folio}, nil
}

func (s *stubSupport) SubscribeNewsletter(_ context.Context, req coreapi.NewsletterSubscribeRequest) (*coreapi.NewsletterResponse, error) {
	s.lastEmail = req.Email
	return &coreapi.NewsletterResponse{Success: true, Email: req.Email}, nil
}

func (s *stubSupport) Reviews(_ context.Context, limit int) (*coreapi.ReviewsResponse, error) {
	s.lastLimit = limit
	return &coreapi.ReviewsResponse{TotalReviews: 3}, nil
}

func (s *stubSupport) CreateReview(_ context.Context, req coreapi.ReviewCreate) (*coreapi.Review, error) {
	s.lastReview = req
	return &coreapi.Review{ID: 4, Usuario: req.Usuario}, nil
}

func TestNormalizeFolio(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"17", "VT-0017", false},
		{"vt-17", "VT-0017", false},
		{"VT-0042", "VT-0042", false},
		{" 8 ", "VT-0008", false},
		{"", "", true},
		{"FAC-17", "", true},
		{"VT-", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeFolio(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeFolio(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeFolio(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeFolio(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateTicketNormalizesAndForwards(t *testing.T) {
	core := &stubSupport{}
	svc, err := NewService(core)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.CreateTicket(context.Background(), coreapi.SupportTicketCreate{
		Folio:     "vt-9",
		IssueType: " Facturacion ",
		Message:   "  La factura no llego a mi correo.  ",
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if core.lastTicket.Folio != "VT-0009" {
		t.Fatalf("folio not normalized: %q", core.lastTicket.Folio)
	}
	if core.lastTicket.IssueType != "facturacion" {
		t.Fatalf("issue type not normalized: %q", core.lastTicket.IssueType)
	}
	if core.lastTicket.Message != "La factura no llego a mi correo." {
		t.Fatalf("message not trimmed: %q", core.lastTicket.Message)
	}
}

func TestCreateTicketRejectsShortMessage(t *testing.T) {
	svc, _ := NewService(&stubSupport{})

	_, err := svc.CreateTicket(context.Background(), coreapi.SupportTicketCreate{Folio: "1", Message: "corto"})
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubscribeNewsletter(t *testing.T) {
	core := &stubSupport{}
	svc, _ := NewService(core)

	if _, err := svc.SubscribeNewsletter(context.Background(), "no-arroba"); err == nil {
		t.Fatal("expected validation error")
	}
	resp, err := svc.SubscribeNewsletter(context.Background(), " ana@example.com ")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if !resp.Success || core.lastEmail != "ana@example.com" {
		t.Fatalf("unexpected result %+v (sent %q)", resp, core.lastEmail)
	}
}

func TestReviewsDefaultsLimit(t *testing.T) {
	core := &stubSupport{}
	svc, _ := NewService(core)

	if _, err := svc.Reviews(context.Background(), 0); err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if core.lastLimit != 10 {
		t.Fatalf("expected default limit 10, got %d", core.lastLimit)
	}
}

func TestCreateReviewValidatesRating(t *testing.T) {
	core := &stubSupport{}
	svc, _ := NewService(core)

	for _, rating := range []int{0, 6} {
		if _, err := svc.CreateReview(context.Background(), coreapi.ReviewCreate{Usuario: "Ana", Calificacion: rating, Comentario: "ok"}); err == nil {
			t.Fatalf("expected validation error for rating %d", rating)
		}
	}

	rev, err := svc.CreateReview(context.Background(), coreapi.ReviewCreate{Usuario: " Ana ", Calificacion: 5, Comentario: "Excelente servicio"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if rev.Usuario != "Ana" {
		t.Fatalf("unexpected review %+v", rev)
	}
	if core.lastReview.Usuario != "Ana" {
		t.Fatalf("usuario not trimmed: %q", core.lastReview.Usuario)
	}
}
