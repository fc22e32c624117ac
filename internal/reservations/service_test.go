package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

type stubReservations struct {
	lastToken  string
	lastFilter string
	cancelled  []int64
}

func (s *stubReservations) MyReservations(_ context.Context, token, statusFilter string) (*coreapi.ReservationList, error) {
	s.lastToken = token
	s.lastFilter = statusFilter
	return &coreapi.ReservationList{Total: 3}, nil
}

func (s *stubReservations) MyReservationStats(_ context.Context, token string) (*coreapi.ReservationStats, error) {
	s.lastToken = token
	return &coreapi.ReservationStats{TotalReservations: 3}, nil
}

func (s *stubReservations) Reservation(_ context.Context, token string, id int64) (*coreapi.Reservation, error) {
	s.lastToken = token
	return &coreapi.Reservation{ID: id}, nil
}

func (s *stubReservations) CancelReservation(_ context.Context, token string, id int64) (*coreapi.MessageResponse, error) {
	s.lastToken = token
	s.cancelled = append(s.cancelled, id)
	return &coreapi.MessageResponse{Message: "Reservacion cancelada"}, nil
}

func TestListForwardsKnownFilter(t *testing.T) {
	core := &stubReservations{}
	svc, err := NewService(core)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.List(context.Background(), "tok", "completed"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if core.lastFilter != "completed" || core.lastToken != "tok" {
		t.Fatalf("filter or token not forwarded: %q %q", core.lastFilter, core.lastToken)
	}

	if _, err := svc.List(context.Background(), "tok", ""); err != nil {
		t.Fatalf("list without filter: %v", err)
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	svc, _ := NewService(&stubReservations{})

	_, err := svc.List(context.Background(), "tok", "archivada")
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCancelValidatesID(t *testing.T) {
	core := &stubReservations{}
	svc, _ := NewService(core)

	if _, err := svc.Cancel(context.Background(), "tok", 0); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := svc.Cancel(context.Background(), "tok", 15); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(core.cancelled) != 1 || core.cancelled[0] != 15 {
		t.Fatalf("unexpected cancels %v", core.cancelled)
	}
}

func TestGetValidatesID(t *testing.T) {
	svc, _ := NewService(&stubReservations{})
	if _, err := svc.Get(context.Background(), "tok", -1); err == nil {
		t.Fatal("expected validation error")
	}
	r, err := svc.Get(context.Background(), "tok", 9)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.ID != 9 {
		t.Fatalf("unexpected reservation %+v", r)
	}
}
