package reservations

import (
	"context"
	"fmt"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

// Reservation statuses the core API persists.
var knownStatuses = map[string]struct{}{
	"pending":     {},
	"confirmed":   {},
	"in_progress": {},
	"completed":   {},
	"cancelled":   {},
}

// Service exposes the authenticated user's reservation operations.
type Service interface {
	List(ctx context.Context, upstreamToken, statusFilter string) (*coreapi.ReservationList, error)
	Stats(ctx context.Context, upstreamToken string) (*coreapi.ReservationStats, error)
	Get(ctx context.Context, upstreamToken string, id int64) (*coreapi.Reservation, error)
	Cancel(ctx context.Context, upstreamToken string, id int64) (*coreapi.MessageResponse, error)
}

type reservationClient interface {
	MyReservations(ctx context.Context, token, statusFilter string) (*coreapi.ReservationList, error)
	MyReservationStats(ctx context.Context, token string) (*coreapi.ReservationStats, error)
	Reservation(ctx context.Context, token string, id int64) (*coreapi.Reservation, error)
	CancelReservation(ctx context.Context, token string, id int64) (*coreapi.MessageResponse, error)
}

type service struct {
	core reservationClient
}

// NewService constructs the reservation proxy service.
func NewService(core reservationClient) (Service, error) {
	if core == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	return &service{core: core}, nil
}

func (s *service) List(ctx context.Context, upstreamToken, statusFilter string) (*coreapi.ReservationList, error) {
	if statusFilter != "" {
		if _, ok := knownStatuses[statusFilter]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("estado de reservacion desconocido: %s", statusFilter))
		}
	}
	return s.core.MyReservations(ctx, upstreamToken, statusFilter)
}

func (s *service) Stats(ctx context.Context, upstreamToken string) (*coreapi.ReservationStats, error) {
	return s.core.MyReservationStats(ctx, upstreamToken)
}

func (s *service) Get(ctx context.Context, upstreamToken string, id int64) (*coreapi.Reservation, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservacion invalida")
	}
	return s.core.Reservation(ctx, upstreamToken, id)
}

func (s *service) Cancel(ctx context.Context, upstreamToken string, id int64) (*coreapi.MessageResponse, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservacion invalida")
	}
	return s.core.CancelReservation(ctx, upstreamToken, id)
}
