package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	pkgauth "github.com/rutamovil/booking-gateway/pkg/auth"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

var (
	allowedReservationStatus = map[string]struct{}{
		"pending": {}, "confirmed": {}, "in_progress": {}, "completed": {}, "cancelled": {},
	}
	allowedVehicleStatus = map[string]struct{}{
		"available": {}, "reserved": {}, "in_use": {}, "maintenance": {}, "unavailable": {},
	}
)

// Service backs the back-office dashboard. Every call replays the admin's
// upstream token; role gating happens in the HTTP middleware.
type Service interface {
	Summary(ctx context.Context, upstreamToken string) (*coreapi.AdminSummary, error)
	Sales(ctx context.Context, upstreamToken string, limit int) (*SalesReport, error)
	PaymentAlerts(ctx context.Context, upstreamToken string, limit int) (*coreapi.PaymentAlerts, error)
	CRMCases(ctx context.Context, upstreamToken string, limit int, statusFilter string) (*coreapi.CRMReport, error)
	Users(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminUserList, error)
	UpdateUserRole(ctx context.Context, upstreamToken string, userID int64, role string) (*coreapi.UserRoleUpdateResult, error)
	Reservations(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminReservationList, error)
	UpdateReservation(ctx context.Context, upstreamToken string, id int64, update coreapi.AdminReservationUpdate) (*coreapi.AdminReservationUpdateResult, error)
	Vehicles(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminVehicleList, error)
	UpdateVehicle(ctx context.Context, upstreamToken string, id int64, update coreapi.AdminVehicleUpdate) (*coreapi.AdminVehicleUpdateResult, error)
}

// SalesReport mirrors the upstream sales payload with money as decimals, so
// the dashboard renders exact figures instead of floats.
type SalesReport struct {
	Totals       SalesTotals        `json:"totals"`
	Transactions []SalesTransaction `json:"transactions"`
}

type SalesTotals struct {
	Day                   decimal.Decimal `json:"day"`
	Month                 decimal.Decimal `json:"month"`
	ClosedReservations    int             `json:"closed_reservations"`
	CancelledReservations int             `json:"cancelled_reservations"`
	AverageTicket         decimal.Decimal `json:"average_ticket"`
	PaidCount             int             `json:"paid_count"`
	RefundPending         int             `json:"refund_pending"`
}

type SalesTransaction struct {
	ID                int64           `json:"id"`
	Folio             string          `json:"folio"`
	Client            string          `json:"client"`
	Channel           string          `json:"channel"`
	PaymentMethod     string          `json:"payment_method"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	ReservationStatus string          `json:"reservation_status"`
	RefundStatus      string          `json:"refund_status"`
	IsPaid            bool            `json:"is_paid"`
}

type adminClient interface {
	AdminSummaryReport(ctx context.Context, token string) (*coreapi.AdminSummary, error)
	AdminSalesReport(ctx context.Context, token string, limit int) (*coreapi.AdminSales, error)
	AdminPaymentAlerts(ctx context.Context, token string, limit int) (*coreapi.PaymentAlerts, error)
	AdminCRMCases(ctx context.Context, token string, limit int) (*coreapi.CRMReport, error)
	AdminUsers(ctx context.Context, token string, skip, limit int) (*coreapi.AdminUserList, error)
	AdminUpdateUserRole(ctx context.Context, token string, userID int64, req coreapi.UserRoleUpdate) (*coreapi.UserRoleUpdateResult, error)
	AdminReservations(ctx context.Context, token string, skip, limit int) (*coreapi.AdminReservationList, error)
	AdminUpdateReservation(ctx context.Context, token string, id int64, req coreapi.AdminReservationUpdate) (*coreapi.AdminReservationUpdateResult, error)
	AdminVehicles(ctx context.Context, token string, skip, limit int) (*coreapi.AdminVehicleList, error)
	AdminUpdateVehicle(ctx context.Context, token string, id int64, req coreapi.AdminVehicleUpdate) (*coreapi.AdminVehicleUpdateResult, error)
}

type service struct {
	core adminClient
}

// NewService constructs the back-office service.
func NewService(core adminClient) (Service, error) {
	if core == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	return &service{core: core}, nil
}

func (s *service) Summary(ctx context.Context, upstreamToken string) (*coreapi.AdminSummary, error) {
	return s.core.AdminSummaryReport(ctx, upstreamToken)
}

func (s *service) Sales(ctx context.Context, upstreamToken string, limit int) (*SalesReport, error) {
	raw, err := s.core.AdminSalesReport(ctx, upstreamToken, clampLimit(limit, 50, 200))
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		Totals: SalesTotals{
			Day:                   money(raw.Totals.Day),
			Month:                 money(raw.Totals.Month),
			ClosedReservations:    raw.Totals.ClosedReservations,
			CancelledReservations: raw.Totals.CancelledReservations,
			AverageTicket:         money(raw.Totals.AverageTicket),
			PaidCount:             raw.Totals.PaidCount,
			RefundPending:         raw.Totals.RefundPending,
		},
		Transactions: make([]SalesTransaction, 0, len(raw.Transactions)),
	}
	for _, tx := range raw.Transactions {
		report.Transactions = append(report.Transactions, SalesTransaction{
			ID:                tx.ID,
			Folio:             tx.Folio,
			Client:            tx.Client,
			Channel:           tx.Channel,
			PaymentMethod:     tx.PaymentMethod,
			Amount:            money(tx.Amount),
			Status:            tx.Status,
			ReservationStatus: tx.ReservationStatus,
			RefundStatus:      tx.RefundStatus,
			IsPaid:            tx.IsPaid,
		})
	}
	return report, nil
}

func (s *service) PaymentAlerts(ctx context.Context, upstreamToken string, limit int) (*coreapi.PaymentAlerts, error) {
	return s.core.AdminPaymentAlerts(ctx, upstreamToken, clampLimit(limit, 50, 200))
}

// CRMCases filters by case status at the gateway; the core API only supports
// a limit.
func (s *service) CRMCases(ctx context.Context, upstreamToken string, limit int, statusFilter string) (*coreapi.CRMReport, error) {
	report, err := s.core.AdminCRMCases(ctx, upstreamToken, clampLimit(limit, 80, 200))
	if err != nil {
		return nil, err
	}

	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	if statusFilter == "" {
		return report, nil
	}

	filtered := make([]coreapi.CRMCase, 0, len(report.Cases))
	for _, c := range report.Cases {
		if strings.EqualFold(c.Status, statusFilter) {
			filtered = append(filtered, c)
		}
	}
	report.Cases = filtered
	return report, nil
}

func (s *service) Users(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminUserList, error) {
	return s.core.AdminUsers(ctx, upstreamToken, clampSkip(skip), clampLimit(limit, 100, 500))
}

func (s *service) UpdateUserRole(ctx context.Context, upstreamToken string, userID int64, role string) (*coreapi.UserRoleUpdateResult, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "usuario invalido")
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if !pkgauth.Role(role).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rol invalido")
	}
	return s.core.AdminUpdateUserRole(ctx, upstreamToken, userID, coreapi.UserRoleUpdate{Role: role})
}

func (s *service) Reservations(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminReservationList, error) {
	return s.core.AdminReservations(ctx, upstreamToken, clampSkip(skip), clampLimit(limit, 100, 500))
}

func (s *service) UpdateReservation(ctx context.Context, upstreamToken string, id int64, update coreapi.AdminReservationUpdate) (*coreapi.AdminReservationUpdateResult, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservacion invalida")
	}
	if update.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*update.Status))
		if _, ok := allowedReservationStatus[status]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "estatus de reservacion invalido")
		}
		update.Status = &status
	}
	return s.core.AdminUpdateReservation(ctx, upstreamToken, id, update)
}

func (s *service) Vehicles(ctx context.Context, upstreamToken string, skip, limit int) (*coreapi.AdminVehicleList, error) {
	return s.core.AdminVehicles(ctx, upstreamToken, clampSkip(skip), clampLimit(limit, 100, 500))
}

func (s *service) UpdateVehicle(ctx context.Context, upstreamToken string, id int64, update coreapi.AdminVehicleUpdate) (*coreapi.AdminVehicleUpdateResult, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehiculo invalido")
	}
	if update.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*update.Status))
		if _, ok := allowedVehicleStatus[status]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "estatus de vehiculo invalido")
		}
		update.Status = &status
	}
	if update.PricePerDay != nil && update.PricePerDay.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el precio por dia no puede ser negativo")
	}
	if update.PricePerHour != nil && update.PricePerHour.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "el precio por hora no puede ser negativo")
	}
	return s.core.AdminUpdateVehicle(ctx, upstreamToken, id, update)
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}
