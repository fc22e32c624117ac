package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rutamovil/booking-gateway/api/middleware"
	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/api/validators"
	"github.com/rutamovil/booking-gateway/internal/admin"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

func AdminSummary(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary, err := svc.Summary(ctx, middleware.UpstreamTokenFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func AdminSales(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		report, err := svc.Sales(ctx, middleware.UpstreamTokenFromContext(ctx), limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

func AdminPaymentAlerts(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		alerts, err := svc.PaymentAlerts(ctx, middleware.UpstreamTokenFromContext(ctx), limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, alerts)
	}
}

func AdminCRMCases(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		report, err := svc.CRMCases(ctx, middleware.UpstreamTokenFromContext(ctx), limit, r.URL.Query().Get("status_filter"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

func adminPaging(r *http.Request) (skip, limit int, err error) {
	skip, err = validators.ParseQueryInt(r, "skip", 0, 0, 1<<30)
	if err != nil {
		return 0, 0, err
	}
	limit, err = validators.ParseQueryInt(r, "limit", 0, 0, 10000)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func AdminUsers(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		skip, limit, err := adminPaging(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		users, err := svc.Users(ctx, middleware.UpstreamTokenFromContext(ctx), skip, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, users)
	}
}

type updateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func AdminUpdateUserRole(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := validators.ParsePathID(chi.URLParam(r, "userId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var body updateUserRoleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.UpdateUserRole(ctx, middleware.UpstreamTokenFromContext(ctx), userID, body.Role)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func AdminReservations(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		skip, limit, err := adminPaging(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		list, err := svc.Reservations(ctx, middleware.UpstreamTokenFromContext(ctx), skip, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func AdminUpdateReservation(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParsePathID(chi.URLParam(r, "reservationId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var body coreapi.AdminReservationUpdate
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.UpdateReservation(ctx, middleware.UpstreamTokenFromContext(ctx), id, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func AdminVehicles(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		skip, limit, err := adminPaging(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		list, err := svc.Vehicles(ctx, middleware.UpstreamTokenFromContext(ctx), skip, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func AdminUpdateVehicle(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var body coreapi.AdminVehicleUpdate
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.UpdateVehicle(ctx, middleware.UpstreamTokenFromContext(ctx), id, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
