package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rutamovil/booking-gateway/api/middleware"
	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/api/validators"
	"github.com/rutamovil/booking-gateway/internal/paymentmethods"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

func PaymentMethodList(svc paymentmethods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		list, err := svc.List(ctx, middleware.UpstreamTokenFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

type createPaymentMethodRequest struct {
	CardType    string `json:"card_type" validate:"required"`
	CardHolder  string `json:"card_holder" validate:"required"`
	CardLast4   string `json:"card_last4" validate:"required"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
	IsDefault   bool   `json:"is_default"`
}

func PaymentMethodCreate(svc paymentmethods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body createPaymentMethodRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.Create(ctx, middleware.UpstreamTokenFromContext(ctx), coreapi.PaymentMethodCreate{
			CardType:    body.CardType,
			CardHolder:  body.CardHolder,
			CardLast4:   body.CardLast4,
			ExpiryMonth: body.ExpiryMonth,
			ExpiryYear:  body.ExpiryYear,
			IsDefault:   body.IsDefault,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func PaymentMethodSetDefault(svc paymentmethods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParsePathID(chi.URLParam(r, "methodId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		updated, err := svc.SetDefault(ctx, middleware.UpstreamTokenFromContext(ctx), id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func PaymentMethodDelete(svc paymentmethods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParsePathID(chi.URLParam(r, "methodId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.Delete(ctx, middleware.UpstreamTokenFromContext(ctx), id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
