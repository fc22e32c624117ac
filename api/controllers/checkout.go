package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/api/middleware"
	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/api/validators"
	"github.com/rutamovil/booking-gateway/internal/checkout"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type beginCheckoutRequest struct {
	VehicleID      int64  `json:"vehicle_id" validate:"required,min=1"`
	VehicleName    string `json:"vehicle_name" validate:"required"`
	PricePerDay    string `json:"price_per_day" validate:"required"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	PassengerCount int    `json:"passenger_count" validate:"required,min=1"`
}

// CheckoutBegin opens a reservation intent from a vehicle selection.
func CheckoutBegin(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body beginCheckoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := decimal.NewFromString(body.PricePerDay)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price_per_day must be a decimal number"))
			return
		}

		intent, err := svc.Begin(r.Context(), middleware.UserIDFromContext(r.Context()), checkout.BeginInput{
			VehicleID:      body.VehicleID,
			VehicleName:    body.VehicleName,
			PricePerDay:    price,
			Origin:         body.Origin,
			Destination:    body.Destination,
			StartDate:      body.StartDate,
			EndDate:        body.EndDate,
			PassengerCount: body.PassengerCount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, intent)
	}
}

func CheckoutList(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		intents, err := svc.List(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"intents": intents,
			"total":   len(intents),
		})
	}
}

func CheckoutGet(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		intent, err := svc.Get(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "intentId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, intent)
	}
}

type updateCheckoutRequest struct {
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	Origin         *string `json:"origin,omitempty"`
	Destination    *string `json:"destination,omitempty"`
	PromotionID    *int64  `json:"promotion_id,omitempty"`
	ClearPromotion bool    `json:"clear_promotion,omitempty"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// CheckoutUpdate mutates intent fields and returns the refreshed quote.
func CheckoutUpdate(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateCheckoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		intent, quote, err := svc.Update(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "intentId"), checkout.UpdateInput{
			StartDate:      body.StartDate,
			EndDate:        body.EndDate,
			Origin:         body.Origin,
			Destination:    body.Destination,
			PromotionID:    body.PromotionID,
			ClearPromotion: body.ClearPromotion,
			PaymentMethod:  body.PaymentMethod,
			Notes:          body.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"intent": intent,
			"quote":  quote,
		})
	}
}

func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := svc.Quote(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "intentId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

type submitCheckoutRequest struct {
	PaymentMethod    string `json:"payment_method"`
	CardNumber       string `json:"card_number,omitempty"`
	CardCVV          string `json:"card_cvv,omitempty"`
	ChequeBank       string `json:"cheque_bank,omitempty"`
	ChequeNumber     string `json:"cheque_number,omitempty"`
	ChequeHolder     string `json:"cheque_holder,omitempty"`
	DepositBank      string `json:"deposit_bank,omitempty"`
	DepositReference string `json:"deposit_reference,omitempty"`
	DepositDate      string `json:"deposit_date,omitempty"`
}

// CheckoutSubmit validates payment details, forwards the reservation to the
// core API, and destroys the intent on success.
func CheckoutSubmit(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body submitCheckoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		reservation, err := svc.Submit(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.UpstreamTokenFromContext(ctx),
			chi.URLParam(r, "intentId"),
			checkout.PaymentDetails{
				Method:           body.PaymentMethod,
				CardNumber:       body.CardNumber,
				CardCVV:          body.CardCVV,
				ChequeBank:       body.ChequeBank,
				ChequeNumber:     body.ChequeNumber,
				ChequeHolder:     body.ChequeHolder,
				DepositBank:      body.DepositBank,
				DepositReference: body.DepositReference,
				DepositDate:      body.DepositDate,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, reservation)
	}
}

func CheckoutCancel(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Cancel(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "intentId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "intento de reservacion descartado"})
	}
}
