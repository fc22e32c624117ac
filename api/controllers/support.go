package controllers

import (
	"net/http"

	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/api/validators"
	"github.com/rutamovil/booking-gateway/internal/support"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type supportTicketRequest struct {
	Folio        string `json:"folio" validate:"required"`
	IssueType    string `json:"issue_type"`
	Message      string `json:"message" validate:"required"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

func SupportTicketCreate(svc support.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body supportTicketRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.CreateTicket(ctx, coreapi.SupportTicketCreate{
			Folio:        body.Folio,
			IssueType:    body.IssueType,
			Message:      body.Message,
			ContactName:  body.ContactName,
			ContactEmail: body.ContactEmail,
			ContactPhone: body.ContactPhone,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func NewsletterSubscribe(svc support.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body newsletterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.SubscribeNewsletter(ctx, body.Email)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func ReviewList(svc support.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, err := validators.ParseQueryInt(r, "limit", 10, 1, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.Reviews(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

type createReviewRequest struct {
	Usuario      string `json:"usuario" validate:"required"`
	Calificacion int    `json:"calificacion" validate:"required,min=1,max=5"`
	Comentario   string `json:"comentario" validate:"required"`
}

func ReviewCreate(svc support.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body createReviewRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		review, err := svc.CreateReview(ctx, coreapi.ReviewCreate{
			Usuario:      body.Usuario,
			Calificacion: body.Calificacion,
			Comentario:   body.Comentario,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}
