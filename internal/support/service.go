package support

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

// Reservation folios look like VT-0001; bare digits are accepted and
// normalized to the canonical form.
var folioPattern = regexp.MustCompile(`^VT-(\d{1,10})$`)

// Service covers the public contact surface: support tickets, newsletter
// subscriptions, and reviews.
type Service interface {
	CreateTicket(ctx context.Context, req coreapi.SupportTicketCreate) (*coreapi.SupportTicketResult, error)
	SubscribeNewsletter(ctx context.Context, email string) (*coreapi.NewsletterResponse, error)
	Reviews(ctx context.Context, limit int) (*coreapi.ReviewsResponse, error)
	CreateReview(ctx context.Context, req coreapi.ReviewCreate) (*coreapi.Review, error)
}

type supportClient interface {
	CreateSupportTicket(ctx context.Context, req coreapi.SupportTicketCreate) (*coreapi.SupportTicketResult, error)
	SubscribeNewsletter(ctx context.Context, req coreapi.NewsletterSubscribeRequest) (*coreapi.NewsletterResponse, error)
	Reviews(ctx context.Context, limit int) (*coreapi.ReviewsResponse, error)
	CreateReview(ctx context.Context, req coreapi.ReviewCreate) (*coreapi.Review, error)
}

type service struct {
	core supportClient
}

// NewService constructs the support service.
func NewService(core supportClient) (Service, error) {
	if core == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	return &service{core: core}, nil
}

func (s *service) CreateTicket(ctx context.Context, req coreapi.SupportTicketCreate) (*coreapi.SupportTicketResult, error) {
	folio, err := NormalizeFolio(req.Folio)
	if err != nil {
		return nil, err
	}
	req.Folio = folio

	req.Message = strings.TrimSpace(req.Message)
	if len(req.Message) < 8 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "describe el problema con al menos 8 caracteres")
	}
	req.IssueType = strings.ToLower(strings.TrimSpace(req.IssueType))
	if req.IssueType == "" {
		req.IssueType = "general"
	}

	return s.core.CreateSupportTicket(ctx, req)
}

func (s *service) SubscribeNewsletter(ctx context.Context, email string) (*coreapi.NewsletterResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "correo invalido")
	}
	return s.core.SubscribeNewsletter(ctx, coreapi.NewsletterSubscribeRequest{Email: email})
}

func (s *service) Reviews(ctx context.Context, limit int) (*coreapi.ReviewsResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.core.Reviews(ctx, limit)
}

func (s *service) CreateReview(ctx context.Context, req coreapi.ReviewCreate) (*coreapi.Review, error) {
	req.Usuario = strings.TrimSpace(req.Usuario)
	req.Comentario = strings.TrimSpace(req.Comentario)

	if req.Usuario == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre de usuario requerido")
	}
	if req.Calificacion < 1 || req.Calificacion > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "la calificacion debe estar entre 1 y 5")
	}
	if req.Comentario == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comentario requerido")
	}

	return s.core.CreateReview(ctx, req)
}

// NormalizeFolio accepts "17" or "VT-17" and returns the canonical "VT-0017".
func NormalizeFolio(raw string) (string, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "folio requerido")
	}

	if id, err := strconv.ParseInt(value, 10, 64); err == nil && id > 0 {
		return fmt.Sprintf("VT-%04d", id), nil
	}

	match := folioPattern.FindStringSubmatch(value)
	if match == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "formato de folio invalido, usa VT-0001")
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil || id <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "formato de folio invalido, usa VT-0001")
	}
	return fmt.Sprintf("VT-%04d", id), nil
}
