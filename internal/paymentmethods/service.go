package paymentmethods

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

var allowedCardTypes = map[string]struct{}{
	"visa":       {},
	"mastercard": {},
	"amex":       {},
}

// Service manages the user's saved cards through the core API.
type Service interface {
	List(ctx context.Context, upstreamToken string) (*coreapi.PaymentMethodList, error)
	Create(ctx context.Context, upstreamToken string, req coreapi.PaymentMethodCreate) (*coreapi.PaymentMethod, error)
	SetDefault(ctx context.Context, upstreamToken string, id int64) (*coreapi.PaymentMethod, error)
	Delete(ctx context.Context, upstreamToken string, id int64) (*coreapi.MessageResponse, error)
}

type paymentMethodClient interface {
	PaymentMethods(ctx context.Context, token string) (*coreapi.PaymentMethodList, error)
	CreatePaymentMethod(ctx context.Context, token string, req coreapi.PaymentMethodCreate) (*coreapi.PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, token string, id int64) (*coreapi.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, token string, id int64) (*coreapi.MessageResponse, error)
}

type service struct {
	core paymentMethodClient
	now  func() time.Time
}

// NewService constructs the saved-cards service.
func NewService(core paymentMethodClient) (Service, error) {
	if core == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	return &service{core: core, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, upstreamToken string) (*coreapi.PaymentMethodList, error) {
	return s.core.PaymentMethods(ctx, upstreamToken)
}

// Create normalizes and validates the card fields before forwarding, so
// obviously broken submissions never leave the gateway.
func (s *service) Create(ctx context.Context, upstreamToken string, req coreapi.PaymentMethodCreate) (*coreapi.PaymentMethod, error) {
	req.CardType = strings.ToLower(strings.TrimSpace(req.CardType))
	req.CardHolder = strings.TrimSpace(req.CardHolder)
	req.CardLast4 = strings.TrimSpace(req.CardLast4)
	req.ExpiryMonth = strings.TrimSpace(req.ExpiryMonth)
	req.ExpiryYear = strings.TrimSpace(req.ExpiryYear)

	var violations []fieldViolation
	if _, ok := allowedCardTypes[req.CardType]; !ok {
		violations = append(violations, fieldViolation{Field: "card_type", Message: "Tipo de tarjeta invalido."})
	}
	if len(req.CardHolder) < 3 {
		violations = append(violations, fieldViolation{Field: "card_holder", Message: "Nombre del titular invalido."})
	}
	if len(req.CardLast4) != 4 || !isDigits(req.CardLast4) {
		violations = append(violations, fieldViolation{Field: "card_last4", Message: "Los ultimos 4 digitos deben ser numericos."})
	}
	if month, err := strconv.Atoi(req.ExpiryMonth); err != nil || month < 1 || month > 12 {
		violations = append(violations, fieldViolation{Field: "expiry_month", Message: "Mes de expiracion invalido."})
	} else {
		req.ExpiryMonth = fmt.Sprintf("%02d", month)
	}
	if year, err := strconv.Atoi(req.ExpiryYear); err != nil || len(req.ExpiryYear) != 4 {
		violations = append(violations, fieldViolation{Field: "expiry_year", Message: "Fecha de expiracion invalida."})
	} else if year < s.now().Year() {
		violations = append(violations, fieldViolation{Field: "expiry_year", Message: "La tarjeta esta vencida."})
	}
	if len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "datos de tarjeta invalidos").WithDetails(violations)
	}

	return s.core.CreatePaymentMethod(ctx, upstreamToken, req)
}

func (s *service) SetDefault(ctx context.Context, upstreamToken string, id int64) (*coreapi.PaymentMethod, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "metodo de pago invalido")
	}
	return s.core.SetDefaultPaymentMethod(ctx, upstreamToken, id)
}

func (s *service) Delete(ctx context.Context, upstreamToken string, id int64) (*coreapi.MessageResponse, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "metodo de pago invalido")
	}
	return s.core.DeletePaymentMethod(ctx, upstreamToken, id)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

type fieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
