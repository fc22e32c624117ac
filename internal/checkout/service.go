package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/internal/pricing"
	"github.com/rutamovil/booking-gateway/internal/promotions"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type intentStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SAdd(ctx context.Context, key string, members ...any) error
	SRem(ctx context.Context, key string, members ...any) error
	SMembers(ctx context.Context, key string) ([]string, error)
	IntentKey(userID, intentID string) string
	IntentIndexKey(userID string) string
	IntentOwnersKey() string
}

type promoResolver interface {
	Resolve(ctx context.Context, id int64) (*promotions.Promotion, error)
}

type reservationCreator interface {
	CreateReservation(ctx context.Context, token string, req coreapi.ReservationCreate) (*coreapi.Reservation, error)
}

// Service owns the reservation-intent lifecycle and the live quote. The
// core API recomputes the persisted price on submission; the quote here is
// the client-facing echo and must match it.
type Service interface {
	Begin(ctx context.Context, userID int64, input BeginInput) (*Intent, error)
	Get(ctx context.Context, userID int64, intentID string) (*Intent, error)
	List(ctx context.Context, userID int64) ([]Intent, error)
	Update(ctx context.Context, userID int64, intentID string, input UpdateInput) (*Intent, *QuoteResult, error)
	Quote(ctx context.Context, userID int64, intentID string) (*QuoteResult, error)
	Submit(ctx context.Context, userID int64, upstreamToken, intentID string, payment PaymentDetails) (*coreapi.Reservation, error)
	Cancel(ctx context.Context, userID int64, intentID string) error
}

type service struct {
	store  intentStore
	promos promoResolver
	core   reservationCreator
	window pricing.Window
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

func NewService(store intentStore, promos promoResolver, core reservationCreator, window pricing.Window, ttl time.Duration, logg *logger.Logger) Service {
	return &service{
		store:  store,
		promos: promos,
		core:   core,
		window: window,
		ttl:    ttl,
		logger: logg,
		now:    time.Now,
	}
}

func (s *service) Begin(ctx context.Context, userID int64, input BeginInput) (*Intent, error) {
	if input.VehicleID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}
	if input.PricePerDay.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price per day must not be negative")
	}
	if input.PassengerCount < 1 {
		input.PassengerCount = 1
	}

	intent := &Intent{
		ID:             uuid.NewString(),
		UserID:         userID,
		VehicleID:      input.VehicleID,
		VehicleName:    input.VehicleName,
		PricePerDay:    input.PricePerDay,
		Origin:         strings.TrimSpace(input.Origin),
		Destination:    strings.TrimSpace(input.Destination),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		PassengerCount: input.PassengerCount,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.save(ctx, intent); err != nil {
		return nil, err
	}

	uid := formatUserID(userID)
	if err := s.store.SAdd(ctx, s.store.IntentIndexKey(uid), intent.ID); err != nil {
		s.warn(ctx, "intent index update failed")
	}
	if err := s.store.SAdd(ctx, s.store.IntentOwnersKey(), uid); err != nil {
		s.warn(ctx, "intent owners update failed")
	}
	return intent, nil
}

func (s *service) Get(ctx context.Context, userID int64, intentID string) (*Intent, error) {
	raw, err := s.store.Get(ctx, s.store.IntentKey(formatUserID(userID), intentID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation intent not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading reservation intent")
	}
	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding reservation intent")
	}
	return &intent, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]Intent, error) {
	uid := formatUserID(userID)
	ids, err := s.store.SMembers(ctx, s.store.IntentIndexKey(uid))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing reservation intents")
	}
	intents := make([]Intent, 0, len(ids))
	for _, id := range ids {
		intent, err := s.Get(ctx, userID, id)
		if err != nil {
			// Expired entries are pruned lazily; the sweep job also
			// removes them in the background.
			if pkgerrors.As(err) != nil && pkgerrors.As(err).Code() == pkgerrors.CodeNotFound {
				_ = s.store.SRem(ctx, s.store.IntentIndexKey(uid), id)
				continue
			}
			return nil, err
		}
		intents = append(intents, *intent)
	}
	return intents, nil
}

func (s *service) Update(ctx context.Context, userID int64, intentID string, input UpdateInput) (*Intent, *QuoteResult, error) {
	intent, err := s.Get(ctx, userID, intentID)
	if err != nil {
		return nil, nil, err
	}

	if input.StartDate != nil {
		intent.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		intent.EndDate = *input.EndDate
	}
	if input.Origin != nil {
		intent.Origin = strings.TrimSpace(*input.Origin)
	}
	if input.Destination != nil {
		intent.Destination = strings.TrimSpace(*input.Destination)
	}
	if input.ClearPromotion {
		intent.PromotionID = nil
	} else if input.PromotionID != nil {
		if _, err := s.promos.Resolve(ctx, *input.PromotionID); err != nil {
			return nil, nil, err
		}
		intent.PromotionID = input.PromotionID
	}
	if input.PaymentMethod != nil {
		method := NormalizeMethod(*input.PaymentMethod)
		if !validMethods[method] {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "metodo de pago invalido")
		}
		intent.PaymentMethod = method
	}
	if input.Notes != nil {
		intent.Notes = strings.TrimSpace(*input.Notes)
	}

	if err := s.save(ctx, intent); err != nil {
		return nil, nil, err
	}
	quote, err := s.quote(ctx, intent)
	if err != nil {
		return nil, nil, err
	}
	return intent, quote, nil
}

func (s *service) Quote(ctx context.Context, userID int64, intentID string) (*QuoteResult, error) {
	intent, err := s.Get(ctx, userID, intentID)
	if err != nil {
		return nil, err
	}
	return s.quote(ctx, intent)
}

// quote recomputes the preview. Missing or inverted dates come back as
// Valid=false with a message, never as an error.
func (s *service) quote(ctx context.Context, intent *Intent) (*QuoteResult, error) {
	var promo *promotions.Promotion
	if intent.PromotionID != nil {
		resolved, err := s.promos.Resolve(ctx, *intent.PromotionID)
		if err == nil {
			promo = resolved
		} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			return nil, err
		}
		// A promotion that fell out of the active window between selection
		// and quoting simply stops discounting.
	}

	start, startErr := pricing.ParseDate(intent.StartDate, s.window.Location)
	end, endErr := pricing.ParseDate(intent.EndDate, s.window.Location)
	if intent.StartDate == "" || intent.EndDate == "" || startErr != nil || endErr != nil {
		return &QuoteResult{
			Subtotal:       decimal.Zero,
			DiscountAmount: decimal.Zero,
			Total:          decimal.Zero,
			Valid:          false,
			Message:        "Selecciona las fechas de salida y regreso.",
			Promotion:      promo,
		}, nil
	}

	q := pricing.Compute(intent.PricePerDay, start, end, promo.ToPricing())
	result := &QuoteResult{
		TotalDays:      q.TotalDays,
		Subtotal:       q.Subtotal,
		DiscountAmount: q.DiscountAmount,
		Total:          q.Total,
		Valid:          q.Valid(),
		Promotion:      promo,
	}
	if !result.Valid {
		result.Message = "La fecha de regreso debe ser posterior a la fecha de salida."
	}
	return result, nil
}

func (s *service) Submit(ctx context.Context, userID int64, upstreamToken, intentID string, payment PaymentDetails) (*coreapi.Reservation, error) {
	intent, err := s.Get(ctx, userID, intentID)
	if err != nil {
		return nil, err
	}

	if err := ValidatePaymentDetails(payment); err != nil {
		return nil, err
	}

	quote, err := s.quote(ctx, intent)
	if err != nil {
		return nil, err
	}
	if !quote.Valid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, quote.Message)
	}

	start, err := pricing.ParseDate(intent.StartDate, s.window.Location)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "fecha de salida invalida")
	}
	end, err := pricing.ParseDate(intent.EndDate, s.window.Location)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "fecha de regreso invalida")
	}

	meta := buildPaymentMetadata(payment)
	req := coreapi.ReservationCreate{
		VehicleID:        intent.VehicleID,
		StartDate:        s.window.StartInstant(start, s.now()).UTC(),
		EndDate:          s.window.EndInstant(end).UTC(),
		PickupLocation:   intent.Origin,
		ReturnLocation:   intent.Destination,
		Notes:            intent.Notes,
		PaymentMethod:    NormalizeMethod(payment.Method),
		PaymentReference: meta.Reference,
		PaymentNotes:     meta.Detail,
	}
	if quote.Promotion != nil {
		id := quote.Promotion.ID
		req.PromotionID = &id
	}

	reservation, err := s.core.CreateReservation(ctx, upstreamToken, req)
	if err != nil {
		return nil, err
	}

	if err := s.discard(ctx, userID, intentID); err != nil {
		s.warn(ctx, "clearing submitted intent failed")
	}
	return reservation, nil
}

func (s *service) Cancel(ctx context.Context, userID int64, intentID string) error {
	if _, err := s.Get(ctx, userID, intentID); err != nil {
		return err
	}
	return s.discard(ctx, userID, intentID)
}

func (s *service) save(ctx context.Context, intent *Intent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding reservation intent")
	}
	key := s.store.IntentKey(formatUserID(intent.UserID), intent.ID)
	if err := s.store.Set(ctx, key, payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing reservation intent")
	}
	return nil
}

func (s *service) discard(ctx context.Context, userID int64, intentID string) error {
	uid := formatUserID(userID)
	if err := s.store.Del(ctx, s.store.IntentKey(uid, intentID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting reservation intent")
	}
	if err := s.store.SRem(ctx, s.store.IntentIndexKey(uid), intentID); err != nil {
		s.warn(ctx, "intent index cleanup failed")
	}
	return nil
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logger != nil {
		s.logger.Warn(ctx, msg)
	}
}

func formatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
