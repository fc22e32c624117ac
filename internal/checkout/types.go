package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/internal/promotions"
)

// Intent is the transient pre-submission record of a user's vehicle, date,
// and location selection. It lives in redis under a TTL and is destroyed on
// successful submission or explicit cancellation.
type Intent struct {
	ID             string          `json:"id"`
	UserID         int64           `json:"user_id"`
	VehicleID      int64           `json:"vehicle_id"`
	VehicleName    string          `json:"vehicle_name"`
	PricePerDay    decimal.Decimal `json:"price_per_day"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	PassengerCount int             `json:"passenger_count"`
	PromotionID    *int64          `json:"promotion_id,omitempty"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BeginInput seeds a new intent from a vehicle selection.
type BeginInput struct {
	VehicleID      int64
	VehicleName    string
	PricePerDay    decimal.Decimal
	Origin         string
	Destination    string
	StartDate      string
	EndDate        string
	PassengerCount int
}

// UpdateInput mutates checkout form fields. Nil pointers leave the stored
// value untouched; ClearPromotion drops a previously selected promotion.
type UpdateInput struct {
	StartDate      *string
	EndDate        *string
	Origin         *string
	Destination    *string
	PromotionID    *int64
	ClearPromotion bool
	PaymentMethod  *string
	Notes          *string
}

// QuoteResult is the live price preview recomputed on every change. An
// invalid date range is a soft condition carried in Valid/Message, never an
// error, so quoting is safe per keystroke.
type QuoteResult struct {
	TotalDays      int                   `json:"total_days"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	Total          decimal.Decimal       `json:"total"`
	Valid          bool                  `json:"valid"`
	Message        string                `json:"message,omitempty"`
	Promotion      *promotions.Promotion `json:"promotion,omitempty"`
}

// PaymentDetails carries the method-specific fields collected at submission.
type PaymentDetails struct {
	Method           string
	CardNumber       string
	CardCVV          string
	ChequeBank       string
	ChequeNumber     string
	ChequeHolder     string
	DepositBank      string
	DepositReference string
	DepositDate      string
}

// FieldViolation points a validation failure at a specific form field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// paymentMetadata is what a validated payment contributes to the upstream
// reservation payload.
type paymentMetadata struct {
	Reference string
	Detail    string
}
