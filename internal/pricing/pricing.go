// Package pricing implements the checkout quote calculation: rental-day
// counting, promotion discounts, and the booking-window instants sent to the
// core API. Everything here is pure; the functions are called on every field
// change in the checkout flow and must never fail or panic, so invalid input
// resolves to a defined zero instead of an error.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/pkg/config"
)

// Promotion is a backend-defined percentage discount. DiscountPercent is
// propagated as received: values outside [0,100] are not clamped here, only
// the final total is guarded against going negative.
type Promotion struct {
	ID              int64
	Title           string
	DiscountPercent float64
	ValidFrom       time.Time
	ValidTo         time.Time
}

// Quote is the derived price preview. The core API recomputes the persisted
// price on submission; this quote must agree with it so the preview is not
// misleading.
type Quote struct {
	TotalDays      int
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// Valid reports whether the date range produced a billable rental. A false
// result is the one soft condition in this package; callers surface it as a
// validation message, never as an error.
func (q Quote) Valid() bool {
	return q.TotalDays > 0
}

// RentalDays counts billed 24-hour units between two instants with ceiling
// rounding: a range spanning 25 hours is 2 rental days, never 1. Returns 0
// when end is on or before start, and a minimum of 1 otherwise.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Compute derives the quote for a rental. Subtotal is days times the daily
// rate; the discount is subtotal * percent / 100 rounded to the minor unit;
// the total is clamped at zero so a discount above 100% can never produce a
// negative charge. Pure and idempotent for any input combination.
func Compute(pricePerDay decimal.Decimal, start, end time.Time, promo *Promotion) Quote {
	totalDays := RentalDays(start, end)
	subtotal := pricePerDay.Mul(decimal.NewFromInt(int64(totalDays)))

	discount := decimal.Zero
	if promo != nil && promo.DiscountPercent != 0 {
		percent := decimal.NewFromFloat(promo.DiscountPercent)
		discount = subtotal.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
	}

	total := subtotal.Sub(discount).Round(2)
	if total.IsNegative() {
		total = decimal.Zero.Round(2)
	}

	return Quote{
		TotalDays:      totalDays,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          total,
	}
}

// Window holds the reference zone and start clamp used to turn calendar
// dates into the precise reservation instants the core API requires.
type Window struct {
	Location   *time.Location
	StartClamp time.Duration
}

// NewWindow resolves the configured zone name. The zone is explicit
// configuration rather than a hidden constant so deployments outside UTC can
// keep same-day bookings working.
func NewWindow(cfg config.BookingConfig) (Window, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Window{}, err
	}
	return Window{Location: loc, StartClamp: cfg.StartClamp}, nil
}

// StartInstant builds midday (12:00) of the date in the reference zone.
// Midday avoids the off-by-one-day risk of midnight conversions across
// zones. If the instant is not strictly after now it is pushed forward to
// now plus the clamp, so a same-day booking survives the core API's "start
// must be future" rule.
func (w Window) StartInstant(date time.Time, now time.Time) time.Time {
	y, m, d := date.Date()
	instant := time.Date(y, m, d, 12, 0, 0, 0, w.location())
	if !instant.After(now) {
		return now.Add(w.StartClamp)
	}
	return instant
}

// EndInstant builds end-of-day (23:00) of the date in the reference zone,
// unclamped. The start/end asymmetry is deliberate: the full calendar day is
// always included while the start never lands in the past.
func (w Window) EndInstant(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 0, 0, 0, w.location())
}

func (w Window) location() *time.Location {
	if w.Location == nil {
		return time.UTC
	}
	return w.Location
}

// ParseDate interprets a calendar date string (YYYY-MM-DD) as midnight in
// the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}
