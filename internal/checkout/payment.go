package checkout

import (
	"fmt"
	"strings"

	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

const (
	MethodEfectivo = "efectivo"
	MethodTarjeta  = "tarjeta"
	MethodCheque   = "cheque"
	MethodDeposito = "deposito"
)

var validMethods = map[string]bool{
	MethodEfectivo: true,
	MethodTarjeta:  true,
	MethodCheque:   true,
	MethodDeposito: true,
}

// NormalizeMethod lowercases the method and defaults to cash, mirroring what
// the core API does with a missing payment_method.
func NormalizeMethod(method string) string {
	m := strings.ToLower(strings.TrimSpace(method))
	if m == "" {
		return MethodEfectivo
	}
	return m
}

// ValidatePaymentDetails checks method-specific completeness before the
// reservation is built: card number 13-19 digits with a 3+ digit CVV,
// cheque and deposit references complete. Cash needs nothing.
func ValidatePaymentDetails(details PaymentDetails) error {
	method := NormalizeMethod(details.Method)
	if !validMethods[method] {
		return pkgerrors.New(pkgerrors.CodeValidation, "metodo de pago invalido").
			WithDetails([]FieldViolation{{Field: "payment_method", Message: "Metodo de pago invalido."}})
	}

	var violations []FieldViolation
	switch method {
	case MethodTarjeta:
		digits := digitsOnly(details.CardNumber)
		if len(digits) < 13 || len(digits) > 19 {
			violations = append(violations, FieldViolation{Field: "card_number", Message: "Numero de tarjeta invalido."})
		}
		if len(strings.TrimSpace(details.CardCVV)) < 3 {
			violations = append(violations, FieldViolation{Field: "card_cvv", Message: "CVV invalido."})
		}
	case MethodCheque:
		if strings.TrimSpace(details.ChequeNumber) == "" ||
			strings.TrimSpace(details.ChequeBank) == "" ||
			strings.TrimSpace(details.ChequeHolder) == "" {
			violations = append(violations, FieldViolation{Field: "cheque", Message: "Completa los datos del cheque."})
		}
	case MethodDeposito:
		if strings.TrimSpace(details.DepositBank) == "" ||
			strings.TrimSpace(details.DepositReference) == "" ||
			strings.TrimSpace(details.DepositDate) == "" {
			violations = append(violations, FieldViolation{Field: "deposito", Message: "Completa los datos del deposito."})
		}
	}

	if len(violations) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "datos de pago incompletos").WithDetails(violations)
	}
	return nil
}

// buildPaymentMetadata derives the reference and human-readable detail the
// core API stores alongside the payment record.
func buildPaymentMetadata(details PaymentDetails) paymentMetadata {
	switch NormalizeMethod(details.Method) {
	case MethodTarjeta:
		digits := digitsOnly(details.CardNumber)
		last4 := "0000"
		if len(digits) >= 4 {
			last4 = digits[len(digits)-4:]
		} else if len(digits) > 0 {
			last4 = digits
		}
		return paymentMetadata{
			Reference: "CARD-" + last4,
			Detail:    fmt.Sprintf("Pago con tarjeta terminacion %s", last4),
		}
	case MethodCheque:
		ref := strings.TrimSpace(details.ChequeNumber)
		return paymentMetadata{
			Reference: ref,
			Detail:    fmt.Sprintf("Pago con cheque %s banco %s", ref, strings.TrimSpace(details.ChequeBank)),
		}
	case MethodDeposito:
		ref := strings.TrimSpace(details.DepositReference)
		return paymentMetadata{
			Reference: ref,
			Detail:    fmt.Sprintf("Pago por deposito ref %s banco %s", ref, strings.TrimSpace(details.DepositBank)),
		}
	default:
		return paymentMetadata{Detail: "Pago en efectivo"}
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
