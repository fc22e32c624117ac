package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

func TestValidatePaymentDetails(t *testing.T) {
	cases := []struct {
		name    string
		details PaymentDetails
		wantOK  bool
	}{
		{"cash needs nothing", PaymentDetails{Method: "efectivo"}, true},
		{"blank method defaults to cash", PaymentDetails{}, true},
		{"card with formatted number", PaymentDetails{Method: "tarjeta", CardNumber: "4111 1111 1111 1111", CardCVV: "123"}, true},
		{"card too short", PaymentDetails{Method: "tarjeta", CardNumber: "4111 1111", CardCVV: "123"}, false},
		{"card cvv too short", PaymentDetails{Method: "tarjeta", CardNumber: "4111111111111111", CardCVV: "12"}, false},
		{"cheque complete", PaymentDetails{Method: "cheque", ChequeBank: "BBVA", ChequeNumber: "0012", ChequeHolder: "Ana"}, true},
		{"cheque missing holder", PaymentDetails{Method: "cheque", ChequeBank: "BBVA", ChequeNumber: "0012"}, false},
		{"deposit complete", PaymentDetails{Method: "deposito", DepositBank: "Santander", DepositReference: "REF-9", DepositDate: "2024-06-01"}, true},
		{"deposit missing reference", PaymentDetails{Method: "deposito", DepositBank: "Santander", DepositDate: "2024-06-01"}, false},
		{"unknown method", PaymentDetails{Method: "bitcoin"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePaymentDetails(tc.details)
			if tc.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			assert.NotNil(t, typed.Details())
		})
	}
}

func TestBuildPaymentMetadata(t *testing.T) {
	t.Run("card uses last four digits", func(t *testing.T) {
		meta := buildPaymentMetadata(PaymentDetails{Method: "tarjeta", CardNumber: "4111-1111-1111-4242"})
		assert.Equal(t, "CARD-4242", meta.Reference)
		assert.Equal(t, "Pago con tarjeta terminacion 4242", meta.Detail)
	})

	t.Run("cheque references the number and bank", func(t *testing.T) {
		meta := buildPaymentMetadata(PaymentDetails{Method: "cheque", ChequeNumber: "0012", ChequeBank: "BBVA"})
		assert.Equal(t, "0012", meta.Reference)
		assert.Equal(t, "Pago con cheque 0012 banco BBVA", meta.Detail)
	})

	t.Run("deposit references the ref and bank", func(t *testing.T) {
		meta := buildPaymentMetadata(PaymentDetails{Method: "deposito", DepositReference: "REF-9", DepositBank: "Santander"})
		assert.Equal(t, "REF-9", meta.Reference)
		assert.Equal(t, "Pago por deposito ref REF-9 banco Santander", meta.Detail)
	})

	t.Run("cash has no reference", func(t *testing.T) {
		meta := buildPaymentMetadata(PaymentDetails{Method: "efectivo"})
		assert.Empty(t, meta.Reference)
		assert.Equal(t, "Pago en efectivo", meta.Detail)
	})
}
