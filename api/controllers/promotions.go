package controllers

import (
	"net/http"

	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/internal/promotions"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

// PromotionsActive serves the cached active-promotion catalog.
func PromotionsActive(svc promotions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promos, err := svc.Active(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"promotions": promos,
			"total":      len(promos),
		})
	}
}
