package middleware

import (
	"net/http"

	"github.com/rutamovil/booking-gateway/api/responses"
	pkgauth "github.com/rutamovil/booking-gateway/pkg/auth"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

// AdminOnly rejects callers whose session role is not administrativo.
func AdminOnly(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != string(pkgauth.RoleAdministrativo) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Acceso solo para rol administrativo"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
