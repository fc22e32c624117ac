package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rutamovil/booking-gateway/api/responses"
	pkgauth "github.com/rutamovil/booking-gateway/pkg/auth"
	"github.com/rutamovil/booking-gateway/pkg/auth/session"
	"github.com/rutamovil/booking-gateway/pkg/config"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

// SessionReader loads the redis-backed session record for a session id.
type SessionReader interface {
	Get(ctx context.Context, sessionID string) (*session.Record, error)
}

// Auth validates the gateway JWT, requires a live session record, and seeds
// the request context with the caller's identity plus the upstream bearer
// token the proxy controllers replay.
func Auth(cfg config.JWTConfig, sessions SessionReader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.SessionID() == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if sessions == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session store unavailable"))
				return
			}
			rec, err := sessions.Get(r.Context(), claims.SessionID())
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
				return
			}
			if rec.UserID != claims.UserID {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session mismatch"))
				return
			}

			ctx := WithIdentity(r.Context(), claims.UserID, string(rec.Role), claims.SessionID(), rec.UpstreamToken)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    strconv.FormatInt(claims.UserID, 10),
					"actor_role": string(rec.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
