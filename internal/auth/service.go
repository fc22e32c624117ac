package auth

import (
	"context"
	"fmt"
	"time"

	pkgauth "github.com/rutamovil/booking-gateway/pkg/auth"
	"github.com/rutamovil/booking-gateway/pkg/auth/session"
	"github.com/rutamovil/booking-gateway/pkg/config"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, req coreapi.RegisterRequest) (*coreapi.User, error)
	Me(ctx context.Context, upstreamToken string) (*coreapi.User, error)
	UpdateProfile(ctx context.Context, upstreamToken string, req coreapi.UpdateProfileRequest) (*coreapi.User, error)
	ChangePassword(ctx context.Context, upstreamToken string, req coreapi.ChangePasswordRequest) (*coreapi.MessageResponse, error)
	ForgotPassword(ctx context.Context, req coreapi.ForgotPasswordRequest) (*coreapi.MessageResponse, error)
	ResetPassword(ctx context.Context, req coreapi.ResetPasswordRequest) (*coreapi.MessageResponse, error)
}

type coreAuthClient interface {
	Login(ctx context.Context, req coreapi.LoginRequest) (*coreapi.TokenResponse, error)
	Register(ctx context.Context, req coreapi.RegisterRequest) (*coreapi.User, error)
	Me(ctx context.Context, token string) (*coreapi.User, error)
	UpdateProfile(ctx context.Context, token string, req coreapi.UpdateProfileRequest) (*coreapi.User, error)
	ChangePassword(ctx context.Context, token string, req coreapi.ChangePasswordRequest) (*coreapi.MessageResponse, error)
	ForgotPassword(ctx context.Context, req coreapi.ForgotPasswordRequest) (*coreapi.MessageResponse, error)
	ResetPassword(ctx context.Context, req coreapi.ResetPasswordRequest) (*coreapi.MessageResponse, error)
}

type sessionManager interface {
	Create(ctx context.Context, sessionID string, rec session.Record) error
	Revoke(ctx context.Context, sessionID string) error
}

type service struct {
	core     coreAuthClient
	sessions sessionManager
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	CoreClient     coreAuthClient
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
}

// NewService constructs the gateway auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.CoreClient == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		core:     params.CoreClient,
		sessions: params.SessionManager,
		jwtCfg:   params.JWTConfig,
		now:      time.Now,
	}, nil
}

// Login exchanges credentials with the core API, opens a gateway session that
// holds the upstream bearer token, and mints the browser-facing JWT.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	tok, err := s.core.Login(ctx, coreapi.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}

	role := normalizeRole(tok.User.Role)
	now := s.now().UTC()
	sessionID := session.NewSessionID()

	rec := session.Record{
		UserID:        tok.User.ID,
		Email:         tok.User.Email,
		Name:          tok.User.FullName,
		Role:          role,
		UpstreamToken: tok.Token,
		CreatedAt:     now,
	}
	if err := s.sessions.Create(ctx, sessionID, rec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:    tok.User.ID,
		Email:     tok.User.Email,
		Name:      tok.User.FullName,
		Role:      role,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.jwtCfg.ExpirationMinutes) * 60,
		Role:        role,
		User:        tok.User,
	}, nil
}

// Logout revokes the session record, invalidating the JWT before its exp.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

func (s *service) Register(ctx context.Context, req coreapi.RegisterRequest) (*coreapi.User, error) {
	return s.core.Register(ctx, req)
}

func (s *service) Me(ctx context.Context, upstreamToken string) (*coreapi.User, error) {
	return s.core.Me(ctx, upstreamToken)
}

func (s *service) UpdateProfile(ctx context.Context, upstreamToken string, req coreapi.UpdateProfileRequest) (*coreapi.User, error) {
	return s.core.UpdateProfile(ctx, upstreamToken, req)
}

func (s *service) ChangePassword(ctx context.Context, upstreamToken string, req coreapi.ChangePasswordRequest) (*coreapi.MessageResponse, error) {
	return s.core.ChangePassword(ctx, upstreamToken, req)
}

func (s *service) ForgotPassword(ctx context.Context, req coreapi.ForgotPasswordRequest) (*coreapi.MessageResponse, error) {
	return s.core.ForgotPassword(ctx, req)
}

func (s *service) ResetPassword(ctx context.Context, req coreapi.ResetPasswordRequest) (*coreapi.MessageResponse, error) {
	return s.core.ResetPassword(ctx, req)
}

// normalizeRole maps the upstream role string onto the gateway roles. Unknown
// values fall back to cliente so a bad upstream value never grants admin.
func normalizeRole(raw string) pkgauth.Role {
	if pkgauth.Role(raw) == pkgauth.RoleAdministrativo {
		return pkgauth.RoleAdministrativo
	}
	return pkgauth.RoleCliente
}
