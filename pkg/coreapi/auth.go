package coreapi

import (
	"context"
	"net/http"
)

// Login exchanges credentials for the core API bearer token and profile.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, "login", callParams{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new client account upstream.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := c.do(ctx, "register", callParams{
		method: http.MethodPost,
		path:   "/api/auth/register",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile tied to the bearer token.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.do(ctx, "me", callParams{
		method: http.MethodGet,
		path:   "/api/auth/me",
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches name/phone on the upstream profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*User, error) {
	var out User
	if err := c.do(ctx, "update_profile", callParams{
		method: http.MethodPatch,
		path:   "/api/auth/me",
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the upstream password for the authenticated user.
func (c *Client) ChangePassword(ctx context.Context, token string, req ChangePasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, "change_password", callParams{
		method: http.MethodPost,
		path:   "/api/auth/change-password",
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword triggers the upstream reset-link flow. The core API answers
// the same way whether or not the email exists.
func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, "forgot_password", callParams{
		method: http.MethodPost,
		path:   "/api/auth/forgot-password",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword consumes a reset token and sets the new password.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, "reset_password", callParams{
		method: http.MethodPost,
		path:   "/api/auth/reset-password",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
