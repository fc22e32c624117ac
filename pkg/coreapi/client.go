package coreapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rutamovil/booking-gateway/pkg/config"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

var errLoggerRequired = errors.New("core api logger is required")

// Client wraps the core platform REST API with centralized auth forwarding,
// logging, and error mapping. The core API owns pricing of record,
// reservation persistence, and user validation; the gateway only replays
// the caller's bearer token and reshapes responses.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logger.Logger
}

// NewClient initializes the core API wrapper and validates the configuration.
func NewClient(cfg config.CoreAPIConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("core api base url is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		logger:     logg,
	}, nil
}

// UpstreamError carries what the core API said when a call failed.
type UpstreamError struct {
	Status   int
	Endpoint string
	Detail   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("core api %s returned %d: %s", e.Endpoint, e.Status, e.Detail)
}

func (e *UpstreamError) UpstreamStatus() int      { return e.Status }
func (e *UpstreamError) UpstreamEndpoint() string { return e.Endpoint }
func (e *UpstreamError) UpstreamDetail() string   { return e.Detail }

type callParams struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, op string, p callParams) error {
	endpoint := c.baseURL + p.path
	if len(p.query) > 0 {
		endpoint += "?" + p.query.Encode()
	}

	var reqBody io.Reader
	if p.body != nil {
		payload, err := json.Marshal(p.body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encoding %s request", op))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, endpoint, reqBody)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("building %s request", op))
	}
	req.Header.Set("Accept", "application/json")
	if p.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(ctx, op, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("core api %s failed", op))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream := &UpstreamError{
			Status:   resp.StatusCode,
			Endpoint: p.path,
			Detail:   readDetail(resp.Body),
		}
		c.logFailure(ctx, op, upstream)
		return pkgerrors.Wrap(codeForStatus(resp.StatusCode), upstream, fmt.Sprintf("core api %s failed", op))
	}

	if p.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(p.out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decoding %s response", op))
	}
	return nil
}

// readDetail extracts the FastAPI-style {"detail": "..."} message, falling
// back to the raw body when it is not JSON.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}
		return string(payload.Detail)
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) logFailure(ctx context.Context, op string, err error) {
	if c == nil || c.logger == nil {
		return
	}
	ctx = c.logger.WithField(ctx, "operation", op)
	c.logger.Error(ctx, "core api call failed", err)
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.CodeValidation
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}
