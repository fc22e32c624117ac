// Package types defines the JSON envelopes every gateway endpoint speaks.
// Success payloads ride under "data"; failures under "error" with a stable
// machine-readable code.
package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the wire form of a domain error. Details carries structured
// context such as per-field validation messages.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
