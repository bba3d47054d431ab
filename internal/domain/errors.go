package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound       = errors.New("not found")
	ErrExpired        = errors.New("expired")
	ErrMismatch       = errors.New("mismatch")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrBadRequest     = errors.New("bad request")
	ErrDeliveryFailed = errors.New("delivery failed")
	ErrUnavailable    = errors.New("upstream unavailable")
)
