package middleware

import "errors"

var (
	ErrApplicationMismatch = errors.New("application id mismatch")
	ErrMissingTimestamp    = errors.New("request timestamp missing")
	ErrInvalidTimestamp    = errors.New("request timestamp invalid")
	ErrStaleTimestamp      = errors.New("request timestamp outside tolerance")
	ErrRateLimited         = errors.New("rate limit exceeded")
)
