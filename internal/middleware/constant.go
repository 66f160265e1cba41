package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"
)

// Limiter cache bounds
const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 5 * time.Minute
)
