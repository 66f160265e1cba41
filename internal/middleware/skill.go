package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"voice-gpt-skill/pkg/alexa"
	"voice-gpt-skill/pkg/response"
)

// VerifyApplication rejects envelopes addressed to another skill. It is a
// no-op when no application ID is configured.
func (m Middleware) VerifyApplication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.ApplicationID == "" {
			c.Next()
			return
		}

		env, ok := m.envelope(c)
		if !ok {
			return
		}

		if got := env.ApplicationID(); got != m.cfg.ApplicationID {
			m.l.Warnf(c.Request.Context(), "internal.middleware.VerifyApplication: %v: %q", ErrApplicationMismatch, got)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// VerifyTimestamp rejects envelopes whose request timestamp is further from
// now than the configured tolerance. It is a no-op when the tolerance is zero.
func (m Middleware) VerifyTimestamp() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.TimestampTolerance <= 0 {
			c.Next()
			return
		}

		env, ok := m.envelope(c)
		if !ok {
			return
		}

		if err := checkTimestamp(env.Request.Timestamp, time.Now(), m.cfg.TimestampTolerance); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.VerifyTimestamp: %v", err)
			response.Error(c, err, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimit throttles requests per user, keyed by the envelope's user ID or
// the client IP when the envelope has none.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		env, ok := m.envelope(c)
		if !ok {
			return
		}

		key := env.UserID()
		if key == "" {
			key = extractIP(c.Request)
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// envelope decodes the request body, caching it in the gin context so later
// handlers can bind it again. On failure the request is aborted with 400.
func (m Middleware) envelope(c *gin.Context) (alexa.RequestEnvelope, bool) {
	var env alexa.RequestEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		m.l.Warnf(c.Request.Context(), "internal.middleware.envelope: failed to decode envelope: %v", err)
		response.Error(c, err, nil)
		c.Abort()
		return alexa.RequestEnvelope{}, false
	}
	return env, true
}

func checkTimestamp(raw string, now time.Time, tolerance time.Duration) error {
	if raw == "" {
		return ErrMissingTimestamp
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}

	skew := now.Sub(ts)
	if skew < 0 {
		skew = -skew
	}
	if skew > tolerance {
		return fmt.Errorf("%w: skew %s", ErrStaleTimestamp, skew.Round(time.Second))
	}
	return nil
}
