package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-gpt-skill/pkg/log"
)

// RequestID tags every request with an ID, reusing the caller's X-Request-ID
// when present, and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
