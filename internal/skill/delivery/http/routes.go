package http

import (
	"github.com/gin-gonic/gin"

	"voice-gpt-skill/internal/middleware"
)

// RegisterRoutes mounts the skill endpoint. Envelope checks run before the
// handler; each of them is a no-op when its setting is disabled.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/alexa",
		mw.VerifyApplication(),
		mw.VerifyTimestamp(),
		mw.RateLimit(),
		h.HandleRequest,
	)
}
