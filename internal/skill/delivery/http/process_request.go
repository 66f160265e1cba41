package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"voice-gpt-skill/pkg/alexa"
)

// processSkillReq binds the request envelope. The body may already have been
// read by middleware, so it is bound through the cached copy.
func (h *handler) processSkillReq(c *gin.Context) (alexa.RequestEnvelope, error) {
	var env alexa.RequestEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		return env, err
	}
	if env.Request.Type == "" {
		return env, errMissingRequestType
	}
	return env, nil
}
