package http

import (
	"github.com/gin-gonic/gin"

	"voice-gpt-skill/internal/router"
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/log"
)

// Handler is the public interface for the skill HTTP delivery layer.
type Handler interface {
	HandleRequest(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     skill.UseCase
	router router.Router
}

// New creates a new HTTP handler for the skill endpoint.
func New(l log.Logger, uc skill.UseCase, r router.Router) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		router: r,
	}
}
