package test

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-gpt-skill/internal/router"
	"voice-gpt-skill/internal/skill"
	pkgLog "voice-gpt-skill/pkg/log"
)

// Simulated sessions expire like platform sessions left idle.
const (
	sessionCacheSize = 256
	sessionTTL       = 10 * time.Minute
)

// Handler is the interface for the test handler
type Handler interface {
	HandleUtterance(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	router   router.Router
	uc       skill.UseCase
	sessions *expirable.LRU[string, map[string]any]
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	uc skill.UseCase,
) Handler {
	return &handler{
		l:        l,
		router:   router,
		uc:       uc,
		sessions: expirable.NewLRU[string, map[string]any](sessionCacheSize, nil, sessionTTL),
	}
}
