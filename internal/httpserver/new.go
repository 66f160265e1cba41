package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-gpt-skill/internal/middleware"
	skillHTTP "voice-gpt-skill/internal/skill/delivery/http"
	"voice-gpt-skill/internal/test"
	"voice-gpt-skill/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	model       string

	// Skill domain
	middleware   middleware.Middleware
	skillHandler skillHTTP.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Model       string // Completion model, reported by /ready

	// Skill domain
	Middleware   middleware.Middleware
	SkillHandler skillHTTP.Handler

	// Test domain, mounted outside production only
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		model:        cfg.Model,
		middleware:   cfg.Middleware,
		skillHandler: cfg.SkillHandler,
		testHandler:  cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.skillHandler == nil {
		return errors.New("skill handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
