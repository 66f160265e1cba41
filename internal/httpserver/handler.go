package httpserver

import (
	"context"

	"voice-gpt-skill/internal/model"
	skillHTTP "voice-gpt-skill/internal/skill/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	skillHTTP.RegisterRoutes(srv.gin, srv.skillHandler, srv.middleware)
	srv.l.Infof(ctx, "Skill route registered at POST /alexa")

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Production environment, skipping test routes")
		return nil
	}

	if srv.testHandler != nil {
		tg := srv.gin.Group("/test")
		tg.POST("/utterance", srv.testHandler.HandleUtterance)
		tg.POST("/reset", srv.testHandler.HandleResetSession)
		tg.GET("/health", srv.testHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Test routes registered at /test/utterance, /test/reset, /test/health")
	} else {
		srv.l.Infof(ctx, "Test handler not configured, skipping test routes")
	}

	return nil
}
