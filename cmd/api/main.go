package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-gpt-skill/config"
	_ "voice-gpt-skill/docs" // Swagger docs
	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/httpserver"
	"voice-gpt-skill/internal/middleware"
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/router"
	skillHTTP "voice-gpt-skill/internal/skill/delivery/http"
	"voice-gpt-skill/internal/skill/usecase"
	"voice-gpt-skill/internal/test"
	"voice-gpt-skill/pkg/chatgpt"
	"voice-gpt-skill/pkg/log"
)

// @title       Voice GPT Skill API
// @description Voice assistant skill that answers free-form questions through a chat completion model.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

// run wires the skill and serves until SIGINT or SIGTERM. Failures are logged
// before returning.
func run(cfg *config.Config) error {
	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice GPT Skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion client: a missing key stops startup
	gpt, err := chatgpt.New(chatgpt.Config{
		APIKey:           cfg.OpenAI.APIKey,
		BaseURL:          cfg.OpenAI.BaseURL,
		Model:            cfg.OpenAI.Model,
		Temperature:      cfg.OpenAI.Temperature,
		MaxTokens:        cfg.OpenAI.MaxTokens,
		TopP:             cfg.OpenAI.TopP,
		PresencePenalty:  cfg.OpenAI.PresencePenalty,
		FrequencyPenalty: cfg.OpenAI.FrequencyPenalty,
		Timeout:          cfg.OpenAI.Timeout,
	}, logger)
	if err != nil {
		if errors.Is(err, chatgpt.ErrAPIKeyNotConfigured) {
			logger.Error(ctx, "OPENAI_API_KEY is not set: configure openai.api_key or the OPENAI_API_KEY environment variable")
		} else {
			logger.Error(ctx, "Failed to initialize completion client: ", err)
		}
		return err
	}
	logger.Infof(ctx, "Completion model: %s", gpt.Model())

	// 4. Skill domain
	visual := apl.New(logger)
	skillUC := usecase.New(logger, gpt, visual)
	requestRouter := router.New(logger)
	mw := middleware.New(logger, cfg.Skill)

	var testHandler test.Handler
	if cfg.Environment.Name != string(model.EnvironmentProduction) {
		testHandler = test.New(logger, requestRouter, skillUC)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Model:        gpt.Model(),
		Middleware:   mw,
		SkillHandler: skillHTTP.New(logger, skillUC, requestRouter),
		TestHandler:  testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	if cfg.Skill.TunnelAPI != "" {
		go announceEndpoint(ctx, logger, cfg.Skill.TunnelAPI)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
