package middleware

import (
	"voice-gpt-skill/config"
	"voice-gpt-skill/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cfg     config.SkillConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.SkillConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
