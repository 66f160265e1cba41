package router

import (
	"context"

	"voice-gpt-skill/pkg/alexa"
	"voice-gpt-skill/pkg/log"
)

// Router turns a request envelope into a skill event.
type Router interface {
	Classify(ctx context.Context, env alexa.RequestEnvelope) (RouterOutput, error)
}

// RequestRouter dispatches on request type and intent name.
type RequestRouter struct {
	l log.Logger
}

// Ensure RequestRouter implements Router interface
var _ Router = (*RequestRouter)(nil)

// New creates a new RequestRouter
func New(l log.Logger) *RequestRouter {
	return &RequestRouter{l: l}
}
