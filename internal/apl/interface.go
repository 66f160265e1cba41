package apl

import (
	"context"

	"voice-gpt-skill/pkg/alexa"
)

// Service decides and builds the visual part of a response.
type Service interface {
	// SupportsVisual reports whether the device renders APL documents.
	// It never panics; anything it cannot inspect counts as unsupported.
	SupportsVisual(ctx context.Context, device *alexa.Device) bool

	// BuildVisual returns a RenderDocument directive for c, or nil when the
	// device cannot render it or construction fails.
	BuildVisual(ctx context.Context, device *alexa.Device, c Content) *alexa.Directive

	// RendererFor picks the renderer matching the device's capabilities.
	RendererFor(ctx context.Context, device *alexa.Device) Renderer
}

// Renderer produces the optional visual directive of a response.
type Renderer interface {
	Render(ctx context.Context, c Content) *alexa.Directive
}
