package apl

import (
	"context"

	"voice-gpt-skill/pkg/alexa"
)

func (s *service) SupportsVisual(ctx context.Context, device *alexa.Device) (supported bool) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "%s: failed to inspect device: %v", LogPrefixSupportsVisual, r)
			supported = false
		}
	}()

	if device == nil || device.SupportedInterfaces == nil {
		s.l.Debugf(ctx, "%s: no supported interfaces declared", LogPrefixSupportsVisual)
		return false
	}
	_, supported = device.SupportedInterfaces[alexa.InterfaceAPL]
	s.l.Debugf(ctx, "%s: device supports APL: %t", LogPrefixSupportsVisual, supported)
	return supported
}

func (s *service) BuildVisual(ctx context.Context, device *alexa.Device, c Content) *alexa.Directive {
	return s.RendererFor(ctx, device).Render(ctx, c)
}

func (s *service) RendererFor(ctx context.Context, device *alexa.Device) Renderer {
	if s.SupportsVisual(ctx, device) {
		return visualRenderer{l: s.l}
	}
	return textOnlyRenderer{}
}
