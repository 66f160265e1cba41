package apl

import (
	"context"

	"voice-gpt-skill/pkg/alexa"
	pkgLog "voice-gpt-skill/pkg/log"
)

// textOnlyRenderer serves devices without a screen.
type textOnlyRenderer struct{}

func (textOnlyRenderer) Render(ctx context.Context, c Content) *alexa.Directive {
	return nil
}

// visualRenderer serves APL capable devices.
type visualRenderer struct {
	l pkgLog.Logger
}

func (r visualRenderer) Render(ctx context.Context, c Content) (d *alexa.Directive) {
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: failed to build directive: %v", LogPrefixBuildVisual, rec)
			d = nil
		}
	}()

	r.l.Debugf(ctx, "%s: building sequence directive for %q", LogPrefixBuildVisual, c.Title)
	return &alexa.Directive{
		Type:        alexa.DirectiveRenderDocument,
		Token:       DirectiveToken,
		Document:    NewDocument(),
		Datasources: NewDatasources(c),
	}
}
