package router

import (
	"context"
	"fmt"
	"strings"

	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/alexa"
)

// Classify determines the event kind of env. Unrecognized intents and query
// intents without text become fallback events. Unsupported request types
// return an error along with an event carrying the raw type as its kind.
func (r *RequestRouter) Classify(ctx context.Context, env alexa.RequestEnvelope) (RouterOutput, error) {
	req := env.Request
	ev := skill.Event{
		RequestID: req.RequestID,
		Device:    env.Device(),
	}

	switch req.Type {
	case alexa.RequestTypeLaunch:
		ev.Kind = skill.EventLaunch
	case alexa.RequestTypeSessionEnded:
		ev.Kind = skill.EventSessionEnded
		ev.EndReason = req.Reason
		ev.EndError = req.Error
	case alexa.RequestTypeIntent:
		return r.classifyIntent(ctx, ev, req.Intent), nil
	default:
		ev.Kind = skill.EventKind(req.Type)
		return RouterOutput{Event: ev}, fmt.Errorf("%s: %w: %q", LogPrefixClassify, ErrUnsupportedRequest, req.Type)
	}

	r.l.Debugf(ctx, "%s: classified %s as %s", LogPrefixClassify, req.Type, ev.Kind)
	return RouterOutput{Event: ev}, nil
}

func (r *RequestRouter) classifyIntent(ctx context.Context, ev skill.Event, intent *alexa.Intent) RouterOutput {
	if intent == nil {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ReasonMissingIntent)
		ev.Kind = skill.EventFallback
		return RouterOutput{Event: ev, Reasoning: ReasonMissingIntent}
	}

	kind, ok := intentKinds[intent.Name]
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %s", LogPrefixClassify, ReasonUnknownIntent, intent.Name)
		ev.Kind = skill.EventFallback
		return RouterOutput{Event: ev, Reasoning: ReasonUnknownIntent}
	}

	ev.Kind = kind
	if kind == skill.EventQuery {
		ev.Query = strings.TrimSpace(intent.SlotValue(alexa.SlotQuery))
		if ev.Query == "" {
			r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ReasonEmptyQuery)
			ev.Kind = skill.EventFallback
			return RouterOutput{Event: ev, Reasoning: ReasonEmptyQuery}
		}
	}

	r.l.Infof(ctx, "%s: classified %s as %s", LogPrefixClassify, intent.Name, ev.Kind)
	return RouterOutput{Event: ev}
}
