package usecase

import (
	"context"
	"runtime/debug"

	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/skill"
)

// Handle dispatches ev to its handler. A panic in any handler is logged and
// answered with the generic apology; the session stays open.
func (uc *implUseCase) Handle(ctx context.Context, ev skill.Event, sess *model.Session) (resp skill.Response) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: %s handler panicked: %v\n%s", LogPrefixHandle, ev.Kind, r, debug.Stack())
			resp = uc.handleError(ctx, ev)
		}
	}()

	if sess == nil {
		sess = model.NewSession("", true, nil)
	}

	switch ev.Kind {
	case skill.EventLaunch:
		return uc.handleLaunch(ctx, ev, sess)
	case skill.EventQuery:
		return uc.handleQuery(ctx, ev, sess)
	case skill.EventYes:
		return uc.handleYes(ctx, ev)
	case skill.EventNo:
		return uc.handleNo(ctx, ev)
	case skill.EventHelp:
		return uc.handleHelp(ctx, ev)
	case skill.EventFallback:
		return uc.handleFallback(ctx, ev)
	case skill.EventCancelStop:
		return uc.handleCancelStop(ctx, ev)
	case skill.EventSessionEnded:
		return uc.handleSessionEnded(ctx, ev)
	default:
		uc.l.Errorf(ctx, "%s: %v: %q", LogPrefixHandle, skill.ErrUnknownEvent, ev.Kind)
		return uc.handleError(ctx, ev)
	}
}
