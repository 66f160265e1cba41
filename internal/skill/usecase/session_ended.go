package usecase

import (
	"context"

	"voice-gpt-skill/internal/skill"
)

// handleSessionEnded only logs: the platform accepts no speech after the
// session has ended.
func (uc *implUseCase) handleSessionEnded(ctx context.Context, ev skill.Event) skill.Response {
	reason := ev.EndReason
	if reason == "" {
		reason = DefaultEndReason
	}
	uc.l.Infof(ctx, "%s: session ended with reason: %s", LogPrefixSessionEnded, reason)

	if ev.EndError != nil {
		uc.l.Errorf(ctx, "%s: session ended error details: type=%s message=%s", LogPrefixSessionEnded, ev.EndError.Type, ev.EndError.Message)
	}

	return skill.Response{}
}
