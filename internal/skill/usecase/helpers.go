package usecase

import (
	"context"

	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/chatgpt"
)

// reply is the modality independent content of a response.
type reply struct {
	speech   string
	reprompt string
	end      bool
	card     skill.Card
	visual   apl.Content
}

// respond renders r for the device of ev. The visual directive is attached
// only when the device's renderer produces one.
func (uc *implUseCase) respond(ctx context.Context, ev skill.Event, r reply) skill.Response {
	resp := skill.Response{
		Speech:     r.speech,
		EndSession: r.end,
		Card:       r.card,
		Directive:  uc.visual.RendererFor(ctx, ev.Device).Render(ctx, r.visual),
	}
	if !r.end {
		resp.Reprompt = r.reprompt
	}
	return resp
}

func toChatTurns(h model.ChatHistory) []chatgpt.Turn {
	turns := make([]chatgpt.Turn, len(h))
	for i, t := range h {
		turns[i] = chatgpt.Turn{Question: t.Question, Answer: t.Answer}
	}
	return turns
}
