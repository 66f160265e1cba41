package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/chatgpt"
)

// handleQuery answers one question and records the exchange. A question
// arriving before any launch starts from an empty history.
func (uc *implUseCase) handleQuery(ctx context.Context, ev skill.Event, sess *model.Session) skill.Response {
	query := strings.TrimSpace(ev.Query)
	if query == "" {
		uc.l.Warnf(ctx, "%s: %v, answering as fallback", LogPrefixQuery, skill.ErrEmptyQuery)
		return uc.handleFallback(ctx, ev)
	}

	history := sess.EnsureHistory()
	uc.l.Infof(ctx, "%s: processing query (history=%d): %s", LogPrefixQuery, len(history), query)

	answer := uc.llm.Complete(ctx, toChatTurns(history.Recent(chatgpt.HistoryWindow)), query)
	sess.AppendTurn(model.Turn{Question: query, Answer: answer})

	qa := fmt.Sprintf(TemplateQueryQA, query, answer)
	return uc.respond(ctx, ev, reply{
		speech:   answer + " " + PromptAnother,
		reprompt: PromptAnother,
		card:     skill.Card{Type: skill.CardStandard, Title: TitleQuery, Text: qa + "\n\n" + PromptAnother},
		visual:   apl.Content{Title: TitleQuery, Primary: qa, Secondary: PromptAnother},
	})
}
