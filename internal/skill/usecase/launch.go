package usecase

import (
	"context"

	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/skill"
)

func (uc *implUseCase) handleLaunch(ctx context.Context, ev skill.Event, sess *model.Session) skill.Response {
	sess.ResetHistory()

	return uc.respond(ctx, ev, reply{
		speech:   SpeechLaunch,
		reprompt: SpeechLaunch,
		card:     skill.Card{Type: skill.CardStandard, Title: TitleLaunch, Text: CardLaunch},
		visual:   apl.Content{Title: TitleLaunch, Primary: PrimaryLaunch, Secondary: SecondaryLaunch},
	})
}
