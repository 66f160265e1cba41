package usecase

import (
	"context"

	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/skill"
)

func (uc *implUseCase) handleYes(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech:   SpeechYes,
		reprompt: SpeechYes,
		card:     skill.Card{Type: skill.CardSimple, Title: TitleYes, Text: SpeechYes},
		visual:   apl.Content{Title: TitleYes, Primary: SpeechYes, Secondary: SecondaryYes},
	})
}

func (uc *implUseCase) handleNo(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech: SpeechNo,
		end:    true,
		card:   skill.Card{Type: skill.CardSimple, Title: TitleNo, Text: CardNo},
		visual: apl.Content{Title: TitleNo, Primary: PrimaryNo, Secondary: SecondaryNo},
	})
}

func (uc *implUseCase) handleHelp(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech:   SpeechHelp,
		reprompt: SpeechHelp,
		card:     skill.Card{Type: skill.CardSimple, Title: TitleHelp, Text: SpeechHelp},
		visual:   apl.Content{Title: TitleHelp, Primary: PrimaryHelp, Secondary: SecondaryHelp},
	})
}

func (uc *implUseCase) handleFallback(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech:   SpeechFallback,
		reprompt: SpeechFallback,
		card:     skill.Card{Type: skill.CardSimple, Title: TitleFallback, Text: SpeechFallback},
		visual:   apl.Content{Title: TitleFallback, Primary: PrimaryFallback, Secondary: SecondaryFallback},
	})
}

func (uc *implUseCase) handleCancelStop(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech: SpeechCancel,
		end:    true,
		card:   skill.Card{Type: skill.CardSimple, Title: TitleCancel, Text: CardCancel},
		visual: apl.Content{Title: TitleCancel, Primary: PrimaryCancel, Secondary: SecondaryCancel},
	})
}

// handleError renders the generic apology. It must not panic itself.
func (uc *implUseCase) handleError(ctx context.Context, ev skill.Event) skill.Response {
	return uc.respond(ctx, ev, reply{
		speech:   SpeechError,
		reprompt: SpeechError,
		card:     skill.Card{Type: skill.CardSimple, Title: TitleError, Text: SpeechError},
		visual:   apl.Content{Title: TitleError, Primary: PrimaryError, Secondary: SecondaryError},
	})
}
