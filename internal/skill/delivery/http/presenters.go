package http

import (
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/alexa"
)

// newSession wraps the attributes the platform echoed back.
func newSession(env alexa.RequestEnvelope) *model.Session {
	if env.Session == nil {
		return model.NewSession("", true, nil)
	}
	return model.NewSession(env.Session.SessionID, env.Session.New, env.Session.Attributes)
}

// newResponseEnvelope renders resp for the platform. Session attributes are
// returned so the history comes back with the next request. An empty response
// carries no speech and leaves shouldEndSession unset.
func newResponseEnvelope(resp skill.Response, sess *model.Session) alexa.ResponseEnvelope {
	env := alexa.ResponseEnvelope{
		Version:           alexa.ResponseVersion,
		SessionAttributes: sess.Attributes(),
	}
	if resp.IsEmpty() {
		return env
	}

	if resp.Speech != "" {
		env.Response.OutputSpeech = alexa.PlainText(resp.Speech)
	}
	if resp.Reprompt != "" {
		env.Response.Reprompt = &alexa.Reprompt{OutputSpeech: *alexa.PlainText(resp.Reprompt)}
	}
	if resp.Card.Title != "" {
		env.Response.Card = newCard(resp.Card)
	}
	if resp.Directive != nil {
		env.Response.Directives = []alexa.Directive{*resp.Directive}
	}

	end := resp.EndSession
	env.Response.ShouldEndSession = &end
	return env
}

func newCard(c skill.Card) *alexa.Card {
	card := &alexa.Card{Type: string(c.Type), Title: c.Title}
	switch c.Type {
	case skill.CardStandard:
		card.Text = c.Text
	default:
		card.Type = alexa.CardTypeSimple
		card.Content = c.Text
	}
	return card
}
