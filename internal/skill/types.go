package skill

import "voice-gpt-skill/pkg/alexa"

// EventKind tags the inbound event. Every kind has exactly one handler.
type EventKind string

const (
	EventLaunch       EventKind = "LAUNCH"
	EventQuery        EventKind = "QUERY"
	EventYes          EventKind = "YES"
	EventNo           EventKind = "NO"
	EventHelp         EventKind = "HELP"
	EventFallback     EventKind = "FALLBACK"
	EventCancelStop   EventKind = "CANCEL_STOP"
	EventSessionEnded EventKind = "SESSION_ENDED"
)

// Event is one inbound request with the payload its kind needs.
type Event struct {
	Kind      EventKind
	RequestID string
	Device    *alexa.Device

	// Query is set for EventQuery.
	Query string

	// EndReason and EndError are set for EventSessionEnded.
	EndReason string
	EndError  *alexa.RequestError
}

// CardType selects how the companion app card is laid out.
type CardType string

const (
	CardSimple   CardType = alexa.CardTypeSimple
	CardStandard CardType = alexa.CardTypeStandard
)

// Card is the companion app card of a response.
type Card struct {
	Type  CardType
	Title string
	Text  string
}

// Response is the multi-modal reply to one event.
type Response struct {
	Speech     string
	Reprompt   string
	EndSession bool
	Card       Card
	Directive  *alexa.Directive
}

// IsEmpty reports whether the response carries nothing to render,
// as for a session the platform already ended.
func (r Response) IsEmpty() bool {
	return r.Speech == "" && r.Card.Title == "" && r.Directive == nil
}
