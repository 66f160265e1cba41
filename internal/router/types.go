package router

import (
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/alexa"
)

// intentKinds maps platform intent names to event kinds.
var intentKinds = map[string]skill.EventKind{
	alexa.IntentGptQuery: skill.EventQuery,
	alexa.IntentYes:      skill.EventYes,
	alexa.IntentNo:       skill.EventNo,
	alexa.IntentHelp:     skill.EventHelp,
	alexa.IntentFallback: skill.EventFallback,
	alexa.IntentCancel:   skill.EventCancelStop,
	alexa.IntentStop:     skill.EventCancelStop,
}

// RouterOutput is the classification of one request envelope.
type RouterOutput struct {
	Event     skill.Event
	Reasoning string // Set when the request was rerouted
}
