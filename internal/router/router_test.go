package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/alexa"
	"voice-gpt-skill/pkg/log"
)

func intentEnvelope(name string, slots map[string]alexa.Slot) alexa.RequestEnvelope {
	return alexa.RequestEnvelope{
		Request: alexa.Request{
			Type:      alexa.RequestTypeIntent,
			RequestID: "req-1",
			Intent:    &alexa.Intent{Name: name, Slots: slots},
		},
	}
}

func TestClassify_Intents(t *testing.T) {
	r := New(log.NewNop())

	tests := []struct {
		name   string
		intent string
		want   skill.EventKind
	}{
		{"yes", alexa.IntentYes, skill.EventYes},
		{"no", alexa.IntentNo, skill.EventNo},
		{"help", alexa.IntentHelp, skill.EventHelp},
		{"fallback", alexa.IntentFallback, skill.EventFallback},
		{"cancel", alexa.IntentCancel, skill.EventCancelStop},
		{"stop", alexa.IntentStop, skill.EventCancelStop},
		{"unknown intent", "AMAZON.NavigateHomeIntent", skill.EventFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Classify(context.Background(), intentEnvelope(tt.intent, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Event.Kind)
			assert.Equal(t, "req-1", out.Event.RequestID)
		})
	}
}

func TestClassify_Query(t *testing.T) {
	r := New(log.NewNop())

	env := intentEnvelope(alexa.IntentGptQuery, map[string]alexa.Slot{
		alexa.SlotQuery: {Name: alexa.SlotQuery, Value: "  what is the capital of France  "},
	})
	out, err := r.Classify(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, skill.EventQuery, out.Event.Kind)
	assert.Equal(t, "what is the capital of France", out.Event.Query)
	assert.Empty(t, out.Reasoning)
}

func TestClassify_EmptyQueryFallsBack(t *testing.T) {
	r := New(log.NewNop())

	for name, slots := range map[string]map[string]alexa.Slot{
		"no slots":    nil,
		"blank value": {alexa.SlotQuery: {Name: alexa.SlotQuery, Value: "   "}},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := r.Classify(context.Background(), intentEnvelope(alexa.IntentGptQuery, slots))
			require.NoError(t, err)
			assert.Equal(t, skill.EventFallback, out.Event.Kind)
			assert.Equal(t, ReasonEmptyQuery, out.Reasoning)
		})
	}
}

func TestClassify_MissingIntent(t *testing.T) {
	r := New(log.NewNop())

	env := alexa.RequestEnvelope{Request: alexa.Request{Type: alexa.RequestTypeIntent}}
	out, err := r.Classify(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, skill.EventFallback, out.Event.Kind)
	assert.Equal(t, ReasonMissingIntent, out.Reasoning)
}

func TestClassify_LaunchAndSessionEnded(t *testing.T) {
	r := New(log.NewNop())

	out, err := r.Classify(context.Background(), alexa.RequestEnvelope{
		Request: alexa.Request{Type: alexa.RequestTypeLaunch},
	})
	require.NoError(t, err)
	assert.Equal(t, skill.EventLaunch, out.Event.Kind)

	endErr := &alexa.RequestError{Type: "INVALID_RESPONSE", Message: "bad"}
	out, err = r.Classify(context.Background(), alexa.RequestEnvelope{
		Request: alexa.Request{Type: alexa.RequestTypeSessionEnded, Reason: "ERROR", Error: endErr},
	})
	require.NoError(t, err)
	assert.Equal(t, skill.EventSessionEnded, out.Event.Kind)
	assert.Equal(t, "ERROR", out.Event.EndReason)
	assert.Equal(t, endErr, out.Event.EndError)
}

func TestClassify_UnsupportedRequest(t *testing.T) {
	r := New(log.NewNop())

	out, err := r.Classify(context.Background(), alexa.RequestEnvelope{
		Request: alexa.Request{Type: "CanFulfillIntentRequest", RequestID: "req-2"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedRequest))
	assert.Equal(t, skill.EventKind("CanFulfillIntentRequest"), out.Event.Kind)
	assert.Equal(t, "req-2", out.Event.RequestID)
}
