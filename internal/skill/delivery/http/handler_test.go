package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-gpt-skill/config"
	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/middleware"
	"voice-gpt-skill/internal/router"
	skillHTTP "voice-gpt-skill/internal/skill/delivery/http"
	"voice-gpt-skill/internal/skill/usecase"
	"voice-gpt-skill/pkg/alexa"
	"voice-gpt-skill/pkg/chatgpt"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockChatGPT struct {
	histories [][]chatgpt.Turn
	answer    string
}

func (m *mockChatGPT) Complete(ctx context.Context, history []chatgpt.Turn, question string) string {
	m.histories = append(m.histories, append([]chatgpt.Turn(nil), history...))
	return m.answer
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newEngine(t *testing.T, llm *mockChatGPT, cfg config.SkillConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	uc := usecase.New(l, llm, apl.New(l))
	h := skillHTTP.New(l, uc, router.New(l))

	r := gin.New()
	skillHTTP.RegisterRoutes(r, h, middleware.New(l, cfg))
	return r
}

func post(t *testing.T, r *gin.Engine, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/alexa", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func envelope(reqType string, attrs map[string]any, intent map[string]any, visual bool) map[string]any {
	request := map[string]any{
		"type":      reqType,
		"requestId": "amzn1.echo-api.request.1",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"locale":    "en-US",
	}
	if intent != nil {
		request["intent"] = intent
	}

	device := map[string]any{"deviceId": "device-1", "supportedInterfaces": map[string]any{}}
	if visual {
		device["supportedInterfaces"] = map[string]any{alexa.InterfaceAPL: map[string]any{"runtime": map[string]any{"maxVersion": "1.5"}}}
	}

	return map[string]any{
		"version": "1.0",
		"session": map[string]any{
			"new":         attrs == nil,
			"sessionId":   "amzn1.echo-api.session.1",
			"application": map[string]any{"applicationId": "amzn1.ask.skill.test"},
			"attributes":  attrs,
			"user":        map[string]any{"userId": "amzn1.ask.account.user"},
		},
		"context": map[string]any{
			"System": map[string]any{
				"application": map[string]any{"applicationId": "amzn1.ask.skill.test"},
				"user":        map[string]any{"userId": "amzn1.ask.account.user"},
				"device":      device,
			},
		},
		"request": request,
	}
}

func queryIntent(q string) map[string]any {
	return map[string]any{
		"name":  alexa.IntentGptQuery,
		"slots": map[string]any{alexa.SlotQuery: map[string]any{"name": alexa.SlotQuery, "value": q}},
	}
}

func responseBody(t *testing.T, out map[string]any) map[string]any {
	t.Helper()
	resp, ok := out["response"].(map[string]any)
	require.True(t, ok, "response object missing: %v", out)
	return resp
}

func speech(t *testing.T, out map[string]any) string {
	t.Helper()
	sp, ok := responseBody(t, out)["outputSpeech"].(map[string]any)
	require.True(t, ok, "outputSpeech missing")
	assert.Equal(t, alexa.OutputSpeechPlainText, sp["type"])
	return sp["text"].(string)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleRequest_HistoryRoundTrip(t *testing.T) {
	llm := &mockChatGPT{answer: "Paris."}
	r := newEngine(t, llm, config.SkillConfig{})

	// Launch starts an empty history.
	w, out := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alexa.ResponseVersion, out["version"])
	assert.Equal(t, usecase.SpeechLaunch, speech(t, out))
	attrs := out["sessionAttributes"].(map[string]any)
	assert.Equal(t, []any{}, attrs["chat_history"])

	// The platform echoes attributes back; the first query sees no history.
	w, out = post(t, r, envelope(alexa.RequestTypeIntent, attrs, queryIntent("what is the capital of France"), false))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paris. "+usecase.PromptAnother, speech(t, out))
	assert.Equal(t, false, responseBody(t, out)["shouldEndSession"])
	attrs = out["sessionAttributes"].(map[string]any)
	assert.Equal(t, []any{[]any{"what is the capital of France", "Paris."}}, attrs["chat_history"])

	// The second query is sent with the stored turn.
	_, out = post(t, r, envelope(alexa.RequestTypeIntent, attrs, queryIntent("and of Spain"), false))
	require.Len(t, llm.histories, 2)
	assert.Empty(t, llm.histories[0])
	assert.Equal(t, []chatgpt.Turn{{Question: "what is the capital of France", Answer: "Paris."}}, llm.histories[1])
	assert.Len(t, out["sessionAttributes"].(map[string]any)["chat_history"], 2)
}

func TestHandleRequest_PreservesOtherAttributes(t *testing.T) {
	r := newEngine(t, &mockChatGPT{answer: "ok"}, config.SkillConfig{})

	attrs := map[string]any{"favorite_color": "blue"}
	_, out := post(t, r, envelope(alexa.RequestTypeIntent, attrs, queryIntent("hi"), false))
	got := out["sessionAttributes"].(map[string]any)
	assert.Equal(t, "blue", got["favorite_color"])
	assert.Len(t, got["chat_history"], 1)
}

func TestHandleRequest_Cards(t *testing.T) {
	r := newEngine(t, &mockChatGPT{answer: "ok"}, config.SkillConfig{})

	_, out := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
	card := responseBody(t, out)["card"].(map[string]any)
	assert.Equal(t, alexa.CardTypeStandard, card["type"])
	assert.Equal(t, usecase.TitleLaunch, card["title"])
	assert.Equal(t, usecase.CardLaunch, card["text"])
	assert.NotContains(t, card, "content")

	_, out = post(t, r, envelope(alexa.RequestTypeIntent, map[string]any{}, map[string]any{"name": alexa.IntentHelp}, false))
	card = responseBody(t, out)["card"].(map[string]any)
	assert.Equal(t, alexa.CardTypeSimple, card["type"])
	assert.Equal(t, usecase.SpeechHelp, card["content"])
	assert.NotContains(t, card, "text")
}

func TestHandleRequest_VisualDirective(t *testing.T) {
	r := newEngine(t, &mockChatGPT{answer: "ok"}, config.SkillConfig{})

	_, out := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
	assert.NotContains(t, responseBody(t, out), "directives")

	_, out = post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, true))
	directives, ok := responseBody(t, out)["directives"].([]any)
	require.True(t, ok)
	require.Len(t, directives, 1)
	d := directives[0].(map[string]any)
	assert.Equal(t, alexa.DirectiveRenderDocument, d["type"])
	assert.Equal(t, apl.DirectiveToken, d["token"])
	assert.Contains(t, d, "document")
	assert.Contains(t, d, "datasources")
}

func TestHandleRequest_EndSession(t *testing.T) {
	r := newEngine(t, &mockChatGPT{}, config.SkillConfig{})

	for _, name := range []string{alexa.IntentNo, alexa.IntentCancel, alexa.IntentStop} {
		t.Run(name, func(t *testing.T) {
			_, out := post(t, r, envelope(alexa.RequestTypeIntent, map[string]any{}, map[string]any{"name": name}, false))
			resp := responseBody(t, out)
			assert.Equal(t, true, resp["shouldEndSession"])
			assert.NotContains(t, resp, "reprompt")
		})
	}
}

func TestHandleRequest_SessionEnded(t *testing.T) {
	r := newEngine(t, &mockChatGPT{}, config.SkillConfig{})

	env := envelope(alexa.RequestTypeSessionEnded, map[string]any{}, nil, false)
	env["request"].(map[string]any)["reason"] = "USER_INITIATED"

	w, out := post(t, r, env)
	require.Equal(t, http.StatusOK, w.Code)
	resp := responseBody(t, out)
	assert.NotContains(t, resp, "outputSpeech")
	assert.NotContains(t, resp, "shouldEndSession")
}

func TestHandleRequest_UnsupportedRequestApologizes(t *testing.T) {
	r := newEngine(t, &mockChatGPT{}, config.SkillConfig{})

	w, out := post(t, r, envelope("CanFulfillIntentRequest", map[string]any{}, nil, false))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.SpeechError, speech(t, out))
	assert.Equal(t, false, responseBody(t, out)["shouldEndSession"])
}

func TestHandleRequest_BadEnvelope(t *testing.T) {
	r := newEngine(t, &mockChatGPT{}, config.SkillConfig{})

	w, _ := post(t, r, "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = post(t, r, map[string]any{"version": "1.0", "request": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes_Middleware(t *testing.T) {
	t.Run("application mismatch", func(t *testing.T) {
		r := newEngine(t, &mockChatGPT{}, config.SkillConfig{ApplicationID: "amzn1.ask.skill.other"})
		w, _ := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("application match", func(t *testing.T) {
		r := newEngine(t, &mockChatGPT{}, config.SkillConfig{ApplicationID: "amzn1.ask.skill.test"})
		w, _ := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		r := newEngine(t, &mockChatGPT{}, config.SkillConfig{TimestampTolerance: 150 * time.Second})
		env := envelope(alexa.RequestTypeLaunch, nil, nil, false)
		env["request"].(map[string]any)["timestamp"] = time.Now().Add(-10 * time.Minute).UTC().Format(time.RFC3339)
		w, _ := post(t, r, env)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		r := newEngine(t, &mockChatGPT{}, config.SkillConfig{RateLimitPerMin: 10})
		w, _ := post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
		assert.Equal(t, http.StatusOK, w.Code)
		w, _ = post(t, r, envelope(alexa.RequestTypeLaunch, nil, nil, false))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
