package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/router"
	"voice-gpt-skill/pkg/alexa"
)

// HandleUtterance runs one simulated turn through the classifier and the skill
// @Summary Simulate an utterance
// @Description Build a request envelope from a short description, run it through the skill and return the rendered reply. Sessions are kept in memory by session_id; omit it to start a new one.
// @Tags test
// @Accept json
// @Produce json
// @Param request body UtteranceRequest true "Simulated utterance"
// @Success 200 {object} UtteranceResponse
// @Failure 400 {object} UtteranceResponse
// @Router /test/utterance [post]
func (h *handler) HandleUtterance(c *gin.Context) {
	ctx := c.Request.Context()

	var req UtteranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, UtteranceResponse{Success: false, Error: "Invalid request", Details: err.Error()})
		return
	}

	attrs, isNew := h.loadSession(req.SessionID)
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	env, err := buildEnvelope(req, attrs, isNew)
	if err != nil {
		c.JSON(400, UtteranceResponse{Success: false, SessionID: req.SessionID, Error: "Invalid request", Details: err.Error()})
		return
	}

	out, err := h.router.Classify(ctx, env)
	if err != nil && !errors.Is(err, router.ErrUnsupportedRequest) {
		h.l.Errorf(ctx, "internal.test.HandleUtterance: classification failed: %v", err)
		c.JSON(500, UtteranceResponse{Success: false, SessionID: req.SessionID, Error: "Classification failed", Details: err.Error()})
		return
	}

	sess := model.NewSession(req.SessionID, isNew, attrs)
	resp := h.uc.Handle(ctx, out.Event, sess)

	if resp.EndSession || env.Request.Type == alexa.RequestTypeSessionEnded {
		h.sessions.Remove(req.SessionID)
	} else {
		h.sessions.Add(req.SessionID, sess.Attributes())
	}

	result := UtteranceResponse{
		Success:    true,
		SessionID:  req.SessionID,
		Kind:       string(out.Event.Kind),
		Reasoning:  out.Reasoning,
		Speech:     resp.Speech,
		Reprompt:   resp.Reprompt,
		EndSession: resp.EndSession,
		HasVisual:  resp.Directive != nil,
		History:    historyView(sess.History()),
	}
	if resp.Card.Title != "" {
		result.Card = &CardView{Type: string(resp.Card.Type), Title: resp.Card.Title, Text: resp.Card.Text}
	}

	h.l.Infof(ctx, "internal.test.HandleUtterance: session_id=%s kind=%s end_session=%t",
		req.SessionID, out.Event.Kind, resp.EndSession)

	c.JSON(200, result)
}

// HandleResetSession drops a simulated session
// @Summary Reset simulated session
// @Description Forget the attributes of a simulated session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	removed := h.sessions.Remove(req.SessionID)
	h.l.Infof(ctx, "internal.test.HandleResetSession: session_id=%s removed=%t", req.SessionID, removed)

	c.JSON(200, ResetSessionResponse{
		Success:   true,
		Message:   fmt.Sprintf("Session cleared: %s", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}

// loadSession returns a copy of the stored attributes, or an empty map for a
// new session.
func (h *handler) loadSession(id string) (map[string]any, bool) {
	if id == "" {
		return map[string]any{}, true
	}
	if attrs, ok := h.sessions.Get(id); ok {
		return maps.Clone(attrs), false
	}
	return map[string]any{}, true
}

func buildEnvelope(req UtteranceRequest, attrs map[string]any, isNew bool) (alexa.RequestEnvelope, error) {
	env := alexa.RequestEnvelope{
		Version: "1.0",
		Session: &alexa.Session{
			New:        isNew,
			SessionID:  req.SessionID,
			Attributes: attrs,
		},
		Context: &alexa.Context{System: &alexa.System{
			Device: &alexa.Device{DeviceID: "simulator", SupportedInterfaces: map[string]json.RawMessage{}},
		}},
		Request: alexa.Request{
			RequestID: "simulator." + uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Locale:    "en-US",
		},
	}
	if req.Screen {
		env.Context.System.Device.SupportedInterfaces[alexa.InterfaceAPL] = json.RawMessage(`{}`)
	}

	switch strings.ToLower(req.Request) {
	case "launch":
		env.Request.Type = alexa.RequestTypeLaunch
	case "session_ended":
		env.Request.Type = alexa.RequestTypeSessionEnded
		env.Request.Reason = req.Reason
	case "", "intent":
		name := req.Intent
		if name == "" {
			name = alexa.IntentGptQuery
		}
		env.Request.Type = alexa.RequestTypeIntent
		env.Request.Intent = &alexa.Intent{Name: name}
		if req.Query != "" {
			env.Request.Intent.Slots = map[string]alexa.Slot{
				alexa.SlotQuery: {Name: alexa.SlotQuery, Value: req.Query},
			}
		}
	default:
		return env, fmt.Errorf("unknown request %q: want launch, intent or session_ended", req.Request)
	}

	return env, nil
}

func historyView(h model.ChatHistory) [][]string {
	view := make([][]string, len(h))
	for i, t := range h {
		view[i] = []string{t.Question, t.Answer}
	}
	return view
}
