package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-gpt-skill/internal/router"
	"voice-gpt-skill/pkg/response"
)

// HandleRequest godoc
// @Summary     Handle a skill request
// @Description Accepts a LaunchRequest, IntentRequest or SessionEndedRequest envelope and returns the spoken, card and visual reply. Conversation history travels in sessionAttributes.chat_history.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body alexa.RequestEnvelope true "Request envelope"
// @Success     200  {object} alexa.ResponseEnvelope
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden - application id mismatch"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /alexa [POST]
func (h *handler) HandleRequest(c *gin.Context) {
	ctx := c.Request.Context()

	env, err := h.processSkillReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.skill.delivery.http.HandleRequest: failed to decode envelope: %v", err)
		response.Error(c, err, nil)
		return
	}

	out, err := h.router.Classify(ctx, env)
	if err != nil {
		if !errors.Is(err, router.ErrUnsupportedRequest) {
			h.l.Errorf(ctx, "internal.skill.delivery.http.HandleRequest: classify failed: %v", err)
			response.InternalError(c, err)
			return
		}
		h.l.Warnf(ctx, "internal.skill.delivery.http.HandleRequest: %v", err)
	}

	sess := newSession(env)
	resp := h.uc.Handle(ctx, out.Event, sess)

	h.l.Infof(ctx, "internal.skill.delivery.http.HandleRequest: request_id=%s kind=%s end_session=%t",
		out.Event.RequestID, out.Event.Kind, resp.EndSession)

	c.JSON(http.StatusOK, newResponseEnvelope(resp, sess))
}
