package chatgpt

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	pkgLog "voice-gpt-skill/pkg/log"
)

// Client implements IChatGPT on top of the chat completions endpoint.
type Client struct {
	l   pkgLog.Logger
	api *openai.Client
	cfg Config
}

var _ IChatGPT = (*Client)(nil)

// New validates cfg and builds a client. A missing or placeholder API key
// is a configuration error and must stop startup.
func New(cfg Config, l pkgLog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || cfg.APIKey == PlaceholderAPIKey {
		return nil, ErrAPIKeyNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		l:   l,
		api: openai.NewClientWithConfig(apiCfg),
		cfg: cfg,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete sends one request with the last HistoryWindow turns and question.
// It never returns an error: upstream and transport failures are logged and
// mapped to ReplyUpstreamFailure and ReplyRequestFailure respectively. A reply
// without choices or with blank content counts as a request failure.
func (c *Client) Complete(ctx context.Context, history []Turn, question string) string {
	req := openai.ChatCompletionRequest{
		Model:            c.cfg.Model,
		Messages:         BuildMessages(history, question),
		Temperature:      c.cfg.Temperature,
		MaxTokens:        c.cfg.MaxTokens,
		TopP:             c.cfg.TopP,
		PresencePenalty:  c.cfg.PresencePenalty,
		FrequencyPenalty: c.cfg.FrequencyPenalty,
	}

	c.l.Infof(ctx, "%s: sending request (model=%s, messages=%d)", LogPrefixComplete, req.Model, len(req.Messages))
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return c.degrade(ctx, err)
	}

	if len(resp.Choices) == 0 {
		c.l.Errorf(ctx, "%s: response has no choices (id=%s)", LogPrefixComplete, resp.ID)
		return ReplyRequestFailure
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		c.l.Errorf(ctx, "%s: reply has empty content (id=%s, finish_reason=%s)", LogPrefixComplete, resp.ID, resp.Choices[0].FinishReason)
		return ReplyRequestFailure
	}
	c.l.Infof(ctx, "%s: received reply: %s", LogPrefixComplete, preview(text, 50))
	return text
}

func (c *Client) degrade(ctx context.Context, err error) string {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError

	switch {
	case errors.As(err, &apiErr):
		c.l.Errorf(ctx, "%s: upstream error %d: type=%s code=%v param=%s message=%s",
			LogPrefixComplete, apiErr.HTTPStatusCode, apiErr.Type, apiErr.Code, deref(apiErr.Param), apiErr.Message)
		return ReplyUpstreamFailure
	case errors.As(err, &reqErr):
		c.l.Errorf(ctx, "%s: upstream error %d: %s", LogPrefixComplete, reqErr.HTTPStatusCode, string(reqErr.Body))
		return ReplyUpstreamFailure
	default:
		c.l.Errorf(ctx, "%s: request failed: %+v", LogPrefixComplete, err)
		return ReplyRequestFailure
	}
}

// BuildMessages flattens the recent turns into alternating user/assistant
// messages between the system instruction and the new question.
func BuildMessages(history []Turn, question string) []openai.ChatCompletionMessage {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	msgs := make([]openai.ChatCompletionMessage, 0, 2+2*len(history))
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: SystemInstruction})
	for _, t := range history {
		msgs = append(msgs,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: t.Question},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: t.Answer},
		)
	}
	return append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
