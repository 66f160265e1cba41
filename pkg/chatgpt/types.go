package chatgpt

import "time"

// Config holds the API credential and the fixed model parameters.
type Config struct {
	APIKey           string
	BaseURL          string
	Model            string
	Temperature      float32
	MaxTokens        int
	TopP             float32
	PresencePenalty  float32
	FrequencyPenalty float32
	Timeout          time.Duration
}

// Turn is a prior question/answer pair sent as context.
type Turn struct {
	Question string
	Answer   string
}
