package chatgpt

import "time"

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when the configuration names none.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTimeout bounds the single completion attempt.
	DefaultTimeout = 10 * time.Second

	// PlaceholderAPIKey is the value shipped in sample configs.
	PlaceholderAPIKey = "YOUR_API_KEY"

	// HistoryWindow is how many prior turns are sent with each question.
	HistoryWindow = 5
)

// SystemInstruction opens every completion request.
const SystemInstruction = "You are a helpful assistant. Provide clear, concise answers. Keep responses under 50 words."

// Replies spoken when the completion API cannot answer.
const (
	ReplyUpstreamFailure = "I'm having trouble connecting right now. Please try again."
	ReplyRequestFailure  = "I encountered an error processing your request."
)

// Log prefixes
const (
	LogPrefixComplete = "pkg.chatgpt.Complete"
)
