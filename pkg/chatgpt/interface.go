package chatgpt

import "context"

// IChatGPT answers a question given the recent conversation.
// It always returns text to speak, degrading to a fixed reply on failure.
type IChatGPT interface {
	Complete(ctx context.Context, history []Turn, question string) string
}
