package chatgpt

import "errors"

// ErrAPIKeyNotConfigured means the credential is missing or still the placeholder.
var ErrAPIKeyNotConfigured = errors.New("OpenAI API key not configured")
