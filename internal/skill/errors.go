package skill

import "errors"

// Domain-specific errors for the skill package.
var (
	ErrUnknownEvent = errors.New("unknown event kind")
	ErrEmptyQuery   = errors.New("query slot is empty")
)
