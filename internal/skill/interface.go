package skill

import (
	"context"

	"voice-gpt-skill/internal/model"
)

// UseCase handles one event against the session it belongs to.
type UseCase interface {
	// Handle always returns a well formed Response. It may mutate sess.
	Handle(ctx context.Context, ev Event, sess *model.Session) Response
}
