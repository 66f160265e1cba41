package apl

import pkgLog "voice-gpt-skill/pkg/log"

type service struct {
	l pkgLog.Logger
}

// New creates the APL service.
func New(l pkgLog.Logger) Service {
	return &service{l: l}
}
