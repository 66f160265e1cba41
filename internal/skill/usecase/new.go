package usecase

import (
	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/skill"
	"voice-gpt-skill/pkg/chatgpt"
	pkgLog "voice-gpt-skill/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	llm    chatgpt.IChatGPT
	visual apl.Service
}

var _ skill.UseCase = (*implUseCase)(nil)

// New creates a new skill UseCase instance.
func New(l pkgLog.Logger, llm chatgpt.IChatGPT, visual apl.Service) *implUseCase {
	return &implUseCase{
		l:      l,
		llm:    llm,
		visual: visual,
	}
}
