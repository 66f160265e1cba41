package usecase

// Log prefixes
const (
	LogPrefixHandle       = "internal.skill.usecase.Handle"
	LogPrefixQuery        = "internal.skill.usecase.handleQuery"
	LogPrefixSessionEnded = "internal.skill.usecase.handleSessionEnded"
)

// Launch
const (
	SpeechLaunch    = "Chat G.P.T. mode activated"
	TitleLaunch     = "Welcome to ChatGPT"
	CardLaunch      = "ChatGPT Mode is now active.\n\nYou can ask me any question!\n\nI'm ready to help you find answers."
	PrimaryLaunch   = "ChatGPT Mode is now active.\n\nYou can ask me any question!"
	SecondaryLaunch = "I'm ready to help you find answers."
)

// Query
const (
	TitleQuery      = "ChatGPT Response"
	PromptAnother   = "Would you like to ask another question?"
	TemplateQueryQA = "Question:\n%s\n\nAnswer:\n%s"
)

// Yes
const (
	SpeechYes    = "What would you like to know?"
	TitleYes     = "Ask Another Question"
	SecondaryYes = "I'm ready to help!"
)

// No
const (
	SpeechNo    = "Thanks for chatting! Goodbye."
	TitleNo     = "Goodbye"
	CardNo      = "Thanks for chatting! Have a great day!"
	PrimaryNo   = "Thanks for chatting!"
	SecondaryNo = "Have a great day!"
)

// Help
const (
	SpeechHelp    = "You can ask me any question, and I'll use ChatGPT to provide an answer. Just speak your question clearly."
	TitleHelp     = "Help with ChatGPT"
	PrimaryHelp   = "You can ask me any question, and I'll use ChatGPT to provide an answer."
	SecondaryHelp = "Just speak your question clearly."
)

// Fallback
const (
	SpeechFallback    = "I'm not sure what you're asking. You can ask me any question, and I'll try to provide an answer using ChatGPT."
	TitleFallback     = "I Didn't Understand"
	PrimaryFallback   = "I'm not sure what you're asking."
	SecondaryFallback = "You can ask me any question, and I'll try to provide an answer using ChatGPT."
)

// Cancel / Stop
const (
	SpeechCancel    = "Leaving Chat G.P.T. mode"
	TitleCancel     = "Goodbye"
	CardCancel      = "Leaving ChatGPT Mode. Thanks for chatting!"
	PrimaryCancel   = "Leaving ChatGPT Mode"
	SecondaryCancel = "Thanks for chatting!"
)

// Error
const (
	SpeechError    = "Sorry, I had trouble doing what you asked. Please try again."
	TitleError     = "Error Occurred"
	PrimaryError   = "Sorry, I had trouble doing what you asked."
	SecondaryError = "Please try again."
)

// Session ended
const (
	DefaultEndReason = "unknown"
)
