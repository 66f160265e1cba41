package alexa

// Request types.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names handled by the skill.
const (
	IntentGptQuery = "GptQueryIntent"
	IntentYes      = "AMAZON.YesIntent"
	IntentNo       = "AMAZON.NoIntent"
	IntentHelp     = "AMAZON.HelpIntent"
	IntentFallback = "AMAZON.FallbackIntent"
	IntentCancel   = "AMAZON.CancelIntent"
	IntentStop     = "AMAZON.StopIntent"
)

// SlotQuery is the free text slot of GptQueryIntent.
const SlotQuery = "query"

// InterfaceAPL is the supportedInterfaces key announcing APL rendering.
const InterfaceAPL = "Alexa.Presentation.APL"

// Response schema constants.
const (
	ResponseVersion         = "1.0"
	OutputSpeechPlainText   = "PlainText"
	CardTypeSimple          = "Simple"
	CardTypeStandard        = "Standard"
	DirectiveRenderDocument = "Alexa.Presentation.APL.RenderDocument"
)
