package alexa

// ResponseEnvelope is the JSON body returned to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

// Response is the rendered reply.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

// OutputSpeech is the text the device speaks.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Reprompt is spoken when the user stays silent.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Card is shown in the companion app. Simple cards use Content,
// Standard cards use Text.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Directive is an APL RenderDocument directive.
type Directive struct {
	Type        string `json:"type"`
	Token       string `json:"token"`
	Document    any    `json:"document"`
	Datasources any    `json:"datasources"`
}

// PlainText builds a PlainText output speech.
func PlainText(text string) *OutputSpeech {
	return &OutputSpeech{Type: OutputSpeechPlainText, Text: text}
}
