package test

// UtteranceRequest simulates one turn of a conversation
type UtteranceRequest struct {
	SessionID string `json:"session_id"`
	Request   string `json:"request"` // launch, intent (default) or session_ended
	Intent    string `json:"intent"`  // defaults to GptQueryIntent
	Query     string `json:"query"`
	Screen    bool   `json:"screen"`
	Reason    string `json:"reason"` // session_ended only
}

// UtteranceResponse is the rendered reply of one simulated turn
type UtteranceResponse struct {
	Success    bool       `json:"success"`
	SessionID  string     `json:"session_id"`
	Kind       string     `json:"kind,omitempty"`
	Reasoning  string     `json:"reasoning,omitempty"`
	Speech     string     `json:"speech,omitempty"`
	Reprompt   string     `json:"reprompt,omitempty"`
	EndSession bool       `json:"end_session"`
	Card       *CardView  `json:"card,omitempty"`
	HasVisual  bool       `json:"has_visual"`
	History    [][]string `json:"history"`
	Error      string     `json:"error,omitempty"`
	Details    string     `json:"details,omitempty"`
}

// CardView is the companion app card of a simulated reply
type CardView struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
