package response

// Resp is the standard JSON response body for non-skill endpoints. Skill
// replies use the platform envelope instead.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
