package alexa

import "encoding/json"

// RequestEnvelope is the JSON body the platform POSTs for every event.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

// Session carries the per-conversation state owned by the platform.
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application *Application   `json:"application,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        *User          `json:"user,omitempty"`
}

// Application identifies the skill the request was sent to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account talking to the skill.
type User struct {
	UserID string `json:"userId"`
}

// Context describes the device and surroundings of the request.
type Context struct {
	System *System `json:"System,omitempty"`
}

// System is the platform portion of Context.
type System struct {
	Application *Application `json:"application,omitempty"`
	User        *User        `json:"user,omitempty"`
	Device      *Device      `json:"device,omitempty"`
}

// Device lists the interfaces the requesting device can render.
type Device struct {
	DeviceID            string                     `json:"deviceId"`
	SupportedInterfaces map[string]json.RawMessage `json:"supportedInterfaces,omitempty"`
}

// Request is the event itself.
type Request struct {
	Type      string        `json:"type"`
	RequestID string        `json:"requestId"`
	Timestamp string        `json:"timestamp"`
	Locale    string        `json:"locale,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Error     *RequestError `json:"error,omitempty"`
	Intent    *Intent       `json:"intent,omitempty"`
}

// RequestError is set on SessionEndedRequest when the session ended abnormally.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Intent is the resolved user intention with its slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is a single intent argument.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the value of the named slot, or "" when absent.
func (i *Intent) SlotValue(name string) string {
	if i == nil || i.Slots == nil {
		return ""
	}
	return i.Slots[name].Value
}

// ApplicationID returns the skill ID from the session, falling back to context.
func (e RequestEnvelope) ApplicationID() string {
	if e.Session != nil && e.Session.Application != nil {
		return e.Session.Application.ApplicationID
	}
	if e.Context != nil && e.Context.System != nil && e.Context.System.Application != nil {
		return e.Context.System.Application.ApplicationID
	}
	return ""
}

// UserID returns the requesting user's ID, falling back to context.
func (e RequestEnvelope) UserID() string {
	if e.Session != nil && e.Session.User != nil {
		return e.Session.User.UserID
	}
	if e.Context != nil && e.Context.System != nil && e.Context.System.User != nil {
		return e.Context.System.User.UserID
	}
	return ""
}

// Device returns the requesting device, or nil when the context omits it.
func (e RequestEnvelope) Device() *Device {
	if e.Context == nil || e.Context.System == nil {
		return nil
	}
	return e.Context.System.Device
}
