package model

import "encoding/json"

// AttrChatHistory is the only session attribute the skill reads or writes.
const AttrChatHistory = "chat_history"

// Session wraps the attribute map the platform keeps for one conversation.
// The platform owns its lifecycle; the skill only touches AttrChatHistory
// and leaves every other key as it found it.
type Session struct {
	ID    string
	New   bool
	attrs map[string]any
}

// NewSession wraps attrs. A nil map is replaced by an empty one.
func NewSession(id string, isNew bool, attrs map[string]any) *Session {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	return &Session{ID: id, New: isNew, attrs: attrs}
}

// Attributes returns the underlying map, to be echoed back to the platform.
func (s *Session) Attributes() map[string]any {
	return s.attrs
}

// HasHistory reports whether chat_history is present at all.
func (s *Session) HasHistory() bool {
	_, ok := s.attrs[AttrChatHistory]
	return ok
}

// History returns the stored chat history. An absent or undecodable value
// reads as an empty history.
func (s *Session) History() ChatHistory {
	raw, ok := s.attrs[AttrChatHistory]
	if !ok || raw == nil {
		return ChatHistory{}
	}
	if h, ok := raw.(ChatHistory); ok {
		return h
	}

	// Attributes decoded from the request envelope arrive as generic JSON values.
	data, err := json.Marshal(raw)
	if err != nil {
		return ChatHistory{}
	}
	var h ChatHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return ChatHistory{}
	}
	if h == nil {
		h = ChatHistory{}
	}
	s.attrs[AttrChatHistory] = h
	return h
}

// EnsureHistory stores an empty chat_history when none is readable and returns
// the current one. Calling it repeatedly is harmless.
func (s *Session) EnsureHistory() ChatHistory {
	h := s.History()
	s.attrs[AttrChatHistory] = h
	return h
}

// ResetHistory sets chat_history to the empty sequence.
func (s *Session) ResetHistory() {
	s.attrs[AttrChatHistory] = ChatHistory{}
}

// AppendTurn adds t after every existing turn.
func (s *Session) AppendTurn(t Turn) {
	h := s.History()
	next := make(ChatHistory, len(h), len(h)+1)
	copy(next, h)
	s.attrs[AttrChatHistory] = append(next, t)
}
