package model

import (
	"encoding/json"
	"errors"
)

// ErrInvalidTurn is returned when a stored turn is neither a pair nor an object.
var ErrInvalidTurn = errors.New("invalid chat turn")

// Turn is one question/answer exchange. It is never modified after being appended.
type Turn struct {
	Question string
	Answer   string
}

// MarshalJSON stores a turn as a ["question", "answer"] pair.
func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Question, t.Answer})
}

// UnmarshalJSON accepts the pair form and {"question": ..., "answer": ...}.
func (t *Turn) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return ErrInvalidTurn
		}
		t.Question, t.Answer = pair[0], pair[1]
		return nil
	}

	var obj struct {
		Question *string `json:"question"`
		Answer   *string `json:"answer"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Question == nil || obj.Answer == nil {
		return ErrInvalidTurn
	}
	t.Question, t.Answer = *obj.Question, *obj.Answer
	return nil
}

// ChatHistory is the ordered list of turns of one session, oldest first.
type ChatHistory []Turn

// Recent returns the last n turns in their original order.
func (h ChatHistory) Recent(n int) ChatHistory {
	if n <= 0 {
		return ChatHistory{}
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}
