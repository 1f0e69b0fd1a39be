package app

// Wire shapes for the ASH backend. History is server-authoritative and
// insertion-ordered; the client never mutates it, only overlays transient
// state (see session.go).

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ContentPart struct {
	Text string `json:"text"`
}

type Message struct {
	Role  string        `json:"role"` // user|model
	Parts []ContentPart `json:"parts"`
}

// Text returns the first part's text, which is the only part the backend
// ever populates.
func (m Message) Text() string {
	if len(m.Parts) == 0 {
		return ""
	}
	return m.Parts[0].Text
}

func NewMessage(role, text string) Message {
	return Message{Role: role, Parts: []ContentPart{{Text: text}}}
}

type Chat struct {
	ID      string    `json:"_id"`
	Type    ChatType  `json:"type"`
	History []Message `json:"history"`
}

// Answered reports whether the backend has recorded a reply beyond the
// opening entry. Single-turn sessions are terminal once this is true.
func (c *Chat) Answered() bool {
	return len(c.History) > 1
}

type ChatSummary struct {
	ID    string   `json:"_id"`
	Title string   `json:"title"`
	Type  ChatType `json:"type,omitempty"`
}
