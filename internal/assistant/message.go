// Package assistant implements the conversational overlay: the teaching
// coach that talks to the LLM and the per-overlay session state.
package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sahayak/internal/llm"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat entry. Only Image is ever patched after creation.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Image     *llm.Image
	CreatedAt time.Time
}

// Status is render-only state tracked beside a message.
type Status struct {
	GeneratingImage bool
}

func newMessage(role Role, text string, now time.Time) Message {
	return Message{
		ID:        newID(),
		Role:      role,
		Text:      text,
		CreatedAt: now,
	}
}

// newID returns a time-ordered id.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Transcript is the ordered message list of one overlay plus the transient
// status of each message.
type Transcript struct {
	messages []Message
	status   map[string]Status
}

func newTranscript() *Transcript {
	return &Transcript{status: make(map[string]Status)}
}

func (t *Transcript) append(m Message) {
	t.messages = append(t.messages, m)
}

// Messages returns a copy of the messages in append order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.messages) }

// Get returns the message with id.
func (t *Transcript) Get(id string) (Message, bool) {
	if i := t.index(id); i >= 0 {
		return t.messages[i], true
	}
	return Message{}, false
}

// Status returns the transient status of message id.
func (t *Transcript) Status(id string) Status {
	return t.status[id]
}

func (t *Transcript) setStatus(id string, s Status) {
	if s == (Status{}) {
		delete(t.status, id)
		return
	}
	t.status[id] = s
}

func (t *Transcript) attachImage(id string, img *llm.Image) {
	if i := t.index(id); i >= 0 {
		t.messages[i].Image = img
	}
}

func (t *Transcript) index(id string) int {
	for i := range t.messages {
		if t.messages[i].ID == id {
			return i
		}
	}
	return -1
}
