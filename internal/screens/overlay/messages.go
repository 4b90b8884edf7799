package overlay

import (
	"time"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/speech"
)

// replyMsg is sent when the coach has answered a chat turn.
type replyMsg struct {
	Turn  assistant.Turn
	Reply string
}

// visualizedMsg is sent when an illustration for a message is ready or
// has failed.
type visualizedMsg struct {
	SessionID string
	MessageID string
	Image     *llm.Image
	Path      string
	Err       error
}

// editedMsg is sent when an image edit is ready or has failed.
type editedMsg struct {
	Req   assistant.EditRequest
	Image *llm.Image
	Path  string
	Err   error
}

// imageLoadedMsg is sent when a photo was read from disk.
type imageLoadedMsg struct {
	SessionID string
	Path      string
	Image     *llm.Image
	Err       error
}

// imageOpenedMsg reports a failure to hand an image to the viewer.
type imageOpenedMsg struct {
	Err error
}

// speechMsg carries one event from the capture stream of generation Gen.
type speechMsg struct {
	Gen    int
	Events <-chan speech.Event
	Event  speech.Event
}

// spinnerTickMsg animates the busy indicator.
type spinnerTickMsg time.Time
