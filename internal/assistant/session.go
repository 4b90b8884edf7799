package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/profile"
)

// Mode selects what the overlay input does.
type Mode int

const (
	ModeChat Mode = iota
	ModeImageEdit
)

// ImageState is the image-edit sub-flow state.
type ImageState int

const (
	NoImage ImageState = iota
	ImageSelected
	EditPending
	Edited
)

func (s ImageState) String() string {
	switch s {
	case NoImage:
		return "no-image"
	case ImageSelected:
		return "selected"
	case EditPending:
		return "pending"
	case Edited:
		return "edited"
	}
	return "unknown"
}

// Turn is an in-flight chat exchange.
type Turn struct {
	SessionID string
	UserMsgID string
	Text      string
	History   []Message
}

// EditRequest is an in-flight image edit.
type EditRequest struct {
	SessionID   string
	Seq         int
	Source      *llm.Image
	Instruction string
}

type imageEdit struct {
	state        ImageState
	original     *llm.Image
	edited       *llm.Image
	showOriginal bool
	seq          int
}

// Session is the state of one overlay, from open to close. It is not safe
// for concurrent use; results of background calls are applied from the
// event loop through the Complete/Finish methods.
type Session struct {
	ID      string
	coach   *Coach
	profile profile.UserProfile
	now     func() time.Time

	transcript *Transcript
	pending    int
	closed     bool
	mode       Mode
	image      imageEdit
}

// NewSession opens an overlay session seeded with the greeting.
func NewSession(coach *Coach, p profile.UserProfile) *Session {
	s := &Session{
		ID:         newID(),
		coach:      coach,
		profile:    p,
		now:        time.Now,
		transcript: newTranscript(),
	}
	s.transcript.append(newMessage(RoleAssistant, Greeting(p), s.now()))
	return s
}

// Coach returns the coach used for background calls.
func (s *Session) Coach() *Coach { return s.coach }

// Profile returns the profile the session was opened with.
func (s *Session) Profile() profile.UserProfile { return s.profile }

// Transcript returns the session transcript.
func (s *Session) Transcript() *Transcript { return s.transcript }

// Sending reports whether any chat turn is awaiting a reply. It only gates
// the send affordance.
func (s *Session) Sending() bool { return s.pending > 0 }

// Closed reports whether Close was called.
func (s *Session) Closed() bool { return s.closed }

// Close ends the session. Later completions are discarded.
func (s *Session) Close() { s.closed = true }

// Mode returns the input mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches the input mode.
func (s *Session) SetMode(m Mode) { s.mode = m }

// BeginSend appends the user message and returns the turn to answer.
// Blank text or a closed session yields false.
func (s *Session) BeginSend(text string) (Turn, bool) {
	text = strings.TrimSpace(text)
	if s.closed || text == "" {
		return Turn{}, false
	}
	history := s.transcript.Messages()
	msg := newMessage(RoleUser, text, s.now())
	s.transcript.append(msg)
	s.pending++
	return Turn{SessionID: s.ID, UserMsgID: msg.ID, Text: text, History: history}, true
}

// CompleteSend appends reply for turn. It reports false when the turn
// belongs to another or a closed session.
func (s *Session) CompleteSend(t Turn, reply string) bool {
	if s.closed || t.SessionID != s.ID {
		return false
	}
	if s.pending > 0 {
		s.pending--
	}
	s.transcript.append(newMessage(RoleAssistant, reply, s.now()))
	return true
}

// Send runs a whole chat turn synchronously.
func (s *Session) Send(ctx context.Context, text string) (Message, bool) {
	turn, ok := s.BeginSend(text)
	if !ok {
		return Message{}, false
	}
	reply := s.coach.Reply(ctx, s.profile, turn.History, turn.Text)
	if !s.CompleteSend(turn, reply) {
		return Message{}, false
	}
	msgs := s.transcript.messages
	return msgs[len(msgs)-1], true
}

// BeginVisualize marks message id as generating and returns its text. Only
// assistant messages without an image or a generation in flight qualify.
func (s *Session) BeginVisualize(id string) (string, bool) {
	if s.closed {
		return "", false
	}
	m, ok := s.transcript.Get(id)
	if !ok || m.Role != RoleAssistant || m.Image != nil || strings.TrimSpace(m.Text) == "" {
		return "", false
	}
	st := s.transcript.Status(id)
	if st.GeneratingImage {
		return "", false
	}
	st.GeneratingImage = true
	s.transcript.setStatus(id, st)
	return m.Text, true
}

// FinishVisualize applies a visualize result. A failure leaves the message
// unchanged and returns a notice.
func (s *Session) FinishVisualize(id string, img *llm.Image, err error) *Notice {
	if s.closed {
		return nil
	}
	st := s.transcript.Status(id)
	st.GeneratingImage = false
	s.transcript.setStatus(id, st)

	if err != nil || img == nil {
		return visualizeFailedNotice
	}
	s.transcript.attachImage(id, img)
	return nil
}

// ImageState returns the image-edit state.
func (s *Session) ImageState() ImageState { return s.image.state }

// SelectImage loads a new source image and drops any previous edit.
func (s *Session) SelectImage(img *llm.Image) bool {
	if s.closed || img == nil || len(img.Data) == 0 {
		return false
	}
	s.image = imageEdit{state: ImageSelected, original: img, seq: s.image.seq + 1}
	return true
}

// ClearImage returns to NoImage. A pending edit is discarded.
func (s *Session) ClearImage() {
	s.image = imageEdit{seq: s.image.seq + 1}
}

// BeginEdit starts an edit of the selected image.
func (s *Session) BeginEdit(instruction string) (EditRequest, bool) {
	instruction = strings.TrimSpace(instruction)
	if s.closed || instruction == "" {
		return EditRequest{}, false
	}
	if s.image.state != ImageSelected && s.image.state != Edited {
		return EditRequest{}, false
	}
	s.image.state = EditPending
	return EditRequest{
		SessionID:   s.ID,
		Seq:         s.image.seq,
		Source:      s.image.original,
		Instruction: instruction,
	}, true
}

// FinishEdit applies an edit result. On failure the previous images are
// kept and a notice is returned.
func (s *Session) FinishEdit(req EditRequest, img *llm.Image, err error) *Notice {
	if s.closed || req.SessionID != s.ID || req.Seq != s.image.seq || s.image.state != EditPending {
		return nil
	}
	if err != nil || img == nil {
		if s.image.edited != nil {
			s.image.state = Edited
		} else {
			s.image.state = ImageSelected
		}
		return editFailedNotice
	}
	s.image.edited = img
	s.image.showOriginal = false
	s.image.state = Edited
	return nil
}

// ToggleOriginal flips between the edited and original image.
func (s *Session) ToggleOriginal() {
	if s.image.state == Edited {
		s.image.showOriginal = !s.image.showOriginal
	}
}

// ShowingOriginal reports whether the original is displayed.
func (s *Session) ShowingOriginal() bool {
	return s.image.edited == nil || s.image.showOriginal
}

// DisplayedImage returns the image the edit panel shows.
func (s *Session) DisplayedImage() *llm.Image {
	if s.image.edited != nil && !s.image.showOriginal {
		return s.image.edited
	}
	return s.image.original
}
