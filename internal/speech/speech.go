// Package speech turns microphone input into text for the overlay input.
package speech

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrUnsupported means no capture backend is available.
	ErrUnsupported = errors.New("speech capture unsupported")
	// ErrNotAllowed means the microphone could not be opened.
	ErrNotAllowed = errors.New("microphone access denied")
)

// ErrorKind names a capture failure.
type ErrorKind string

const (
	ErrNoSpeech    ErrorKind = "no-speech"
	ErrNetwork     ErrorKind = "network"
	ErrDenied      ErrorKind = "not-allowed"
	ErrNoBackend   ErrorKind = "unsupported"
	ErrAudioDevice ErrorKind = "audio-capture"
)

// Segment is one piece of recognized speech.
type Segment struct {
	Text  string
	Final bool
}

// Event is delivered by a Stream. A result event carries every segment
// recognized so far in the session.
type Event struct {
	Segments []Segment
	Err      ErrorKind
	End      bool
}

// Stream is one running capture session.
type Stream interface {
	// Events is closed once the session ends.
	Events() <-chan Event
	// Stop ends capture and delivers the final result before closing.
	Stop()
	// Abort ends capture and discards pending results.
	Abort()
}

// Engine opens capture sessions.
type Engine interface {
	Start(ctx context.Context) (Stream, error)
}

// Receive blocks for the next event. A closed channel yields an End event.
func Receive(ch <-chan Event) Event {
	ev, ok := <-ch
	if !ok {
		return Event{End: true}
	}
	return ev
}

// NoticeText is the toast shown for a capture failure.
func NoticeText(kind ErrorKind) string {
	switch kind {
	case ErrNetwork:
		return "Network error: Check connection."
	case ErrDenied:
		return "Microphone denied. Enable permissions."
	case ErrNoBackend:
		return "Voice input not supported on this system."
	}
	return "Voice input failed."
}

// Transcript joins finalized segments followed by interim ones.
func Transcript(segs []Segment) string {
	var final, interim strings.Builder
	for _, s := range segs {
		if s.Final {
			final.WriteString(s.Text)
		} else {
			interim.WriteString(s.Text)
		}
	}
	return final.String() + interim.String()
}

// Compose appends transcript to base, separated by one space unless base
// is empty or already ends in whitespace.
func Compose(base, transcript string) string {
	if base == "" {
		return transcript
	}
	r, _ := utf8.DecodeLastRuneInString(base)
	if unicode.IsSpace(r) {
		return base + transcript
	}
	return base + " " + transcript
}
