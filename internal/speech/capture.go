package speech

import (
	"context"
	"errors"
)

// State is the capture toggle state.
type State int

const (
	Idle State = iota
	Listening
)

func (s State) String() string {
	if s == Listening {
		return "listening"
	}
	return "idle"
}

// Update is the effect of an applied event.
type Update struct {
	Input   string
	Changed bool
	Notice  string
}

// Capture is the speech toggle of one overlay. At most one stream is live;
// events are accepted only from the live stream, identified by generation and
// event channel, so results of an older stream or of another capture are
// dropped. It is driven from a single goroutine.
type Capture struct {
	engine Engine
	state  State
	base   string
	stream Stream
	gen    int
}

// NewCapture returns an idle capture. A nil engine reports unsupported on
// Start.
func NewCapture(engine Engine) *Capture {
	return &Capture{engine: engine}
}

// State returns the toggle state.
func (c *Capture) State() State { return c.state }

// Listening reports whether capture is on.
func (c *Capture) Listening() bool { return c.state == Listening }

// Events returns the current stream's events, or nil when none is live.
func (c *Capture) Events() <-chan Event {
	if c.stream == nil {
		return nil
	}
	return c.stream.Events()
}

// Start aborts any live stream and opens a new one that appends to base.
// It returns the new generation and a notice when the engine refused.
func (c *Capture) Start(ctx context.Context, base string) (int, string) {
	c.Abort()
	c.gen++

	if c.engine == nil {
		return c.gen, NoticeText(ErrNoBackend)
	}
	stream, err := c.engine.Start(ctx)
	if err != nil {
		return c.gen, NoticeText(startErrorKind(err))
	}
	c.stream = stream
	c.base = base
	c.state = Listening
	return c.gen, ""
}

// Stop turns capture off and lets the stream deliver its final result.
// Stopping while idle does nothing.
func (c *Capture) Stop() {
	if c.state != Listening {
		return
	}
	c.state = Idle
	if c.stream != nil {
		c.stream.Stop()
	}
}

// Abort ends capture and drops the stream.
func (c *Capture) Abort() {
	if c.stream != nil {
		c.stream.Abort()
		c.stream = nil
	}
	c.state = Idle
}

// Owns reports whether events is the channel of the live stream of
// generation gen.
func (c *Capture) Owns(gen int, events <-chan Event) bool {
	return c.stream != nil && gen == c.gen && events != nil && events == c.stream.Events()
}

// Apply folds ev, received on events from stream generation gen, into the
// capture. Events from any other stream are ignored.
func (c *Capture) Apply(gen int, events <-chan Event, ev Event) Update {
	if !c.Owns(gen, events) {
		return Update{}
	}
	switch {
	case ev.End:
		c.stream = nil
		c.state = Idle
		return Update{}
	case ev.Err == ErrNoSpeech:
		return Update{}
	case ev.Err != "":
		c.Abort()
		return Update{Notice: NoticeText(ev.Err)}
	}
	return Update{Input: Compose(c.base, Transcript(ev.Segments)), Changed: true}
}

func startErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnsupported):
		return ErrNoBackend
	case errors.Is(err, ErrNotAllowed):
		return ErrDenied
	}
	return ErrAudioDevice
}
