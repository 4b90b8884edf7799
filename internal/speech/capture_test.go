package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	events  chan Event
	stopped int
	aborted int
}

func newFakeStream() *fakeStream {
	return &fakeStream{events: make(chan Event, 4)}
}

func (f *fakeStream) Events() <-chan Event { return f.events }
func (f *fakeStream) Stop()                { f.stopped++ }
func (f *fakeStream) Abort()               { f.aborted++ }

type fakeEngine struct {
	streams []*fakeStream
	err     error
}

func (f *fakeEngine) Start(context.Context) (Stream, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := newFakeStream()
	f.streams = append(f.streams, s)
	return s, nil
}

func TestStopBeforeStartIsNoop(t *testing.T) {
	c := NewCapture(&fakeEngine{})
	c.Stop()
	c.Stop()
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Events())
}

func TestStartAndResults(t *testing.T) {
	eng := &fakeEngine{}
	c := NewCapture(eng)

	gen, notice := c.Start(context.Background(), "Teach")
	require.Empty(t, notice)
	assert.True(t, c.Listening())
	assert.NotNil(t, c.Events())

	events := c.Events()
	u := c.Apply(gen, events, Event{Segments: []Segment{{Text: "fractions ", Final: true}, {Text: "with rotis"}}})
	assert.True(t, u.Changed)
	assert.Equal(t, "Teach fractions with rotis", u.Input)

	u = c.Apply(gen, events, Event{Segments: []Segment{{Text: "fractions", Final: true}}})
	assert.Equal(t, "Teach fractions", u.Input, "base is kept, not the previous result")
}

func TestComposeSeparator(t *testing.T) {
	tests := []struct {
		base, transcript, want string
	}{
		{"", "hello", "hello"},
		{"Hi", "there", "Hi there"},
		{"Hi ", "there", "Hi there"},
		{"Hi\n", "there", "Hi\nthere"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compose(tt.base, tt.transcript))
	}
}

func TestTranscriptOrdersFinalFirst(t *testing.T) {
	segs := []Segment{{Text: "b"}, {Text: "a", Final: true}, {Text: "c"}}
	assert.Equal(t, "abc", Transcript(segs))
}

func TestStartAbortsPreviousStream(t *testing.T) {
	eng := &fakeEngine{}
	c := NewCapture(eng)

	g1, _ := c.Start(context.Background(), "")
	g2, _ := c.Start(context.Background(), "")
	require.Len(t, eng.streams, 2)
	assert.Equal(t, 1, eng.streams[0].aborted)
	assert.NotEqual(t, g1, g2)

	u := c.Apply(g1, eng.streams[0].events, Event{Segments: []Segment{{Text: "stale"}}})
	assert.False(t, u.Changed)
}

func TestEventsFromAnotherCaptureAreIgnored(t *testing.T) {
	first := &fakeEngine{}
	closed := NewCapture(first)
	gen, _ := closed.Start(context.Background(), "")
	staleEvents := closed.Events()
	closed.Abort()

	second := &fakeEngine{}
	c := NewCapture(second)
	liveGen, _ := c.Start(context.Background(), "New")
	require.Equal(t, gen, liveGen, "both captures start at the same generation")

	u := c.Apply(gen, staleEvents, Event{Segments: []Segment{{Text: "old words", Final: true}}})
	assert.Equal(t, Update{}, u)

	u = c.Apply(gen, staleEvents, Event{End: true})
	assert.Equal(t, Update{}, u)
	assert.True(t, c.Listening())
	assert.NotNil(t, c.Events())

	c.Abort()
	assert.Equal(t, 1, second.streams[0].aborted, "the live stream can still be stopped")
}

func TestStopDrainsFinalResult(t *testing.T) {
	eng := &fakeEngine{}
	c := NewCapture(eng)
	gen, _ := c.Start(context.Background(), "")

	c.Stop()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, eng.streams[0].stopped)

	events := c.Events()
	u := c.Apply(gen, events, Event{Segments: []Segment{{Text: "final words", Final: true}}})
	assert.Equal(t, "final words", u.Input)

	c.Apply(gen, events, Event{End: true})
	assert.Nil(t, c.Events())

	c.Stop()
	assert.Equal(t, 1, eng.streams[0].stopped, "stop is idempotent")
}

func TestNoSpeechIsIgnored(t *testing.T) {
	c := NewCapture(&fakeEngine{})
	gen, _ := c.Start(context.Background(), "")

	u := c.Apply(gen, c.Events(), Event{Err: ErrNoSpeech})
	assert.Equal(t, Update{}, u)
	assert.True(t, c.Listening())
}

func TestErrorsStopCaptureWithNotice(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrNetwork, "Network error: Check connection."},
		{ErrDenied, "Microphone denied. Enable permissions."},
		{ErrNoBackend, "Voice input not supported on this system."},
		{ErrAudioDevice, "Voice input failed."},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			eng := &fakeEngine{}
			c := NewCapture(eng)
			gen, _ := c.Start(context.Background(), "")

			u := c.Apply(gen, c.Events(), Event{Err: tt.kind})
			assert.Equal(t, tt.want, u.Notice)
			assert.Equal(t, Idle, c.State())
			assert.Equal(t, 1, eng.streams[0].aborted)
		})
	}
}

func TestStartFailures(t *testing.T) {
	tests := []struct {
		name   string
		engine Engine
		want   string
	}{
		{"nil engine", nil, NoticeText(ErrNoBackend)},
		{"unsupported", &fakeEngine{err: ErrUnsupported}, NoticeText(ErrNoBackend)},
		{"denied", &fakeEngine{err: ErrNotAllowed}, NoticeText(ErrDenied)},
		{"other", &fakeEngine{err: errors.New("busy")}, NoticeText(ErrAudioDevice)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCapture(tt.engine)
			_, notice := c.Start(context.Background(), "x")
			assert.Equal(t, tt.want, notice)
			assert.Equal(t, Idle, c.State())
		})
	}
}

func TestReceiveClosedChannel(t *testing.T) {
	ch := make(chan Event)
	close(ch)
	assert.Equal(t, Event{End: true}, Receive(ch))
}
