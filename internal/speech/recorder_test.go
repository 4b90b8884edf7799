package speech

import (
	"context"
	"encoding/binary"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/llm"
)

func shellEngine(t *testing.T, tr llm.Transcriber, script string) *RecorderEngine {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	e := NewRecorderEngine(tr, time.Hour, nil)
	e.lookPath = func(name string) (string, error) { return name, nil }
	e.command = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
	return e
}

func drain(t *testing.T, s Stream) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatal("stream did not close")
		}
	}
}

func TestRecorderUnsupported(t *testing.T) {
	e := NewRecorderEngine(llm.NewMockProvider(), 0, nil)
	e.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	_, err := e.Start(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = NewRecorderEngine(nil, 0, nil).Start(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRecorderStopTranscribesRecording(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddTranscript(llm.MockTranscript{Text: "how do I teach fractions"})
	e := shellEngine(t, mock, "head -c 20000 /dev/zero; exec sleep 30")

	s, err := e.Start(context.Background())
	require.NoError(t, err)

	rs := s.(*recorderStream)
	require.Eventually(t, func() bool {
		rs.mu.Lock()
		defer rs.mu.Unlock()
		return len(rs.pcm) >= 20000
	}, 5*time.Second, 10*time.Millisecond)

	s.Stop()
	events := drain(t, s)
	require.Len(t, events, 1)
	assert.Equal(t, []Segment{{Text: "how do I teach fractions", Final: true}}, events[0].Segments)

	require.Len(t, mock.AudioCalls, 1)
	assert.Equal(t, "RIFF", string(mock.AudioCalls[0][:4]))
	assert.Len(t, mock.AudioCalls[0], 44+20000)
}

func TestRecorderShortRecordingIsNoSpeech(t *testing.T) {
	e := shellEngine(t, llm.NewMockProvider(), "exec sleep 30")

	s, err := e.Start(context.Background())
	require.NoError(t, err)
	s.Stop()

	events := drain(t, s)
	require.Len(t, events, 1)
	assert.Equal(t, ErrNoSpeech, events[0].Err)
}

func TestRecorderPermissionDenied(t *testing.T) {
	e := shellEngine(t, llm.NewMockProvider(), "echo 'audio open error: Permission denied' >&2; exit 1")

	s, err := e.Start(context.Background())
	require.NoError(t, err)

	events := drain(t, s)
	require.Len(t, events, 1)
	assert.Equal(t, ErrDenied, events[0].Err)
}

func TestRecorderAbortDropsResults(t *testing.T) {
	mock := llm.NewMockProvider()
	e := shellEngine(t, mock, "head -c 20000 /dev/zero; exec sleep 30")

	s, err := e.Start(context.Background())
	require.NoError(t, err)
	s.Abort()

	assert.Empty(t, drain(t, s))
	assert.Empty(t, mock.AudioCalls)
}

func TestTranscribeErrorKind(t *testing.T) {
	assert.Equal(t, ErrNoBackend, transcribeErrorKind(llm.ErrMissingCredential))
	assert.Equal(t, ErrNetwork, transcribeErrorKind(errors.New("dial tcp")))
	assert.Equal(t, ErrNetwork, transcribeErrorKind(&llm.ErrAuthentication{}))
}

func TestWavHeader(t *testing.T) {
	pcm := make([]byte, 100)
	w := wavFile(pcm)

	require.Len(t, w, 144)
	assert.Equal(t, "RIFF", string(w[0:4]))
	assert.Equal(t, uint32(136), binary.LittleEndian.Uint32(w[4:8]))
	assert.Equal(t, "WAVE", string(w[8:12]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(w[24:28]))
	assert.Equal(t, "data", string(w[36:40]))
	assert.Equal(t, uint32(100), binary.LittleEndian.Uint32(w[40:44]))
}
