package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/llm"
)

const (
	sampleRate     = 16000
	bytesPerSample = 2

	// minAudioBytes is half a second of audio.
	minAudioBytes = sampleRate * bytesPerSample / 2

	defaultInterimInterval = 3 * time.Second
)

// recorders are tried in order. Both write raw 16-bit mono PCM to stdout.
var recorders = []struct {
	name string
	args []string
}{
	{"arecord", []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", "16000", "-c", "1", "-"}},
	{"rec", []string{"-q", "-t", "raw", "-r", "16000", "-c", "1", "-b", "16", "-e", "signed-integer", "-"}},
}

// RecorderEngine captures microphone audio with an external recorder
// binary and transcribes it with an llm.Transcriber. Interim results are
// produced every Interval; the final result when the stream is stopped.
type RecorderEngine struct {
	transcriber llm.Transcriber
	interval    time.Duration
	logger      *zap.Logger

	lookPath func(string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewRecorderEngine returns an engine transcribing through tr. A zero
// interval selects the default.
func NewRecorderEngine(tr llm.Transcriber, interval time.Duration, logger *zap.Logger) *RecorderEngine {
	if interval <= 0 {
		interval = defaultInterimInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecorderEngine{
		transcriber: tr,
		interval:    interval,
		logger:      logger.Named("speech"),
		lookPath:    exec.LookPath,
		command:     exec.CommandContext,
	}
}

func (e *RecorderEngine) recorder() (string, []string, error) {
	for _, r := range recorders {
		if path, err := e.lookPath(r.name); err == nil {
			return path, r.args, nil
		}
	}
	return "", nil, fmt.Errorf("no arecord or rec on PATH: %w", ErrUnsupported)
}

// Start launches the recorder.
func (e *RecorderEngine) Start(ctx context.Context) (Stream, error) {
	if e.transcriber == nil {
		return nil, fmt.Errorf("no transcriber: %w", ErrUnsupported)
	}
	name, args, err := e.recorder()
	if err != nil {
		return nil, err
	}

	ctx, abort := context.WithCancel(ctx)
	recCtx, stopRec := context.WithCancel(ctx)

	cmd := e.command(recCtx, name, args...)
	cmd.WaitDelay = time.Second
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stopRec()
		abort()
		return nil, fmt.Errorf("recorder stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stopRec()
		abort()
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("start %s: %w", name, ErrNotAllowed)
		}
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	e.logger.Debug("recorder started", zap.String("recorder", name))

	s := &recorderStream{
		engine:  e,
		ctx:     ctx,
		abort:   abort,
		stopRec: stopRec,
		cmd:     cmd,
		stdout:  stdout,
		stderr:  stderr,
		events:  make(chan Event, 8),
		stopCh:  make(chan struct{}),
	}
	go s.run()
	return s, nil
}

type recorderStream struct {
	engine  *RecorderEngine
	ctx     context.Context
	abort   context.CancelFunc
	stopRec context.CancelFunc
	cmd     *exec.Cmd
	stdout  io.Reader
	stderr  *bytes.Buffer

	events    chan Event
	stopCh    chan struct{}
	stopOnce  sync.Once
	abortOnce sync.Once

	mu  sync.Mutex
	pcm []byte
}

func (s *recorderStream) Events() <-chan Event { return s.events }

func (s *recorderStream) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *recorderStream) Abort() {
	s.abortOnce.Do(s.abort)
}

func (s *recorderStream) run() {
	defer close(s.events)
	defer s.abort()

	readDone := make(chan error, 1)
	go func() { readDone <- s.capture() }()

	ticker := time.NewTicker(s.engine.interval)
	defer ticker.Stop()

	shutdown := func() {
		s.stopRec()
		<-readDone
		_ = s.cmd.Wait()
	}

	var last string
	for {
		select {
		case <-s.ctx.Done():
			shutdown()
			return

		case <-s.stopCh:
			shutdown()
			s.finish()
			return

		case <-readDone:
			waitErr := s.cmd.Wait()
			if s.ctx.Err() != nil {
				return
			}
			if waitErr != nil {
				s.engine.logger.Warn("recorder exited", zap.Error(waitErr), zap.String("stderr", strings.TrimSpace(s.stderr.String())))
				s.emit(Event{Err: recorderExitKind(s.stderr.String())})
				return
			}
			s.finish()
			return

		case <-ticker.C:
			text, err := s.transcribe()
			if err != nil {
				shutdown()
				s.emit(Event{Err: transcribeErrorKind(err)})
				return
			}
			if text != "" && text != last {
				last = text
				s.emit(Event{Segments: []Segment{{Text: text}}})
			}
		}
	}
}

func (s *recorderStream) capture() error {
	buf := make([]byte, 4096)
	for {
		n, err := s.stdout.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.pcm = append(s.pcm, buf[:n]...)
			s.mu.Unlock()
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, fs.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

func (s *recorderStream) finish() {
	text, err := s.transcribe()
	switch {
	case err != nil:
		s.emit(Event{Err: transcribeErrorKind(err)})
	case text == "":
		s.emit(Event{Err: ErrNoSpeech})
	default:
		s.emit(Event{Segments: []Segment{{Text: text, Final: true}}})
	}
}

func (s *recorderStream) transcribe() (string, error) {
	s.mu.Lock()
	pcm := make([]byte, len(s.pcm))
	copy(pcm, s.pcm)
	s.mu.Unlock()

	if len(pcm) < minAudioBytes {
		return "", nil
	}
	ctx := llm.WithPurpose(s.ctx, "speech")
	return s.engine.transcriber.Transcribe(ctx, bytes.NewReader(wavFile(pcm)), "audio/wav")
}

func (s *recorderStream) emit(ev Event) {
	select {
	case s.events <- ev:
	case <-s.ctx.Done():
	}
}

func transcribeErrorKind(err error) ErrorKind {
	switch llm.Classify(err) {
	case llm.CategoryConfiguration:
		return ErrNoBackend
	case llm.CategoryEmptyResponse:
		return ErrNoSpeech
	}
	return ErrNetwork
}

func recorderExitKind(stderr string) ErrorKind {
	s := strings.ToLower(stderr)
	if strings.Contains(s, "permission denied") || strings.Contains(s, "access denied") {
		return ErrDenied
	}
	return ErrAudioDevice
}
