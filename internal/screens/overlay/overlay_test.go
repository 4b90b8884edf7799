package overlay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/speech"
	"github.com/abhisek/sahayak/internal/stats"
)

var (
	enter     = tea.KeyPressMsg{Code: tea.KeyEnter}
	testPhoto = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	teacher   = profile.UserProfile{Name: "Sunita Devi", Grade: "Grade 4", Subject: "Math", Language: "Hindi"}
)

func ctrlKey(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

func text(s string) llm.MockResponse { return llm.MockResponse{Content: []byte(s)} }

func newOverlay(t *testing.T, provider llm.Provider, engine speech.Engine) *OverlayScreen {
	t.Helper()
	return New(Deps{
		Coach:    assistant.NewCoach(provider, nil, nil),
		Profile:  teacher,
		Engine:   engine,
		ImageDir: t.TempDir(),
	})
}

// run executes cmd, flattening batches, and returns every message.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed passes msgs of the asynchronous result types back to o.
func feed(o *OverlayScreen, msgs []tea.Msg) []tea.Msg {
	var rest []tea.Msg
	for _, m := range msgs {
		switch m.(type) {
		case replyMsg, visualizedMsg, editedMsg, imageLoadedMsg, speechMsg:
			o.Update(m)
		default:
			rest = append(rest, m)
		}
	}
	return rest
}

func sendText(o *OverlayScreen, s string) []tea.Msg {
	o.input.SetValue(s)
	_, cmd := o.Update(enter)
	return run(cmd)
}

func TestGreetingOnOpen(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	msgs := o.Session().Transcript().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, assistant.RoleAssistant, msgs[0].Role)
	assert.Contains(t, msgs[0].Text, "Namaste Sunita Devi!")
	assert.True(t, o.CapturingInput())
}

func TestSendRecordsQueryAndAppendsReply(t *testing.T) {
	mock := llm.NewMockProvider(text("Use rotis cut into halves."))
	o := newOverlay(t, mock, nil)

	msgs := sendText(o, "How do I teach fractions?")
	assert.Empty(t, o.input.Value())

	rest := feed(o, msgs)
	assert.Contains(t, rest, screen.DispatchMsg{Action: controller.RecordActivity{Kind: stats.KindQuery}})

	got := o.Session().Transcript().Messages()
	require.Len(t, got, 3)
	assert.Equal(t, "How do I teach fractions?", got[1].Text)
	assert.Equal(t, "Use rotis cut into halves.", got[2].Text)
	assert.False(t, o.Session().Sending())
}

func TestMissingCredentialReply(t *testing.T) {
	o := New(Deps{Coach: assistant.NewCoach(nil, nil, nil), Profile: teacher})

	feed(o, sendText(o, "How do I teach fractions?"))

	got := o.Session().Transcript().Messages()
	require.Len(t, got, 3)
	assert.Equal(t, assistant.RoleUser, got[1].Role)
	assert.Equal(t, assistant.FallbackFor(llm.CategoryConfiguration), got[2].Text)
}

func TestBlankInputDoesNothing(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	o.input.SetValue("   ")
	_, cmd := o.Update(enter)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, o.Session().Transcript().Len())
}

func TestRepliesAfterCloseAreDropped(t *testing.T) {
	mock := llm.NewMockProvider(text("late"))
	o := newOverlay(t, mock, nil)

	msgs := sendText(o, "hello")
	o.Close()
	feed(o, msgs)

	assert.Equal(t, 2, o.Session().Transcript().Len())
}

func TestEscClosesOverlay(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	_, cmd := o.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, screen.DispatchMsg{Action: controller.CloseOverlay{}}, cmd())
}

func TestVisualizeAttachesAndSavesImage(t *testing.T) {
	mock := llm.NewMockProvider(
		text("Count stones in groups of ten."),
		text(`{"prompt":"Chalk drawing of stones in groups of ten.","concrete":true}`),
	)
	img := &llm.Image{MIMEType: "image/png", Data: testPhoto}
	mock.AddImage(llm.MockImage{Image: img})
	o := newOverlay(t, mock, nil)
	feed(o, sendText(o, "Place value?"))

	_, cmd := o.Update(ctrlKey('v'))
	require.NotNil(t, cmd)
	feed(o, run(cmd))

	msgs := o.Session().Transcript().Messages()
	reply := msgs[len(msgs)-1]
	assert.Equal(t, img, reply.Image)
	assert.False(t, o.Session().Transcript().Status(reply.ID).GeneratingImage)

	path := o.imagePaths[reply.ID]
	require.NotEmpty(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testPhoto, data)

	_, cmd = o.Update(ctrlKey('v'))
	assert.Nil(t, cmd, "an illustrated message cannot be visualized again")
}

func TestVisualizeFailureShowsNotice(t *testing.T) {
	mock := llm.NewMockProvider(
		text("Try a clap pattern."),
		text(`{"prompt":"Children clapping.","concrete":true}`),
	)
	o := newOverlay(t, mock, nil)
	feed(o, sendText(o, "Noisy class?"))

	_, cmd := o.Update(ctrlKey('v'))
	feed(o, run(cmd))

	assert.Equal(t, "Could not generate image. Try again.", o.toast.Text())
	msgs := o.Session().Transcript().Messages()
	assert.Nil(t, msgs[len(msgs)-1].Image)
}

func TestCursorSelectsCoachReplies(t *testing.T) {
	mock := llm.NewMockProvider(text("first"), text("second"))
	o := newOverlay(t, mock, nil)
	feed(o, sendText(o, "one"))
	feed(o, sendText(o, "two"))

	msgs := o.Session().Transcript().Messages()
	assert.Equal(t, msgs[4].ID, o.selectedID())

	o.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, msgs[2].ID, o.selectedID())
	o.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, msgs[0].ID, o.selectedID())
	o.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, msgs[0].ID, o.selectedID())
	o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, msgs[2].ID, o.selectedID())
}

type fakeStream struct {
	events  chan speech.Event
	aborted int
}

func (f *fakeStream) Events() <-chan speech.Event { return f.events }
func (f *fakeStream) Stop()                       {}
func (f *fakeStream) Abort()                      { f.aborted++ }

type fakeEngine struct {
	stream *fakeStream
}

func (f *fakeEngine) Start(context.Context) (speech.Stream, error) {
	f.stream = &fakeStream{events: make(chan speech.Event, 4)}
	return f.stream, nil
}

func TestSpeechAppendsToInput(t *testing.T) {
	eng := &fakeEngine{}
	o := newOverlay(t, llm.NewMockProvider(), eng)
	o.input.SetValue("Teach")

	_, cmd := o.Update(ctrlKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, o.capture.Listening())
	assert.Equal(t, "Listening...", o.input.Model.Placeholder)

	eng.stream.events <- speech.Event{Segments: []speech.Segment{{Text: "fractions", Final: true}}}
	msgs := run(cmd)
	require.Len(t, msgs, 1)

	_, next := o.Update(msgs[0])
	assert.Equal(t, "Teach fractions", o.input.Value())
	require.NotNil(t, next, "capture keeps waiting for events")

	o.Update(ctrlKey('r'))
	assert.False(t, o.capture.Listening())
	close(eng.stream.events)
	_, next = o.Update(run(next)[0])
	assert.Nil(t, next)
}

func TestClosedOverlaySpeechDoesNotReachNextOverlay(t *testing.T) {
	oldEng := &fakeEngine{}
	closed := newOverlay(t, llm.NewMockProvider(), oldEng)
	_, pending := closed.Update(ctrlKey('r'))
	require.NotNil(t, pending)
	closed.Close()

	eng := &fakeEngine{}
	o := newOverlay(t, llm.NewMockProvider(), eng)
	o.input.SetValue("New")
	o.Update(ctrlKey('r'))
	require.True(t, o.capture.Listening())

	oldEng.stream.events <- speech.Event{Segments: []speech.Segment{{Text: "old words", Final: true}}}
	_, next := o.Update(run(pending)[0])
	assert.Equal(t, "New", o.input.Value())
	assert.Nil(t, next)

	o.Update(speechMsg{Gen: 1, Events: oldEng.stream.events, Event: speech.Event{End: true}})
	assert.True(t, o.capture.Listening())

	o.Close()
	assert.Equal(t, 1, eng.stream.aborted, "closing stops the live recorder")
}

func TestSpeechUnsupported(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	_, cmd := o.Update(ctrlKey('r'))
	assert.NotNil(t, cmd)
	assert.False(t, o.capture.Listening())
	assert.Equal(t, speech.NoticeText(speech.ErrNoBackend), o.toast.Text())
}

func TestImageEditFlow(t *testing.T) {
	edited := &llm.Image{MIMEType: "image/png", Data: append(append([]byte{}, testPhoto...), 1)}
	mock := llm.NewMockProvider()
	mock.AddImage(llm.MockImage{Image: edited})
	o := newOverlay(t, mock, nil)

	photo := filepath.Join(t.TempDir(), "class.png")
	require.NoError(t, os.WriteFile(photo, testPhoto, 0o644))

	o.Update(ctrlKey('e'))
	require.Equal(t, assistant.ModeImageEdit, o.Session().Mode())
	assert.Equal(t, "Path to a classroom photo...", o.input.Model.Placeholder)

	o.input.SetValue(photo)
	_, cmd := o.Update(enter)
	feed(o, run(cmd))
	require.Equal(t, assistant.ImageSelected, o.Session().ImageState())
	assert.Equal(t, photo, o.displayedPath())

	o.Update(ctrlKey('n'))
	assert.Equal(t, "Remove background", o.input.Value())

	_, cmd = o.Update(enter)
	assert.Equal(t, assistant.EditPending, o.Session().ImageState())
	rest := feed(o, run(cmd))
	assert.Contains(t, rest, screen.DispatchMsg{Action: controller.RecordActivity{Kind: stats.KindQuery}})

	require.Equal(t, assistant.Edited, o.Session().ImageState())
	assert.Equal(t, edited, o.Session().DisplayedImage())
	assert.NotEmpty(t, o.editedPath)
	require.Len(t, mock.ImageCalls, 1)
	assert.Contains(t, mock.ImageCalls[0].Prompt, "Instruction: Remove background")
	assert.Equal(t, testPhoto, mock.ImageCalls[0].Source.Data)

	o.Update(ctrlKey('t'))
	assert.True(t, o.Session().ShowingOriginal())
	assert.Equal(t, photo, o.displayedPath())

	o.Update(ctrlKey('x'))
	assert.Equal(t, assistant.NoImage, o.Session().ImageState())
}

func TestLoadRejectsNonImage(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	notes := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("lesson notes"), 0o644))

	o.Update(ctrlKey('e'))
	o.input.SetValue(notes)
	_, cmd := o.Update(enter)
	feed(o, run(cmd))

	assert.Equal(t, assistant.NoImage, o.Session().ImageState())
	assert.Contains(t, o.toast.Text(), "Could not load that photo")
}

func TestViewRendersModes(t *testing.T) {
	o := newOverlay(t, llm.NewMockProvider(), nil)
	view := o.View(100, 30)
	assert.Contains(t, view, "TEACHER CHAT")
	assert.Contains(t, view, "Namaste")

	o.Update(ctrlKey('e'))
	assert.Contains(t, o.View(100, 30), "Upload Classroom Photo")
}
