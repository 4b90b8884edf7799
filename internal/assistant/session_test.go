package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/llm"
)

func TestNewSessionGreets(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, Greeting(testProfile), msgs[0].Text)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Sending())
}

func TestSendMissingCredential(t *testing.T) {
	s := NewSession(NewCoach(nil, llm.ErrMissingCredential, nil), testProfile)

	reply, ok := s.Send(context.Background(), "How do I teach fractions?")
	require.True(t, ok)
	assert.Equal(t, ConfigurationFallback, reply.Text)

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "How do I teach fractions?", msgs[1].Text)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	assert.Equal(t, ConfigurationFallback, msgs[2].Text)
}

func TestAsyncTurn(t *testing.T) {
	mock := llm.NewMockProvider(text("Use bundles of sticks."))
	s := NewSession(NewCoach(mock, nil, nil), testProfile)

	turn, ok := s.BeginSend("  place value?  ")
	require.True(t, ok)
	assert.True(t, s.Sending())
	assert.Equal(t, "place value?", turn.Text)
	assert.Len(t, turn.History, 1, "history excludes the new message")
	assert.Equal(t, 2, s.Transcript().Len())

	reply := s.Coach().Reply(context.Background(), s.Profile(), turn.History, turn.Text)
	require.True(t, s.CompleteSend(turn, reply))
	assert.False(t, s.Sending())

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, turn.UserMsgID, msgs[1].ID)
	assert.Equal(t, "Use bundles of sticks.", msgs[2].Text)
}

func TestBeginSendRejectsBlank(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	_, ok := s.BeginSend("   ")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Transcript().Len())
}

func TestCompletionsAfterCloseAreDiscarded(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	turn, ok := s.BeginSend("hello")
	require.True(t, ok)

	s.Close()
	assert.False(t, s.CompleteSend(turn, "late reply"))
	assert.Equal(t, 2, s.Transcript().Len())

	_, ok = s.BeginSend("again")
	assert.False(t, ok)
}

func TestCompleteSendForeignSession(t *testing.T) {
	coach := NewCoach(llm.NewMockProvider(), nil, nil)
	a := NewSession(coach, testProfile)
	b := NewSession(coach, testProfile)

	turn, _ := a.BeginSend("hello")
	assert.False(t, b.CompleteSend(turn, "reply"))
	assert.Equal(t, 1, b.Transcript().Len())
}

func TestOverlappingSends(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	t1, _ := s.BeginSend("one")
	t2, _ := s.BeginSend("two")
	assert.True(t, s.Sending())
	assert.Len(t, t2.History, 2)

	s.CompleteSend(t1, "r1")
	assert.True(t, s.Sending())
	s.CompleteSend(t2, "r2")
	assert.False(t, s.Sending())
}

func greetingID(s *Session) string {
	return s.Transcript().Messages()[0].ID
}

func TestVisualizeFlow(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	id := greetingID(s)

	txt, ok := s.BeginVisualize(id)
	require.True(t, ok)
	assert.Equal(t, Greeting(testProfile), txt)
	assert.True(t, s.Transcript().Status(id).GeneratingImage)

	_, ok = s.BeginVisualize(id)
	assert.False(t, ok, "already generating")

	img := &llm.Image{MIMEType: "image/png", Data: []byte("png")}
	assert.Nil(t, s.FinishVisualize(id, img, nil))
	assert.False(t, s.Transcript().Status(id).GeneratingImage)

	m, _ := s.Transcript().Get(id)
	assert.Equal(t, img, m.Image)

	_, ok = s.BeginVisualize(id)
	assert.False(t, ok, "already illustrated")
}

func TestVisualizeFailureRaisesNotice(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	id := greetingID(s)
	s.BeginVisualize(id)

	n := s.FinishVisualize(id, nil, errors.New("boom"))
	require.NotNil(t, n)
	assert.Equal(t, VisualizeNoticeTTL, n.TTL)
	assert.False(t, s.Transcript().Status(id).GeneratingImage)

	m, _ := s.Transcript().Get(id)
	assert.Nil(t, m.Image)

	_, ok := s.BeginVisualize(id)
	assert.True(t, ok, "retry allowed")
}

func TestVisualizeRejectsUserMessages(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	turn, _ := s.BeginSend("hello")

	_, ok := s.BeginVisualize(turn.UserMsgID)
	assert.False(t, ok)
	_, ok = s.BeginVisualize("missing")
	assert.False(t, ok)
}

func TestImageEditStates(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	assert.Equal(t, NoImage, s.ImageState())

	_, ok := s.BeginEdit("add a tree")
	assert.False(t, ok, "no image selected")

	orig := &llm.Image{MIMEType: "image/jpeg", Data: []byte("orig")}
	require.True(t, s.SelectImage(orig))
	assert.Equal(t, ImageSelected, s.ImageState())
	assert.Equal(t, orig, s.DisplayedImage())

	req, ok := s.BeginEdit("add a tree")
	require.True(t, ok)
	assert.Equal(t, EditPending, s.ImageState())
	assert.Equal(t, orig, req.Source)

	edited := &llm.Image{MIMEType: "image/png", Data: []byte("edited")}
	assert.Nil(t, s.FinishEdit(req, edited, nil))
	assert.Equal(t, Edited, s.ImageState())
	assert.Equal(t, edited, s.DisplayedImage())

	s.ToggleOriginal()
	assert.True(t, s.ShowingOriginal())
	assert.Equal(t, orig, s.DisplayedImage())
	s.ToggleOriginal()
	assert.Equal(t, edited, s.DisplayedImage())
}

func TestImageEditFailureKeepsOriginal(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	orig := &llm.Image{MIMEType: "image/jpeg", Data: []byte("orig")}
	s.SelectImage(orig)

	req, _ := s.BeginEdit("make it blue")
	n := s.FinishEdit(req, nil, errors.New("boom"))
	require.NotNil(t, n)
	assert.Equal(t, EditNoticeTTL, n.TTL)
	assert.Equal(t, ImageSelected, s.ImageState())
	assert.Equal(t, orig, s.DisplayedImage())
}

func TestImageEditStaleResult(t *testing.T) {
	s := NewSession(NewCoach(llm.NewMockProvider(), nil, nil), testProfile)
	s.SelectImage(&llm.Image{Data: []byte("a")})
	req, _ := s.BeginEdit("x")

	s.ClearImage()
	assert.Nil(t, s.FinishEdit(req, &llm.Image{Data: []byte("b")}, nil))
	assert.Equal(t, NoImage, s.ImageState())
	assert.Nil(t, s.DisplayedImage())
}
