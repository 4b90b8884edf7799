package learn

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/ui/components"
)

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(_ context.Context, url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func titles(l *LearnScreen) []string {
	var out []string
	for _, r := range l.Visible() {
		out = append(out, r.Title)
	}
	return out
}

func TestCategoryChips(t *testing.T) {
	l := New(controller.New(nil, nil), nil)
	assert.Len(t, l.Visible(), 5)

	for range 4 {
		l.Update(press(tea.KeyRight))
	}
	assert.Equal(t, []string{"Teaching Place Value with Bundles of Sticks"}, titles(l))

	l.Update(press(tea.KeyLeft))
	assert.Equal(t, []string{"10 Everyday Classroom Hacks"}, titles(l))
}

func TestSearchCapturesInput(t *testing.T) {
	l := New(controller.New(nil, nil), nil)

	l.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	require.True(t, l.CapturingInput())

	l.search.SetValue("FRACTION")
	assert.Equal(t, []string{"Fractions for Kids (Animated)"}, titles(l))

	l.Update(press(tea.KeyEscape))
	assert.False(t, l.CapturingInput())
	assert.Contains(t, l.View(100, 60), "Fractions for Kids")
}

func TestOpenRecordsResourceView(t *testing.T) {
	opener := &recordingOpener{}
	l := New(controller.New(nil, nil), opener)

	_, cmd := l.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	opened := cmd()
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=2iOLK5xOaYM"}, opener.urls)
	assert.True(t, l.Receives(opened), "open results reach the screen under the assistant")
	assert.False(t, l.Receives(components.ToastExpiredMsg{Seq: 1}), "another toast's expiry")

	_, cmd = l.Update(opened)
	require.NotNil(t, cmd)
	msg, ok := cmd().(screen.DispatchMsg)
	require.True(t, ok)
	assert.Equal(t, controller.RecordActivity{Kind: stats.KindResourceView}, msg.Action)
}

func TestOpenWithoutLinkShowsNotice(t *testing.T) {
	opener := &recordingOpener{}
	l := New(controller.New(nil, nil), opener)
	for range 3 {
		l.Update(press(tea.KeyDown))
	}

	_, cmd := l.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, cmd = l.Update(cmd())
	assert.NotNil(t, cmd, "expected toast expiry command")
	assert.Empty(t, opener.urls)
	assert.Equal(t, "This resource has no link yet.", l.toast.Text())
}

func TestLearningGoal(t *testing.T) {
	ctrl := controller.New(nil, nil)
	ctrl.Apply(controller.RecordActivity{Kind: stats.KindResourceView})
	l := New(ctrl, nil)
	assert.Contains(t, l.View(100, 60), "You've watched 1 of 3 recommended videos")
}
