package profile

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/controller"
	userprofile "github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/screen"
)

func press(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func ctrlKey(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

// firstDispatch runs the first command of a batch and returns its action.
func firstDispatch(t *testing.T, cmd tea.Cmd) controller.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.NotEmpty(t, batch)
		msg = batch[0]()
	}
	d, ok := msg.(screen.DispatchMsg)
	require.True(t, ok, "expected DispatchMsg, got %T", msg)
	return d.Action
}

func TestCleanFormCannotSave(t *testing.T) {
	s := New(controller.New(nil, nil))

	assert.False(t, s.Dirty())
	assert.True(t, s.CapturingInput(), "name field starts focused")

	_, cmd := s.Update(ctrlKey('s'))
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 60), "20%")
}

func TestSaveProfileAndRedirect(t *testing.T) {
	ctrl := controller.New(nil, nil)
	s := New(ctrl)

	s.Update(press(tea.KeyDown))
	s.Update(press(tea.KeyDown))
	assert.False(t, s.CapturingInput())
	s.Update(press(tea.KeyRight))
	s.Update(press(tea.KeyDown))
	s.Update(press(tea.KeyRight))
	s.Update(press(tea.KeyRight))

	form := s.Form()
	assert.Equal(t, "Grade 1", form.Grade)
	assert.Equal(t, "Science", form.Subject)
	require.True(t, s.Dirty())

	_, cmd := s.Update(ctrlKey('s'))
	action := firstDispatch(t, cmd)
	assert.Equal(t, controller.UpdateProfile{Profile: form}, action)

	ctrl.Apply(action)
	assert.False(t, s.Dirty())
	assert.Contains(t, s.View(100, 60), "Saved! Redirecting...")

	assert.True(t, s.Receives(redirectMsg{}), "the redirect still arrives under the assistant")
	_, cmd = s.Update(redirectMsg{})
	assert.Equal(t, controller.Navigate{To: controller.ViewHome}, firstDispatch(t, cmd))
}

func TestSchoolSuggestions(t *testing.T) {
	s := New(controller.New(nil, nil))
	s.Update(press(tea.KeyDown))
	require.True(t, s.CapturingInput())

	s.Update(ctrlKey('n'))
	assert.Equal(t, userprofile.Schools[0], s.Form().School)
	s.Update(ctrlKey('p'))
	assert.Equal(t, userprofile.Schools[len(userprofile.Schools)-1], s.Form().School)
}

func TestUnknownStoredValuesSurvive(t *testing.T) {
	ctrl := controller.New(nil, nil)
	stored := userprofile.UserProfile{Name: "Asha", Grade: "Class 7", Subject: "Math", Language: "Kannada"}
	ctrl.Apply(controller.UpdateProfile{Profile: stored})

	s := New(ctrl)
	assert.Equal(t, stored, s.Form())
	assert.False(t, s.Dirty())
}

func TestCompletionPercentFollowsForm(t *testing.T) {
	ctrl := controller.New(nil, nil)
	ctrl.Apply(controller.UpdateProfile{Profile: userprofile.UserProfile{
		Name: "Asha", Grade: "Grade 2", Subject: "Math", School: "Kendriya Vidyalaya", Language: "Hindi",
	}})
	assert.Contains(t, New(ctrl).View(100, 60), "100%")
}
