package profile

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/controller"
	userprofile "github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/ui/components"
	"github.com/abhisek/sahayak/internal/ui/layout"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

// RedirectDelay is how long the saved confirmation shows before returning
// to the home tab.
const RedirectDelay = 1500 * time.Millisecond

type field int

const (
	fieldName field = iota
	fieldSchool
	fieldGrade
	fieldSubject
	fieldLanguage
	fieldSave
	fieldCount
)

type redirectMsg struct{}

// ProfileScreen edits the teacher's profile.
type ProfileScreen struct {
	ctrl     *controller.Controller
	name     components.TextInput
	school   components.TextInput
	grade    components.Picker
	subject  components.Picker
	language components.Picker
	focus    field
	suggest  int
	orig     userprofile.UserProfile
	saved    bool
}

var (
	_ screen.Screen             = (*ProfileScreen)(nil)
	_ screen.InputCapturer      = (*ProfileScreen)(nil)
	_ screen.KeyHintProvider    = (*ProfileScreen)(nil)
	_ screen.BackgroundReceiver = (*ProfileScreen)(nil)
)

// New creates a ProfileScreen with the form filled from ctrl's profile.
func New(ctrl *controller.Controller) *ProfileScreen {
	p := ctrl.Profile()

	name := components.NewTextInput("YOUR NAME", "e.g. Sunita Sharma", 60)
	name.SetValue(p.Name)
	school := components.NewTextInput("SCHOOL NAME", "Select or Type School Name", 80)
	school.SetValue(p.School)
	school.Blur()

	return &ProfileScreen{
		ctrl:     ctrl,
		name:     name,
		school:   school,
		grade:    components.NewPicker("GRADE", userprofile.Grades, p.Grade),
		subject:  components.NewPicker("SUBJECT", userprofile.Subjects, p.Subject),
		language: components.NewPicker("APP LANGUAGE", userprofile.Languages, p.Language),
		suggest:  -1,
		orig:     p,
	}
}

// Form returns the profile as currently entered.
func (s *ProfileScreen) Form() userprofile.UserProfile {
	return userprofile.UserProfile{
		Name:     s.name.TrimmedValue(),
		Grade:    pickerValue(s.grade, s.orig.Grade),
		Subject:  pickerValue(s.subject, s.orig.Subject),
		School:   s.school.TrimmedValue(),
		Language: pickerValue(s.language, s.orig.Language),
	}
}

// pickerValue keeps a stored value that is not one of the options until
// the teacher picks another.
func pickerValue(p components.Picker, stored string) string {
	if v := p.Value(); v != "" {
		return v
	}
	return stored
}

// Dirty reports whether the form differs from the saved profile.
func (s *ProfileScreen) Dirty() bool {
	return s.Form() != s.ctrl.Profile()
}

// Receives claims the post-save redirect so it fires under the assistant.
func (s *ProfileScreen) Receives(msg tea.Msg) bool {
	_, ok := msg.(redirectMsg)
	return ok
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case redirectMsg:
		return s, screen.Dispatch(controller.Navigate{To: controller.ViewHome})

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			return s, s.moveFocus(-1)
		case "down":
			return s, s.moveFocus(1)
		case "ctrl+s":
			return s, s.save()
		case "enter":
			if s.focus == fieldSave {
				return s, s.save()
			}
			return s, s.moveFocus(1)
		}
		return s, s.updateField(msg)
	}

	return s, nil
}

func (s *ProfileScreen) updateField(msg tea.KeyPressMsg) tea.Cmd {
	before := s.Form()
	var cmd tea.Cmd

	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldSchool:
		switch msg.String() {
		case "ctrl+n":
			s.cycleSchool(1)
		case "ctrl+p":
			s.cycleSchool(-1)
		default:
			s.school, cmd = s.school.Update(msg)
		}
	case fieldGrade:
		s.grade = s.grade.Update(msg)
	case fieldSubject:
		s.subject = s.subject.Update(msg)
	case fieldLanguage:
		s.language = s.language.Update(msg)
	}

	if s.Form() != before {
		s.saved = false
	}
	return cmd
}

// cycleSchool fills the school input from the suggestion list.
func (s *ProfileScreen) cycleSchool(delta int) {
	n := len(userprofile.Schools)
	s.suggest = ((s.suggest+delta)%n + n) % n
	s.school.SetValue(userprofile.Schools[s.suggest])
}

func (s *ProfileScreen) moveFocus(delta int) tea.Cmd {
	s.name.Blur()
	s.school.Blur()
	s.focus = (s.focus + field(delta) + fieldCount) % fieldCount

	switch s.focus {
	case fieldName:
		return s.name.Focus()
	case fieldSchool:
		return s.school.Focus()
	}
	return nil
}

func (s *ProfileScreen) save() tea.Cmd {
	if !s.Dirty() {
		return nil
	}
	s.saved = true
	return tea.Batch(
		screen.Dispatch(controller.UpdateProfile{Profile: s.Form()}),
		tea.Tick(RedirectDelay, func(time.Time) tea.Msg { return redirectMsg{} }),
	)
}

// CapturingInput is true while a text field has focus.
func (s *ProfileScreen) CapturingInput() bool {
	return s.focus == fieldName || s.focus == fieldSchool
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Field"}}
	switch s.focus {
	case fieldSchool:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+N", Description: "Suggest"})
	case fieldGrade, fieldSubject, fieldLanguage:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Save"})
	if !s.CapturingInput() {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next tab"})
	}
	return hints
}

func (s *ProfileScreen) View(width, height int) string {
	cw := min(width-4, 72)
	form := s.Form()

	sections := []string{
		theme.Title.Render("My Profile") + "\n" + theme.Subtitle.Render("Customize your AI Coach"),
		renderStrength(form.CompletionPercent(), cw),
		s.renderBasicInfo(cw),
		s.renderClassroom(cw),
		s.renderSave(),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n")))
}

func renderStrength(percent int, cw int) string {
	icon := "⚠"
	note := "Add details like School and Grade to get specific, localized advice."
	if percent == 100 {
		icon = "✨"
		note = "Excellent! Your AI coach is fully personalized for your classroom."
	}

	head := lipgloss.NewStyle().Bold(true).Render(icon + " Profile Strength")
	pct := theme.CompletionColor(percent).Render(fmt.Sprintf("%d%%", percent))
	gap := max(cw-4-lipgloss.Width(head)-lipgloss.Width(pct), 1)

	barWidth := cw - 4
	filled := barWidth * percent / 100
	bar := lipgloss.NewStyle().Background(theme.CompletionColor(percent).GetForeground()).Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return theme.Card.Width(cw).Render(
		head + strings.Repeat(" ", gap) + pct + "\n" + bar + "\n" + theme.Subtitle.Render(note))
}

func (s *ProfileScreen) renderBasicInfo(cw int) string {
	return theme.Card.Width(cw).Render(
		theme.Label.Render("BASIC INFO") + "\n\n" +
			s.name.View() + "\n\n" +
			s.school.View())
}

func (s *ProfileScreen) renderClassroom(cw int) string {
	half := (cw - 6) / 2
	col := lipgloss.NewStyle().Width(half)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(s.grade.View(s.focus == fieldGrade)),
		"  ",
		col.Render(s.subject.View(s.focus == fieldSubject)),
	)
	return theme.Card.Width(cw).Render(
		theme.Label.Render("CLASSROOM CONTEXT") + "\n\n" +
			row + "\n\n" +
			s.language.View(s.focus == fieldLanguage))
}

func (s *ProfileScreen) renderSave() string {
	switch {
	case s.saved:
		return components.NewButton("Saved! Redirecting...", components.ButtonDone).View()
	case !s.Dirty():
		return components.NewButton("Save Profile", components.ButtonDisabled).View()
	case s.focus == fieldSave:
		return components.NewButton("Save Profile", components.ButtonFocused).View()
	}
	return components.NewButton("Save Profile", components.ButtonReady).View()
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}
