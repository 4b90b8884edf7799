package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/ui/theme"
)

// ButtonState selects how a Button is drawn.
type ButtonState int

const (
	ButtonDisabled ButtonState = iota
	ButtonReady
	ButtonFocused
	ButtonDone
)

// Button is a one-line call to action. Screens own the key handling.
type Button struct {
	Label string
	State ButtonState
}

// NewButton creates a button in state.
func NewButton(label string, state ButtonState) Button {
	return Button{Label: label, State: state}
}

// View renders the button.
func (b Button) View() string {
	switch b.State {
	case ButtonFocused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	case ButtonReady:
		return theme.ButtonInactive.Render("▸ " + b.Label)
	case ButtonDone:
		return lipgloss.NewStyle().
			Background(theme.Success).
			Foreground(theme.BgDark).
			Bold(true).
			Padding(0, 2).
			Render("✓ " + b.Label)
	}
	return theme.ButtonInactive.
		Foreground(theme.Border).
		Render(b.Label)
}
