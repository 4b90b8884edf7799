package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold resources. The router calls
// Close when the screen leaves the stack.
type Closer interface {
	Close()
}

// InputCapturer is implemented by screens that are currently taking text
// input, so single-key shortcuts should not be handled globally.
type InputCapturer interface {
	CapturingInput() bool
}

// BackgroundReceiver is implemented by screens whose asynchronous results
// must still reach them while another screen is pushed on top.
type BackgroundReceiver interface {
	Receives(msg tea.Msg) bool
}

// DispatchMsg asks the root model to apply a state action.
type DispatchMsg struct {
	Action controller.Action
}

// Dispatch returns a command that emits a DispatchMsg for a.
func Dispatch(a controller.Action) tea.Cmd {
	return func() tea.Msg {
		return DispatchMsg{Action: a}
	}
}
