package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/ui/theme"
)

// ToastExpiredMsg hides the toast that was shown with Seq.
type ToastExpiredMsg struct {
	Seq   int
	toast *Toast
}

// Toast is a transient one-line notice. A newer Show supersedes any
// pending expiry of an older one.
type Toast struct {
	text string
	seq  int
}

// Show displays text and returns the command that hides it after ttl.
func (t *Toast) Show(text string, ttl time.Duration) tea.Cmd {
	t.seq++
	t.text = text
	seq := t.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq, toast: t}
	})
}

// Owns reports whether msg is an expiry scheduled by this toast.
func (t *Toast) Owns(msg tea.Msg) bool {
	m, ok := msg.(ToastExpiredMsg)
	return ok && m.toast == t
}

// Update clears the toast when its latest expiry arrives.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.toast == t && m.Seq == t.seq {
		t.text = ""
	}
}

// Text returns the visible notice, or "".
func (t Toast) Text() string {
	return t.text
}

// View renders the toast centered in width, or "" when hidden.
func (t Toast) View(width int) string {
	if t.text == "" {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Toast.Render(t.text))
}
