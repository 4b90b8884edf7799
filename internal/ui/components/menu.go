package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("▸ " + item.Label))
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Picker cycles through a fixed list of options with left/right.
type Picker struct {
	Label    string
	Options  []string
	Selected int // -1 when nothing is chosen
}

// NewPicker returns a picker with value preselected when it is one of
// options.
func NewPicker(label string, options []string, value string) Picker {
	p := Picker{Label: label, Options: options, Selected: -1}
	for i, o := range options {
		if o == value {
			p.Selected = i
		}
	}
	return p
}

// Value returns the chosen option or "".
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Update handles left/right.
func (p Picker) Update(msg tea.Msg) Picker {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(p.Options) == 0 {
		return p
	}
	switch kmsg.String() {
	case "left", "h":
		if p.Selected <= 0 {
			p.Selected = len(p.Options) - 1
		} else {
			p.Selected--
		}
	case "right", "l", "space":
		p.Selected = (p.Selected + 1) % len(p.Options)
	}
	return p
}

// View renders the picker label and current value.
func (p Picker) View(focused bool) string {
	label := theme.Label
	if focused {
		label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	value := p.Value()
	if value == "" {
		value = "Select"
	}
	val := theme.Unselected.Render(value)
	if focused {
		val = theme.Selected.Render("‹ " + value + " ›")
	}
	return label.Render(p.Label) + "\n" + val
}
