package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/ui/theme"
)

// ProgressBar is a horizontal gauge for a whole-number percentage.
type ProgressBar struct {
	Percent int
	Width   int
	Color   color.Color
	// Caption, when set, is shown under the bar after the percentage.
	Caption string
}

// NewProgressBar creates a bar for percent, clamped to [0, 100].
func NewProgressBar(percent, width int) ProgressBar {
	return ProgressBar{
		Percent: min(max(percent, 0), 100),
		Width:   max(width, 4),
		Color:   theme.Secondary,
	}
}

// WithColor sets the fill color.
func (p ProgressBar) WithColor(c color.Color) ProgressBar {
	p.Color = c
	return p
}

// WithCaption sets the line shown under the bar, e.g. "Complete".
func (p ProgressBar) WithCaption(caption string) ProgressBar {
	p.Caption = caption
	return p
}

// View renders the bar and its caption line.
func (p ProgressBar) View() string {
	filled := p.Width * p.Percent / 100
	bar := lipgloss.NewStyle().Background(p.Color).Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", p.Width-filled))
	if p.Caption == "" {
		return bar
	}
	return bar + "\n" + theme.Subtitle.Render(fmt.Sprintf("%d%% %s", p.Percent, p.Caption))
}
