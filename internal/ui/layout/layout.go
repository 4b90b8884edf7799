// Package layout draws the chrome around the active screen: header, tab bar
// and key-hint footer.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 22

	// Below this width the header drops the app name and the footer keeps
	// only the hints that fit.
	CompactWidth = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Please enlarge the window.\n\nSahayak needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the top bar: app name, screen title centered, and the
// streak plus the teacher's avatar initial on the right.
func RenderHeader(title, initial string, streak int, width int) string {
	compact := width < CompactWidth

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Sahayak")
	if compact {
		left = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  S")
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := streakBadge(streak, compact) + avatar(initial)

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

func streakBadge(streak int, compact bool) string {
	label := fmt.Sprintf("🔥 %d", streak)
	if !compact {
		unit := "days"
		if streak == 1 {
			unit = "day"
		}
		label += " " + unit
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(label)
}

func avatar(initial string) string {
	if initial == "" {
		return ""
	}
	return "   " + lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Bold(true).
		Render(" "+initial+" ")
}

// RenderTabs renders the navigation tabs with the active one highlighted.
func RenderTabs(labels []string, active int, width int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		style := theme.Chip
		if i == active {
			style = theme.ChipActive
		}
		parts[i] = style.Render(l)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "  "))
}

// RenderFooter renders the key hints that fit in width, keeping the last
// hint (quit) when earlier ones have to be dropped.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	const sep = "   "
	budget := width - 6
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, sep)) > budget {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return bar(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, sizing the content to the
// space left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
