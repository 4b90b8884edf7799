package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/plans"
	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func centerBlock(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderGreeting(name string, cw int) string {
	kicker := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render("SHIKSHA SAHAYAK")
	hello := theme.Title.Render(fmt.Sprintf("Namaste, %s 🙏", name))
	return lipgloss.NewStyle().Width(cw).Render(kicker + "\n" + hello)
}

// renderLLMBanner warns that the assistant has no API key.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an API key to use the assistant (see sahayak --help)")
}

func renderFocusCard(text string, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Today's Focus")
	badge := theme.ChipActive.Render("PRIORITY")
	gap := cw - 4 - lipgloss.Width(head) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4).Render(text)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Background(theme.BgCard).
		Width(cw).
		Padding(0, 1).
		Render(head + strings.Repeat(" ", gap) + badge + "\n\n" + body)
}

// buttonWidth is the fixed width for action buttons.
const buttonWidth = 26

func renderActions(labels []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	buttons := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}

	title := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("QUICK ACTIONS")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + strings.Join(buttons, "\n"))
}

func renderQuote(quote string, cw int) string {
	mark := lipgloss.NewStyle().Foreground(theme.Border).Bold(true).Render("❝ ")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(mark + theme.Hint.Render(quote))
}

func renderModal(body string, width, height int) string {
	return centerBlock(theme.Modal.Render(body), width, height)
}

func renderPlan(plan plans.LessonPlan, p profile.UserProfile, cw int) string {
	inner := cw - 6
	var b strings.Builder

	b.WriteString(theme.Title.Render(plan.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(p.Grade + " • " + p.Subject))
	b.WriteString("\n\n")
	b.WriteString(theme.Chip.Render("⏱ " + plan.Duration))
	b.WriteString(theme.Chip.Render("👥 " + plan.GroupSize))
	b.WriteString("\n\n")

	prep := lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render("Preparation") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Info).Width(inner-4).Render(plan.Prep)
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Info).
		Padding(0, 1).
		Render(prep))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Steps:"))
	b.WriteString("\n")
	step := lipgloss.NewStyle().Foreground(theme.Text).Width(inner - 4)
	for i, s := range plan.Steps {
		b.WriteString(fmt.Sprintf("%2d. ", i+1))
		b.WriteString(step.Render(s))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.ButtonInactive.Render("Esc Close"))
	b.WriteString("  ")
	b.WriteString(theme.ButtonActive.Render("✓ D Mark Done"))
	return b.String()
}

func renderDone(name string, cw int) string {
	inner := lipgloss.NewStyle().Width(cw - 6).Align(lipgloss.Center)
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("👍"),
		"",
		theme.Title.Render(fmt.Sprintf("Great Job, %s! 🎉", name)),
		"",
		theme.Subtitle.Render("You've completed this activity. Would you like to see another task for today?"),
		"",
		theme.ButtonActive.Render("✨ Y Yes, Give me another"),
		theme.ButtonInactive.Render("N No, I'm done for now"),
	}
	return inner.Render(strings.Join(lines, "\n"))
}
