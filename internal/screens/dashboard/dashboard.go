package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/ui/components"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

// chartHeight is the number of rows in the activity chart.
const chartHeight = 6

// DashboardScreen is the read-only impact report.
type DashboardScreen struct {
	ctrl *controller.Controller
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen showing ctrl's stats.
func New(ctrl *controller.Controller) *DashboardScreen {
	return &DashboardScreen{ctrl: ctrl}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	st := d.ctrl.Stats()
	cw := min(width-4, 72)

	sections := []string{
		theme.Title.Render("Impact Report") + "\n" + theme.Subtitle.Render("Your actual classroom insights"),
		renderStreak(st.CurrentStreak, cw),
		renderCounters(st, cw),
		renderActivity(st.ChartPoints(), cw),
		renderBadges(st, cw),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n")))
}

func (d *DashboardScreen) Title() string {
	return "Stats"
}

func renderStreak(streak int, cw int) string {
	days := "Days"
	if streak == 1 {
		days = "Day"
	}
	body := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⚡ CURRENT STREAK") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d %s", streak, days)) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Keep it up! 🔥")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1).
		Width(cw).
		Render(body)
}

func renderCounters(st stats.UserStats, cw int) string {
	half := (cw - 1) / 2
	card := func(icon string, accent lipgloss.Style, value, label string) string {
		return theme.Card.Width(half).Render(
			accent.Render(icon) + "\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n" +
				theme.Subtitle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("👥", lipgloss.NewStyle().Foreground(theme.Primary), fmt.Sprint(st.TotalQueries), "Questions Asked"),
		" ",
		card("⏱", lipgloss.NewStyle().Foreground(theme.Accent), fmt.Sprint(st.ResourcesViewed), "Lessons Viewed"),
	)
}

func renderActivity(points []stats.DailyActivity, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your Activity")
	tag := theme.Chip.Render("Last 7 Days")
	gap := max(cw-4-lipgloss.Width(head)-lipgloss.Width(tag), 1)

	body := head + strings.Repeat(" ", gap) + tag + "\n\n" + RenderChart(points, chartHeight)
	return theme.Card.Width(cw).Render(body)
}

func renderBadges(st stats.UserStats, cw int) string {
	barWidth := cw - 4
	methodology := components.NewProgressBar(st.ResourceGoalPercent(), barWidth).
		WithColor(theme.Accent).
		WithCaption("Complete")
	asker := components.NewProgressBar(st.QueryGoalPercent(), barWidth).
		WithColor(theme.Secondary).
		WithCaption("Complete")

	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Achievements") + "\n\n" +
		"🏅 " + lipgloss.NewStyle().Bold(true).Render("Methodology Master") + "\n" + methodology.View() + "\n\n" +
		"🎯 " + lipgloss.NewStyle().Bold(true).Render("Super Asker") + "\n" + asker.View()
	return theme.Card.Width(cw).Render(body)
}
