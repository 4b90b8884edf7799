package learn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/resources"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/ui/components"
	"github.com/abhisek/sahayak/internal/ui/layout"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

// NoticeTTL is how long an open failure stays on screen.
const NoticeTTL = 3 * time.Second

// recommendedGoal is the weekly target shown in the learning goal card.
const recommendedGoal = 3

// openedMsg reports the outcome of opening a resource.
type openedMsg struct {
	ID  string
	Err error
}

// LearnScreen lists the resource catalog with category and search filters.
type LearnScreen struct {
	ctrl       *controller.Controller
	opener     resources.Opener
	catalog    []resources.LearningResource
	categories []string
	category   int
	search     components.TextInput
	cursor     int
	toast      components.Toast
}

var (
	_ screen.Screen             = (*LearnScreen)(nil)
	_ screen.InputCapturer      = (*LearnScreen)(nil)
	_ screen.KeyHintProvider    = (*LearnScreen)(nil)
	_ screen.BackgroundReceiver = (*LearnScreen)(nil)
)

// New creates a LearnScreen over the built-in catalog.
func New(ctrl *controller.Controller, opener resources.Opener) *LearnScreen {
	catalog := resources.Catalog()
	search := components.NewTextInput("", "Search topics...", 60)
	search.Blur()
	return &LearnScreen{
		ctrl:       ctrl,
		opener:     opener,
		catalog:    catalog,
		categories: resources.Categories(catalog),
		search:     search,
	}
}

// Visible returns the resources matching the current filters.
func (l *LearnScreen) Visible() []resources.LearningResource {
	return resources.Filter(l.catalog, l.categories[l.category], l.search.Value())
}

// Receives claims open results and expiries of this screen's toast.
func (l *LearnScreen) Receives(msg tea.Msg) bool {
	if _, ok := msg.(openedMsg); ok {
		return true
	}
	return l.toast.Owns(msg)
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToastExpiredMsg:
		l.toast.Update(msg)
		return l, nil

	case openedMsg:
		if msg.Err != nil {
			text := "Could not open the resource."
			if errors.Is(msg.Err, resources.ErrNoLink) {
				text = "This resource has no link yet."
			}
			return l, l.toast.Show(text, NoticeTTL)
		}
		return l, screen.Dispatch(controller.RecordActivity{Kind: stats.KindResourceView})

	case tea.KeyPressMsg:
		if l.search.Focused() {
			return l, l.updateSearch(msg)
		}
		return l, l.handleKey(msg)
	}

	return l, nil
}

func (l *LearnScreen) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		l.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.clampCursor()
	return cmd
}

func (l *LearnScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		return l.search.Focus()
	case "left", "h":
		if l.category > 0 {
			l.category--
			l.cursor = 0
		}
	case "right", "l":
		if l.category < len(l.categories)-1 {
			l.category++
			l.cursor = 0
		}
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.Visible())-1 {
			l.cursor++
		}
	case "enter":
		visible := l.Visible()
		if l.cursor < len(visible) {
			return l.open(visible[l.cursor])
		}
	}
	return nil
}

func (l *LearnScreen) open(r resources.LearningResource) tea.Cmd {
	opener := l.opener
	return func() tea.Msg {
		if opener == nil {
			return openedMsg{ID: r.ID, Err: resources.ErrNoLink}
		}
		return openedMsg{ID: r.ID, Err: resources.OpenResource(context.Background(), opener, r)}
	}
}

func (l *LearnScreen) clampCursor() {
	if n := len(l.Visible()); l.cursor >= n {
		l.cursor = max(n-1, 0)
	}
}

// CapturingInput is true while the search box has focus.
func (l *LearnScreen) CapturingInput() bool {
	return l.search.Focused()
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	if l.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "↑↓", Description: "Browse"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Watch"},
		{Key: "Tab", Description: "Next tab"},
	}
}

func (l *LearnScreen) View(width, height int) string {
	cw := min(width-4, 76)

	var sections []string
	sections = append(sections,
		theme.Title.Render("Learn")+"\n"+theme.Subtitle.Render("Practical videos for your classroom"),
		l.renderSearch(cw),
		l.renderChips(),
		l.renderList(cw),
		renderGoal(l.ctrl.Stats(), cw),
	)
	if t := l.toast.View(cw); t != "" {
		sections = append(sections, t)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(content))
}

func (l *LearnScreen) renderSearch(cw int) string {
	style := theme.Card
	if l.search.Focused() {
		style = theme.FocusedCard
	}
	return style.Width(cw).Render("🔍 " + l.search.View())
}

func (l *LearnScreen) renderChips() string {
	chips := make([]string, len(l.categories))
	for i, c := range l.categories {
		if i == l.category {
			chips[i] = theme.ChipActive.Render(c)
		} else {
			chips[i] = theme.Chip.Render(c)
		}
	}
	return strings.Join(chips, " ")
}

func (l *LearnScreen) renderList(cw int) string {
	visible := l.Visible()
	if len(visible) == 0 {
		return theme.Hint.Render("No resources match your search.")
	}

	cards := make([]string, len(visible))
	for i, r := range visible {
		style := theme.Card
		if i == l.cursor && !l.search.Focused() {
			style = theme.FocusedCard
		}
		cards[i] = style.Width(cw).Render(renderResource(r, cw-4))
	}
	return strings.Join(cards, "\n")
}

func renderResource(r resources.LearningResource, w int) string {
	category := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(strings.ToUpper(r.Category))
	duration := theme.Chip.Render(kindIcon(r.Kind) + " " + r.Duration)
	gap := max(w-lipgloss.Width(category)-lipgloss.Width(duration), 1)

	action := "Watch ↗"
	if r.Kind != resources.KindVideo {
		action = "Read ↗"
	}
	if !r.HasLink() {
		action = ""
	}
	difficulty := theme.Subtitle.Render(string(r.Difficulty))
	actionGap := max(w-lipgloss.Width(difficulty)-lipgloss.Width(action), 1)

	return category + strings.Repeat(" ", gap) + duration + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(w).Render(r.Title) + "\n" +
		difficulty + strings.Repeat(" ", actionGap) + theme.Selected.Render(action)
}

func kindIcon(k resources.Kind) string {
	switch k {
	case resources.KindVideo:
		return "▶"
	case resources.KindArticle:
		return "📰"
	}
	return "📄"
}

func renderGoal(st stats.UserStats, cw int) string {
	watched := min(st.ResourcesViewed, recommendedGoal)
	body := lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render("✔ Learning Goal") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Info).Render(
			fmt.Sprintf("You've watched %d of %d recommended videos this week.", watched, recommendedGoal))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Info).
		Padding(0, 1).
		Width(cw).
		Render(body)
}

func (l *LearnScreen) Title() string {
	return "Learn"
}
