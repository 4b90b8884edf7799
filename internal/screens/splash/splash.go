package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/router"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const logoArt = `      ★
  ╭───────────╮
  │ ╭───┬───╮ │
  │ │ ≡ │ ≡ │ │
  │ │ ≡ │ ≡ │ │
  │ ╰───┴───╯ │
  ╰───────────╯`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// SplashScreen shows the logo and tagline before entering the classroom.
type SplashScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen that replaces itself with the screen produced
// by next on the first key press.
func New(next func() screen.Screen) *SplashScreen {
	return &SplashScreen{next: next}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.transitioned {
			return s, nil
		}
		if s.elapsed < totalDur {
			s.elapsed += tickInterval
		}
		s.tickCount++
		return s, tick()

	case tea.KeyPressMsg:
		return s, s.transition()
	}

	return s, nil
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	logo := lipgloss.NewStyle().Foreground(theme.Primary).Render(logoArt)

	if s.elapsed >= phase1End {
		sparkle := sparkleFrames[s.tickCount%len(sparkleFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		secondary := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(logo, "\n")
		if len(lines) > 3 {
			lines[3] = accent + "  " + lines[3] + "  " + secondary
		}
		logo = strings.Join(lines, "\n")
	}
	sections = append(sections, logo)

	if s.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Empowering the educators of India with AI wisdom & tools."),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to enter the classroom"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
