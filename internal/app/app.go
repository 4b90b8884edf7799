// Package app is the root Bubble Tea model. It owns the controller and the
// screen stack and turns dispatched actions into navigation.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/resources"
	"github.com/abhisek/sahayak/internal/router"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/screens/dashboard"
	"github.com/abhisek/sahayak/internal/screens/home"
	"github.com/abhisek/sahayak/internal/screens/learn"
	"github.com/abhisek/sahayak/internal/screens/overlay"
	"github.com/abhisek/sahayak/internal/screens/profile"
	"github.com/abhisek/sahayak/internal/screens/splash"
	"github.com/abhisek/sahayak/internal/speech"
	"github.com/abhisek/sahayak/internal/ui/layout"
)

// Deps holds the services shared by all screens.
type Deps struct {
	Controller *controller.Controller
	Coach      *assistant.Coach
	Engine     speech.Engine
	Opener     resources.Opener
	ImageDir   string
	Logger     *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	ctrl   *controller.Controller
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// New creates the root model showing the splash screen.
func New(deps Deps) *AppModel {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Opener == nil {
		deps.Opener = resources.BrowserOpener{}
	}
	m := &AppModel{
		deps:   deps,
		ctrl:   deps.Controller,
		logger: deps.Logger.Named("app"),
	}
	m.router = router.New(splash.New(func() screen.Screen {
		return m.tabScreen(m.ctrl.View())
	}))
	return m
}

// Router exposes the screen stack.
func (m *AppModel) Router() *router.Router {
	return m.router
}

func (m *AppModel) Init() tea.Cmd {
	m.ctrl.Init(context.Background())
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.DispatchMsg:
		return m, m.dispatch(msg.Action)

	case tea.KeyPressMsg:
		if cmd, ok := m.handleGlobalKey(msg); ok {
			return m, cmd
		}
	}

	return m, m.router.Update(msg)
}

// handleGlobalKey reports whether msg was consumed before reaching the
// active screen.
func (m *AppModel) handleGlobalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	}
	if m.onSplash() {
		// The assistant key is reserved; it neither opens the overlay nor
		// dismisses the splash.
		return nil, msg.String() == "ctrl+o"
	}

	switch msg.String() {
	case "ctrl+o":
		if m.ctrl.OverlayOpen() {
			return nil, false
		}
		return m.dispatch(controller.OpenOverlay{}), true
	case "tab", "shift+tab":
		if m.capturing() {
			return nil, false
		}
		step := 1
		if msg.String() == "shift+tab" {
			step = -1
		}
		return m.dispatch(controller.Navigate{To: m.neighbour(step)}), true
	}
	return nil, false
}

// dispatch applies a, mirrors it onto the screen stack, and saves when the
// persisted records changed.
func (m *AppModel) dispatch(a controller.Action) tea.Cmd {
	wasOpen := m.ctrl.OverlayOpen()
	changed := m.ctrl.Apply(a)

	var cmds []tea.Cmd
	switch a := a.(type) {
	case controller.Navigate:
		m.logger.Debug("navigate", zap.Stringer("view", a.To))
		cmds = append(cmds, m.router.ReplaceRoot(m.tabScreen(a.To)))
	case controller.OpenOverlay:
		if !wasOpen {
			cmds = append(cmds, m.router.Push(overlay.New(overlay.Deps{
				Coach:    m.deps.Coach,
				Profile:  m.ctrl.Profile(),
				Engine:   m.deps.Engine,
				Opener:   m.deps.Opener,
				ImageDir: m.deps.ImageDir,
			})))
		}
	case controller.CloseOverlay:
		if wasOpen {
			cmds = append(cmds, m.router.Pop())
		}
	}

	if changed {
		cmds = append(cmds, m.save(m.ctrl.Snapshot()))
	}
	return tea.Batch(cmds...)
}

// save writes snap off the UI goroutine. Failures are logged by the
// controller and the in-memory state stays authoritative.
func (m *AppModel) save(snap controller.Snapshot) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		_ = ctrl.Save(context.Background(), snap)
		return nil
	}
}

func (m *AppModel) tabScreen(v controller.View) screen.Screen {
	switch v {
	case controller.ViewLearn:
		return learn.New(m.ctrl, m.deps.Opener)
	case controller.ViewDashboard:
		return dashboard.New(m.ctrl)
	case controller.ViewProfile:
		return profile.New(m.ctrl)
	}
	return home.New(m.ctrl, m.deps.Coach != nil && m.deps.Coach.Ready() == nil)
}

// neighbour returns the tab step positions away from the current one.
func (m *AppModel) neighbour(step int) controller.View {
	n := len(controller.Views)
	for i, v := range controller.Views {
		if v == m.ctrl.View() {
			return controller.Views[((i+step)%n+n)%n]
		}
	}
	return controller.ViewHome
}

func (m *AppModel) onSplash() bool {
	_, ok := m.router.Active().(*splash.SplashScreen)
	return ok
}

func (m *AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out header, active screen, tabs and footer.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	if m.onSplash() {
		return m.router.View(m.width, m.height)
	}

	p := m.ctrl.Profile()
	header := layout.RenderHeader(m.router.Active().Title(), p.Initial(), m.ctrl.Stats().CurrentStreak, m.width)

	labels := make([]string, len(controller.Views))
	active := 0
	for i, view := range controller.Views {
		labels[i] = view.String()
		if view == m.ctrl.View() {
			active = i
		}
	}
	tabs := layout.RenderTabs(labels, active, m.width)
	footer := lipgloss.JoinVertical(lipgloss.Left, tabs, layout.RenderFooter(m.footerHints(), m.width))

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m *AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if !m.ctrl.OverlayOpen() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "Assistant"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
