package home

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/plans"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/ui/components"
	"github.com/abhisek/sahayak/internal/ui/layout"
)

// Quotes shown at the bottom of the home screen.
var Quotes = []string{
	"Teaching is the one profession that creates all other professions.",
	"You are making a difference every single day.",
	"Small steps lead to big changes in the classroom.",
}

type modalState int

const (
	modalClosed modalState = iota
	modalPlan
	modalDone
)

// HomeScreen greets the teacher and offers today's lesson plan.
type HomeScreen struct {
	ctrl     *controller.Controller
	aiReady  bool
	quote    string
	now      func() time.Time
	menu     components.Menu
	modal    modalState
	rotation plans.Rotation
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.InputCapturer   = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen reading state from ctrl. aiReady reports whether
// an assistant provider is configured.
func New(ctrl *controller.Controller, aiReady bool) *HomeScreen {
	h := &HomeScreen{
		ctrl:    ctrl,
		aiReady: aiReady,
		quote:   Quotes[rand.IntN(len(Quotes))],
		now:     time.Now,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "TODAY'S PLAN", Action: func() tea.Cmd {
			if !h.ctrl.Profile().IsComplete() {
				return screen.Dispatch(controller.Navigate{To: controller.ViewProfile})
			}
			h.modal = modalPlan
			return nil
		}},
		{Label: "ASK ASSISTANT", Action: func() tea.Cmd {
			return screen.Dispatch(controller.OpenOverlay{})
		}},
		{Label: "BROWSE SOLUTIONS", Action: func() tea.Cmd {
			return screen.Dispatch(controller.Navigate{To: controller.ViewLearn})
		}},
	}
}

// Plan returns the lesson plan currently offered.
func (h *HomeScreen) Plan() plans.LessonPlan {
	return plans.Select(h.ctrl.Profile(), h.rotation.Offset(), h.now())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	switch h.modal {
	case modalPlan:
		switch kmsg.String() {
		case "esc", "c", "q":
			h.modal = modalClosed
		case "d", "enter":
			h.modal = modalDone
		}
		return h, nil

	case modalDone:
		switch kmsg.String() {
		case "y", "enter":
			h.rotation.Next()
			h.modal = modalPlan
		case "n", "esc", "q":
			h.modal = modalClosed
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// CapturingInput is true while the plan modal is showing.
func (h *HomeScreen) CapturingInput() bool {
	return h.modal != modalClosed
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.modal {
	case modalPlan:
		return []layout.KeyHint{
			{Key: "D", Description: "Mark Done"},
			{Key: "Esc", Description: "Close"},
		}
	case modalDone:
		return []layout.KeyHint{
			{Key: "Y", Description: "Another task"},
			{Key: "N", Description: "Done for now"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Next tab"},
		{Key: "Ctrl+O", Description: "Assistant"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	p := h.ctrl.Profile()
	cw := contentWidth(width)

	switch h.modal {
	case modalPlan:
		return renderModal(renderPlan(h.Plan(), p, cw), width, height)
	case modalDone:
		return renderModal(renderDone(p.DisplayName(), cw), width, height)
	}

	var sections []string
	sections = append(sections, renderGreeting(p.DisplayName(), cw))
	if !h.aiReady {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections,
		renderFocusCard(focusText(p.Grade, p.Subject, p.IsComplete()), cw),
		renderActions(h.actionLabels(), h.menu.Selected, cw),
		renderQuote(h.quote, cw),
	)

	return centerBlock(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) actionLabels() []string {
	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	p := h.ctrl.Profile()
	if p.IsComplete() {
		labels[0] = fmt.Sprintf("VIEW %s PLAN", strings.ToUpper(orDaily(p.Subject)))
	} else {
		labels[0] = "SETUP PROFILE NOW"
	}
	return labels
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func focusText(grade, subject string, complete bool) string {
	if !complete {
		return "Complete your profile to get personalized class plans for today."
	}
	return fmt.Sprintf("You have a %s %s class. We have prepared a lesson plan for you.", grade, subject)
}

func orDaily(subject string) string {
	if s := strings.TrimSpace(subject); s != "" {
		return s
	}
	return "Daily"
}
