package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahayak/internal/router"
	"github.com/abhisek/sahayak/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestSplash() (*SplashScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(s *SplashScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

const tagline = "educators of India"

func TestPhaseTransitions(t *testing.T) {
	s, _ := newTestSplash()

	if strings.Contains(s.View(100, 30), tagline) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(s, 5)
	if s.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, s.elapsed)
	}

	sendTicks(s, 10)
	view := s.View(100, 30)
	if !strings.Contains(view, tagline) {
		t.Error("tagline should be visible after phase 2")
	}
	if !strings.Contains(view, "enter the classroom") {
		t.Error("expected key hint after phase 2")
	}
}

func TestKeypressDuringAnimationTransitions(t *testing.T) {
	s, callCount := newTestSplash()
	sendTicks(s, 3)

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	s, callCount := newTestSplash()

	sendTicks(s, 45)
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if s.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, s.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	s, callCount := newTestSplash()

	s.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTicksStopAfterTransition(t *testing.T) {
	s, _ := newTestSplash()
	s.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := s.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop after transition")
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, "S A H A Y A K") {
		t.Errorf("expected compact banner, got %q", got)
	}
}
