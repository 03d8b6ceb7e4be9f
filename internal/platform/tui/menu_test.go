package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
)

func TestMenuItems(t *testing.T) {
	items := MenuItems()

	byID := make(map[string]MenuItem)
	for _, item := range items {
		byID[item.GameID] = item
	}

	classic, ok := byID["classic"]
	if !ok {
		t.Fatalf("MenuItems() = %v, expected classic", items)
	}
	if classic.Rows != 15 || classic.Cols != 19 || classic.Collectibles != 110 {
		t.Errorf("classic = %+v, expected 15x19 with 110 dots", classic)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if sel.GameID != MenuItems()[1].GameID {
		t.Errorf("Selected() = %q, expected the second maze", sel.GameID)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(80, 24)
	view := m.View()

	for _, want := range []string{"C H A S E", "classic", "Dots"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), nil, nil)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() || cmd == nil {
		t.Fatal("enter should start a game with a frame loop")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.InGame() {
		t.Fatal("esc should return to the picker")
	}

	// Leftover frames are dropped in the picker.
	next, cmd = s.Update(FrameMsg{})
	s = next.(SessionModel)
	if cmd != nil || s.InGame() {
		t.Error("frame in the picker should be ignored")
	}

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if cmd == nil || s.View() != "" {
		t.Error("q should quit the session")
	}
}
