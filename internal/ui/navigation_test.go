package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/menu"
)

func testDocument() menu.Document {
	return menu.Document{
		Title: "main",
		Items: []menu.Item{
			{Label: "Htop", Action: menu.Execute{Command: "htop"}},
			{Label: "Tools", Action: menu.Submenu{Items: []menu.Item{
				{Label: "Disk usage", Action: menu.Execute{Command: "df -h"}},
				{Label: "Processes", Action: menu.Execute{Command: "ps aux"}},
			}}},
			{Label: "Quit", Action: menu.Execute{Command: "exit"}},
		},
	}
}

func newTestModel() *Model {
	return NewModel(testDocument(), "menu.toon", 60, 20, false, nil)
}

func TestEnterDescendsIntoSubmenu(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("down")
	h.SendKey("enter")

	m := h.Model()
	if m.engine.Depth() != 2 {
		t.Fatalf("expected depth 2 after descending, got %d", m.engine.Depth())
	}
	current := m.currentLevel()
	if current.Title != "Tools" {
		t.Fatalf("expected Tools level, got %q", current.Title)
	}
	if current.Cursor != 0 {
		t.Fatalf("expected submenu cursor at 0, got %d", current.Cursor)
	}
}

func TestEscapeReturnsToParentSelection(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("down")
	h.SendKey("enter")
	h.SendKey("esc")

	m := h.Model()
	if m.engine.Depth() != 1 {
		t.Fatalf("expected depth 1 after ascending, got %d", m.engine.Depth())
	}
	current := m.currentLevel()
	if current.Cursor != 1 {
		t.Fatalf("expected cursor restored to Tools (1), got %d", current.Cursor)
	}
}

func TestEscapeAtRootIsNoOp(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd != nil {
		t.Fatalf("expected no command at root, got %v", cmd)
	}
	if m.engine.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", m.engine.Depth())
	}
}

func TestLeftAndRightMirrorEscapeAndEnter(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("down")
	h.SendKey("right")
	if h.Model().engine.Depth() != 2 {
		t.Fatalf("expected right to descend, depth %d", h.Model().engine.Depth())
	}
	h.SendKey("left")
	if h.Model().engine.Depth() != 1 {
		t.Fatalf("expected left to ascend, depth %d", h.Model().engine.Depth())
	}
}

func TestQuitKeyWithEmptyFilter(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestQuitKeyFeedsActiveFilter(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("h")
	h.Type("q")

	current := h.Model().currentLevel()
	if current.Filter != "hq" {
		t.Fatalf("expected q appended to filter, got %q", current.Filter)
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m := newTestModel()
	m.currentLevel().SetFilter("h", 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestEnterOnCommandItemStartsExec(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected exec command")
	}
	if m.running != "htop" {
		t.Fatalf("expected htop to be running, got %q", m.running)
	}
}

func TestEnterOnExitItemQuits(t *testing.T) {
	m := newTestModel()
	m.currentLevel().Cursor = 2
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestExecFinishedClearsRunning(t *testing.T) {
	m := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(execFinishedMsg{command: "htop"})
	if m.running != "" {
		t.Fatalf("expected running cleared, got %q", m.running)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error, got %q", m.errMsg)
	}
}

func TestExecFailureSurfacesError(t *testing.T) {
	m := newTestModel()
	m.Update(execFinishedMsg{command: "htop", err: errors.New("exit status 1")})
	if m.errMsg != "exit status 1" {
		t.Fatalf("expected error surfaced, got %q", m.errMsg)
	}
}

func TestTypingNarrowsItems(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("ht")

	current := h.Model().currentLevel()
	if len(current.Items) != 1 || current.Items[0].Label != "Htop" {
		t.Fatalf("expected only Htop to match, got %v", current.Items)
	}
}

func TestEscapeClearsFilterBeforeAscending(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("down")
	h.SendKey("enter")
	h.Type("disk")
	h.SendKey("esc")

	m := h.Model()
	if m.engine.Depth() != 2 {
		t.Fatalf("expected to stay in submenu, depth %d", m.engine.Depth())
	}
	if m.currentLevel().Filter != "" {
		t.Fatalf("expected filter cleared, got %q", m.currentLevel().Filter)
	}
	h.SendKey("esc")
	if h.Model().engine.Depth() != 1 {
		t.Fatalf("expected second esc to ascend, depth %d", h.Model().engine.Depth())
	}
}

func TestReloadReplacesMenuAndKeepsSelection(t *testing.T) {
	m := newTestModel()
	m.currentLevel().Cursor = 2 // Quit

	updated := menu.Document{
		Title: "main v2",
		Items: []menu.Item{
			{Label: "Htop", Action: menu.Execute{Command: "htop"}},
			{Label: "Quit", Action: menu.Execute{Command: "exit"}},
		},
	}
	m.Update(reloadDoneMsg{path: "menu.toon", doc: updated})

	current := m.currentLevel()
	if current.Title != "main v2" {
		t.Fatalf("expected reloaded title, got %q", current.Title)
	}
	if current.Cursor != 1 {
		t.Fatalf("expected selection re-anchored to Quit (1), got %d", current.Cursor)
	}
}

func TestReloadFailureKeepsCurrentMenu(t *testing.T) {
	m := newTestModel()
	m.Update(reloadDoneMsg{path: "menu.toon", err: errors.New("parse failed")})

	if m.currentLevel().Title != "main" {
		t.Fatalf("expected original menu kept, got %q", m.currentLevel().Title)
	}
	if m.errMsg != "parse failed" {
		t.Fatalf("expected error surfaced, got %q", m.errMsg)
	}
}

func TestCursorWrapsAtEdges(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("up")
	if got := h.Model().currentLevel().Cursor; got != 2 {
		t.Fatalf("expected wrap to last item, got %d", got)
	}
	h.SendKey("down")
	if got := h.Model().currentLevel().Cursor; got != 0 {
		t.Fatalf("expected wrap to first item, got %d", got)
	}
}
