package state

import (
	"reflect"
	"testing"

	"github.com/pmoracho/tmenu/internal/menu"
)

func newTestEngine() *Engine {
	items := []menu.Item{
		{Label: "Tools", Action: menu.Submenu{Items: []menu.Item{
			{Label: "Build", Action: menu.Execute{Command: "echo build"}},
			{Label: "Clean", Action: menu.Execute{Command: "echo clean"}},
		}}},
		{Label: "Shell", Action: menu.Execute{Command: "echo shell"}},
		{Label: "Quit", Action: menu.Execute{Command: "exit"}},
	}
	return NewEngine(NewLevel("main", items))
}

func TestActivateCommandItem(t *testing.T) {
	e := newTestEngine()
	e.Current().Cursor = 1
	dispatch, command := e.Activate()
	if dispatch != DispatchRun {
		t.Fatalf("expected DispatchRun, got %v", dispatch)
	}
	if command != "echo shell" {
		t.Fatalf("expected command %q, got %q", "echo shell", command)
	}
	if e.Depth() != 1 {
		t.Fatalf("expected no level change, depth %d", e.Depth())
	}
}

func TestActivateExitLiteralQuits(t *testing.T) {
	e := newTestEngine()
	e.Current().Cursor = 2
	dispatch, command := e.Activate()
	if dispatch != DispatchQuit {
		t.Fatalf("expected DispatchQuit, got %v", dispatch)
	}
	if command != "" {
		t.Fatalf("expected no command for quit, got %q", command)
	}
}

func TestActivateQuotedExitQuits(t *testing.T) {
	e := NewEngine(NewLevel("main", []menu.Item{
		{Label: "Quit", Action: menu.Execute{Command: ` "exit" `}},
	}))
	dispatch, _ := e.Activate()
	if dispatch != DispatchQuit {
		t.Fatalf("expected quoted exit to quit, got %v", dispatch)
	}
}

func TestActivateSubmenuDescends(t *testing.T) {
	e := newTestEngine()
	dispatch, _ := e.Activate()
	if dispatch != DispatchDescend {
		t.Fatalf("expected DispatchDescend, got %v", dispatch)
	}
	if e.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", e.Depth())
	}
	child := e.Current()
	if child.Title != "Tools" {
		t.Fatalf("expected child title Tools, got %q", child.Title)
	}
	if child.SelectedIndex() != 0 {
		t.Fatalf("expected child selection 0, got %d", child.SelectedIndex())
	}
	if len(child.Items) != 2 {
		t.Fatalf("expected 2 child items, got %d", len(child.Items))
	}
}

func TestDescendClonesSubmenuItems(t *testing.T) {
	e := newTestEngine()
	root := e.Current()
	e.Activate()
	child := e.Current()
	child.Items[0].Label = "mutated"
	sub := root.Items[0].Action.(menu.Submenu)
	if sub.Items[0].Label != "Build" {
		t.Fatalf("child mutation leaked into the parsed tree: %q", sub.Items[0].Label)
	}
}

func TestAscendRestoresParentExactly(t *testing.T) {
	e := newTestEngine()
	root := e.Current()
	wantTitle := root.Title
	wantItems := CloneItems(root.Items)
	root.Cursor = 0

	if dispatch, _ := e.Activate(); dispatch != DispatchDescend {
		t.Fatalf("expected descend")
	}
	e.Current().Cursor = 1

	if !e.Ascend() {
		t.Fatalf("expected ascend to pop a level")
	}
	got := e.Current()
	if got.Title != wantTitle {
		t.Fatalf("expected title %q, got %q", wantTitle, got.Title)
	}
	if !reflect.DeepEqual(got.Items, wantItems) {
		t.Fatalf("expected items restored, got %#v", got.Items)
	}
	if got.Cursor != 0 {
		t.Fatalf("expected cursor restored to 0, got %d", got.Cursor)
	}
	if got.LastCursor != -1 {
		t.Fatalf("expected LastCursor reset, got %d", got.LastCursor)
	}
}

func TestAscendAtRootIsNoOp(t *testing.T) {
	e := newTestEngine()
	if e.Ascend() {
		t.Fatalf("expected no ascend at root")
	}
	if e.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", e.Depth())
	}
}

func TestActivateOnEmptyLevel(t *testing.T) {
	e := NewEngine(NewLevel("empty", nil))
	dispatch, command := e.Activate()
	if dispatch != DispatchNone || command != "" {
		t.Fatalf("expected no dispatch on empty level, got %v %q", dispatch, command)
	}
}

func TestActivateClearsFilterAndKeepsItem(t *testing.T) {
	e := newTestEngine()
	root := e.Current()
	root.SetFilter("shell", 5)
	if len(root.Items) == 0 {
		t.Fatalf("expected filter to match Shell")
	}
	dispatch, command := e.Activate()
	if dispatch != DispatchRun || command != "echo shell" {
		t.Fatalf("expected Shell activation, got %v %q", dispatch, command)
	}
	if root.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", root.Filter)
	}
	if len(root.Items) != 3 {
		t.Fatalf("expected full item list restored, got %d", len(root.Items))
	}
	if root.Cursor != 1 {
		t.Fatalf("expected cursor re-anchored to Shell, got %d", root.Cursor)
	}
}

func TestResetReplacesStack(t *testing.T) {
	e := newTestEngine()
	e.Activate()
	e.Reset(NewLevel("fresh", []menu.Item{{Label: "Only", Action: menu.Execute{Command: "true"}}}))
	if e.Depth() != 1 {
		t.Fatalf("expected depth 1 after reset, got %d", e.Depth())
	}
	if e.Current().Title != "fresh" {
		t.Fatalf("expected fresh root, got %q", e.Current().Title)
	}
}
