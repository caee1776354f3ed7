package ui

import (
	"strings"
	"testing"

	"github.com/pmoracho/tmenu/internal/menu"
)

func TestViewShowsTitleAndItems(t *testing.T) {
	h := NewHarness(newTestModel())
	view := h.View()
	for _, want := range []string{"main", "Htop", "Tools", "Quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestViewMarksSubmenuItems(t *testing.T) {
	view := NewHarness(newTestModel()).View()
	if !strings.Contains(view, "Tools ▸") {
		t.Fatalf("expected submenu marker on Tools:\n%s", view)
	}
	if strings.Contains(view, "Htop ▸") {
		t.Fatalf("did not expect submenu marker on Htop:\n%s", view)
	}
}

func TestViewShowsSubmenuTitleAfterDescent(t *testing.T) {
	h := NewHarness(newTestModel())
	h.SendKey("down")
	h.SendKey("enter")
	view := h.View()
	if !strings.Contains(view, "Tools") {
		t.Fatalf("expected submenu title:\n%s", view)
	}
	if !strings.Contains(view, "Disk usage") || !strings.Contains(view, "Processes") {
		t.Fatalf("expected submenu entries:\n%s", view)
	}
	if strings.Contains(view, "Htop") {
		t.Fatalf("expected parent entries hidden:\n%s", view)
	}
}

func TestViewShowsNoMatches(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Type("zzz")
	view := h.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message:\n%s", view)
	}
}

func TestViewShowsErrorLine(t *testing.T) {
	m := newTestModel()
	m.errMsg = "boom"
	view := m.View()
	if !strings.Contains(view, "Error: boom") {
		t.Fatalf("expected error line:\n%s", view)
	}
}

func TestViewShowsFooterWhenEnabled(t *testing.T) {
	m := NewModel(testDocument(), "menu.toon", 60, 20, true, nil)
	view := m.View()
	if !strings.Contains(view, "ctrl+c quit") {
		t.Fatalf("expected footer hints:\n%s", view)
	}
}

func TestViewEmptyMenu(t *testing.T) {
	m := NewModel(menu.Document{Title: "empty"}, "menu.toon", 60, 20, false, nil)
	view := m.View()
	if !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected empty placeholder:\n%s", view)
	}
}

func TestViewLimitsVisibleItems(t *testing.T) {
	items := make([]menu.Item, 0, 40)
	labels := make([]string, 0, 40)
	for _, name := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	} {
		items = append(items, menu.Item{Label: name, Action: menu.Execute{Command: "true"}})
		labels = append(labels, name)
	}
	m := NewModel(menu.Document{Title: "long", Items: items}, "menu.toon", 60, 12, false, nil)
	view := m.View()
	visible := 0
	for _, label := range labels {
		if strings.Contains(view, label) {
			visible++
		}
	}
	if max := m.maxVisibleItems(); visible != max {
		t.Fatalf("expected %d visible items, got %d:\n%s", max, visible, view)
	}
	if !strings.Contains(view, "alpha") {
		t.Fatalf("expected viewport anchored at top:\n%s", view)
	}
	if strings.Contains(view, "tango") {
		t.Fatalf("expected tail hidden:\n%s", view)
	}
}
