package state

import (
	"github.com/pmoracho/tmenu/internal/menu"
)

// Level encapsulates one menu depth: its title, visible items, cursor
// position, filter, and viewport. Items is the filtered view over Full;
// with no filter active the two are equal.
type Level struct {
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over the provided items. The cursor
// starts on the first item when one exists.
func NewLevel(title string, items []menu.Item) *Level {
	l := &Level{
		Title:      title,
		Cursor:     0,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// SelectedIndex returns the cursor position, or -1 when the level has
// no items to select.
func (l *Level) SelectedIndex() int {
	if len(l.Items) == 0 {
		return -1
	}
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return 0
	}
	return l.Cursor
}

// SelectedItem returns the item under the cursor.
func (l *Level) SelectedItem() (menu.Item, bool) {
	idx := l.SelectedIndex()
	if idx < 0 {
		return menu.Item{}, false
	}
	return l.Items[idx], true
}

// IndexOf returns the position of the item with the given label, or -1.
func (l *Level) IndexOf(label string) int {
	if label == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Label == label {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the level's items, reapplying any active filter
// and clamping cursor and viewport.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
