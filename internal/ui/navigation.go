package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/logging/events"
	"github.com/pmoracho/tmenu/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if current := m.currentLevel(); current != nil && current.Filter == "" && keyMsg.String() == "q" {
		return tea.Quit
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "esc", "left":
		return m.handleEscapeKey()
	case "enter", "right":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleEscapeKey clears an active filter first; with no filter it pops
// one menu level. At the root it does nothing.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	if current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		m.errMsg = ""
		m.clearInfo()
		events.Filter.Cleared(current.Title)
		m.syncViewport(current)
		return nil
	}
	if !m.engine.Ascend() {
		return nil
	}
	if parent := m.currentLevel(); parent != nil {
		events.UI.MenuAscend(parent.Title)
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.clearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.SelectedItem()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.Title, item.Label, current.Filter)
	before := current.FilterCursorPos()
	dispatch, command := m.engine.Activate()
	m.noteFilterCursorChange(current, before)
	m.errMsg = ""
	m.clearInfo()
	switch dispatch {
	case state.DispatchQuit:
		return tea.Quit
	case state.DispatchRun:
		return m.runCommand(command)
	case state.DispatchDescend:
		m.syncViewport(m.currentLevel())
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if m.engine.MovePrevious() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if m.engine.MoveNext() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorHome() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorEnd() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}
