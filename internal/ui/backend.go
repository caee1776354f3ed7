package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/backend"
	"github.com/pmoracho/tmenu/internal/logging"
	"github.com/pmoracho/tmenu/internal/logging/events"
	"github.com/pmoracho/tmenu/internal/menu"
)

type reloadEventMsg struct {
	event backend.Event
}

type reloadDoneMsg struct {
	path string
	doc  menu.Document
	err  error
}

func waitForReloadEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return nil
		}
		return reloadEventMsg{event: evt}
	}
}

func reloadMenuCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := menu.Load(path)
		return reloadDoneMsg{path: path, doc: doc, err: err}
	}
}

func (m *Model) handleReloadEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(reloadEventMsg)
	if !ok || m.backend == nil {
		return nil
	}
	rearm := waitForReloadEvent(m.backend)
	if evt.event.Err != nil {
		logging.Error(evt.event.Err)
		m.errMsg = evt.event.Err.Error()
		return rearm
	}
	return tea.Batch(reloadMenuCmd(evt.event.Path), rearm)
}

// handleReloadDoneMsg swaps in a freshly parsed menu. The stack resets
// to the new root; the root selection is re-anchored by label when the
// previously selected entry survives the edit. A failed parse keeps
// the menu that is already on screen.
func (m *Model) handleReloadDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(reloadDoneMsg)
	if !ok {
		return nil
	}
	events.App.MenuReloaded(done.path, done.err)
	if done.err != nil {
		logging.Error(done.err)
		m.errMsg = done.err.Error()
		return nil
	}
	prevLabel := ""
	if m.engine.AtRoot() {
		if current := m.currentLevel(); current != nil {
			if item, ok := current.SelectedItem(); ok {
				prevLabel = item.Label
			}
		}
	}
	root := newLevel(done.doc.Title, done.doc.Items)
	if prevLabel != "" {
		if idx := root.IndexOf(prevLabel); idx >= 0 {
			root.Cursor = idx
		}
	}
	m.engine.Reset(root)
	m.syncViewport(root)
	m.errMsg = ""
	m.setInfo("menu reloaded")
	return nil
}
