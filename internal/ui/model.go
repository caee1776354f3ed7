package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/backend"
	"github.com/pmoracho/tmenu/internal/menu"
	"github.com/pmoracho/tmenu/internal/theme"
	"github.com/pmoracho/tmenu/internal/ui/state"
)

type level = state.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(title string, items []menu.Item) *level {
	return state.NewLevel(title, items)
}

// Model implements the Bubble Tea model for the menu launcher. It owns
// the navigation engine plus presentation-only state; running external
// commands happens through tea.Exec so the terminal is handed over and
// restored by the framework.
type Model struct {
	engine            *state.Engine
	menuPath          string
	running           string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	backend           *backend.Watcher
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state from a parsed menu document.
func NewModel(doc menu.Document, menuPath string, width, height int, showFooter bool, watcher *backend.Watcher) *Model {
	root := newLevel(doc.Title, doc.Items)
	m := &Model{
		engine:     state.NewEngine(root),
		menuPath:   menuPath,
		showFooter: showFooter,
		backend:    watcher,
	}
	m.syncViewport(root)
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForReloadEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(execFinishedMsg{}):   m.handleExecFinishedMsg,
		reflect.TypeOf(reloadEventMsg{}):    m.handleReloadEventMsg,
		reflect.TypeOf(reloadDoneMsg{}):     m.handleReloadDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) currentLevel() *level {
	return m.engine.Current()
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

// maxVisibleItems reserves rows for the box chrome (border, padding,
// title) and the bottom bar before giving the rest to menu items.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	avail := m.height - menuChromeRows
	if m.showFooter {
		avail--
	}
	if avail < 1 {
		avail = 1
	}
	return avail
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		return ""
	}
	return m.infoMsg
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}
