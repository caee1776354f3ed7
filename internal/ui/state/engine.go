package state

import (
	"github.com/pmoracho/tmenu/internal/menu"
)

// Dispatch is the decision produced by activating the selected item.
// The engine only decides; running commands and quitting are the
// caller's side effects.
type Dispatch int

const (
	// DispatchNone means nothing happened (empty level).
	DispatchNone Dispatch = iota
	// DispatchQuit requests application termination.
	DispatchQuit
	// DispatchRun asks the caller to run the returned shell command.
	DispatchRun
	// DispatchDescend means a submenu level was pushed.
	DispatchDescend
)

// Engine is the navigation state machine: a stack of menu levels with
// the root at the bottom and the displayed level on top. It performs
// no I/O and never spawns processes.
type Engine struct {
	stack []*Level
}

// NewEngine creates an engine showing the given root level.
func NewEngine(root *Level) *Engine {
	return &Engine{stack: []*Level{root}}
}

// Current returns the level being displayed.
func (e *Engine) Current() *Level {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// Depth returns the number of levels on the stack.
func (e *Engine) Depth() int {
	return len(e.stack)
}

// AtRoot reports whether the root level is being displayed.
func (e *Engine) AtRoot() bool {
	return len(e.stack) <= 1
}

// Reset replaces the whole stack with a new root level.
func (e *Engine) Reset(root *Level) {
	e.stack = []*Level{root}
}

// MoveNext advances the selection with wraparound.
func (e *Engine) MoveNext() bool {
	if current := e.Current(); current != nil {
		return current.MoveCursorNext()
	}
	return false
}

// MovePrevious retreats the selection with wraparound.
func (e *Engine) MovePrevious() bool {
	if current := e.Current(); current != nil {
		return current.MoveCursorPrevious()
	}
	return false
}

// Activate inspects the selected item and either decides to quit,
// hands the caller a command to run, or descends into a submenu. An
// active filter is cleared first; the selection is re-anchored to the
// same item within the unfiltered list.
func (e *Engine) Activate() (Dispatch, string) {
	current := e.Current()
	if current == nil {
		return DispatchNone, ""
	}
	item, ok := current.SelectedItem()
	if !ok {
		return DispatchNone, ""
	}
	if current.Filter != "" {
		current.SetFilter("", 0)
		if idx := current.IndexOf(item.Label); idx >= 0 {
			current.Cursor = idx
		}
	}
	switch action := item.Action.(type) {
	case menu.Execute:
		if menu.IsExit(action.Command) {
			return DispatchQuit, ""
		}
		return DispatchRun, menu.NormalizeCommand(action.Command)
	case menu.Submenu:
		current.LastCursor = current.Cursor
		e.stack = append(e.stack, NewLevel(item.Label, action.Items))
		return DispatchDescend, ""
	}
	return DispatchNone, ""
}

// Ascend pops the displayed level and restores the parent's prior
// selection. At the root it does nothing and reports false.
func (e *Engine) Ascend() bool {
	if len(e.stack) <= 1 {
		return false
	}
	child := e.Current()
	e.stack = e.stack[:len(e.stack)-1]
	parent := e.Current()
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(child.Title); idx >= 0 {
		parent.Cursor = idx
	} else if len(parent.Items) > 0 {
		parent.Cursor = len(parent.Items) - 1
	}
	parent.LastCursor = -1
	return true
}
