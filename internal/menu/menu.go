package menu

import "strings"

// ExitCommand is the reserved command literal that terminates the
// launcher instead of spawning a process.
const ExitCommand = "exit"

// Item represents a selectable menu entry.
type Item struct {
	Label  string
	Meta   string
	Action Action
}

// Action is what activating an item does: run a shell command or open
// a nested level of items. Every item carries exactly one of the two.
type Action interface {
	isAction()
}

// Execute runs a shell command when its item is activated.
type Execute struct {
	Command string
}

// Submenu opens a nested level built from its items.
type Submenu struct {
	Items []Item
}

func (Execute) isAction() {}
func (Submenu) isAction() {}

// Document is the parsed menu tree: a title plus the root items. The
// tree is built once at startup and never mutated afterwards.
type Document struct {
	Title string
	Items []Item
}

// NormalizeCommand strips surrounding whitespace and quotes from a
// command string, mirroring what the shell receives.
func NormalizeCommand(command string) string {
	return strings.Trim(strings.TrimSpace(command), `"`)
}

// IsExit reports whether the command is the reserved exit literal.
func IsExit(command string) bool {
	return NormalizeCommand(command) == ExitCommand
}
