package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/backend"
	"github.com/pmoracho/tmenu/internal/logging"
	"github.com/pmoracho/tmenu/internal/logging/events"
	"github.com/pmoracho/tmenu/internal/menu"
	"github.com/pmoracho/tmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile   string
	Width      int
	Height     int
	ShowFooter bool
	Watch      bool
	Debug      bool
}

// Run loads the menu definition and executes the Bubble Tea program.
// A missing or unreadable menu file fails here, before the terminal is
// touched.
func Run(cfg Config) error {
	doc, err := menu.Load(cfg.MenuFile)
	if err != nil {
		return err
	}
	events.App.MenuLoaded(cfg.MenuFile, doc.Title, len(doc.Items))

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(cfg.MenuFile)
		if err != nil {
			// Hot reload is a convenience; run without it.
			logging.Error(err)
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(doc, cfg.MenuFile, cfg.Width, cfg.Height, cfg.ShowFooter, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
