package events

import "github.com/pmoracho/tmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) MenuLoaded(path, title string, items int) {
	logging.Trace("app.menu-loaded", map[string]interface{}{
		"path":  path,
		"title": title,
		"items": items,
	})
}

func (AppTracer) MenuReloaded(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.menu-reloaded", payload)
}
