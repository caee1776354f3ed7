package events

import "github.com/pmoracho/tmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ExecTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Exec   = ExecTracer{}
)

func (UITracer) MenuEnter(level, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"level":  level,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(level string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": level, "cursor": cursor})
}

func (UITracer) MenuAscend(level string) {
	logging.Trace("menu.ascend", map[string]interface{}{"level": level})
}

func (FilterTracer) Cleared(level string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": level})
}

func (FilterTracer) WordBackspace(level, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) Cursor(level string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": level, "cursor": pos})
}

func (FilterTracer) Append(level, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) Backspace(level, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": level, "filter": filter})
}

func (ExecTracer) Start(command string) {
	logging.Trace("exec.start", map[string]interface{}{"command": command})
}

func (ExecTracer) Finish(command string, err error) {
	payload := map[string]interface{}{"command": command}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("exec.finish", payload)
}
