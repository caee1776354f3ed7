package ui

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmoracho/tmenu/internal/logging/events"
)

type execFinishedMsg struct {
	command string
	err     error
}

// shellExec runs a menu command through the shell while the terminal is
// handed over by tea.Exec, then waits for a keypress so the command's
// output stays readable before the menu redraws.
type shellExec struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func newShellExec(command string) *shellExec {
	return &shellExec{command: command}
}

func (s *shellExec) SetStdin(r io.Reader)  { s.stdin = r }
func (s *shellExec) SetStdout(w io.Writer) { s.stdout = w }
func (s *shellExec) SetStderr(w io.Writer) { s.stderr = w }

func (s *shellExec) Run() error {
	cmd := shellCommand(s.command)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	runErr := cmd.Run()
	s.waitForReturn(runErr)
	return runErr
}

func (s *shellExec) waitForReturn(runErr error) {
	if s.stdout == nil || s.stdin == nil {
		return
	}
	if runErr != nil {
		fmt.Fprintf(s.stdout, "\ncommand failed: %v\n", runErr)
	}
	fmt.Fprint(s.stdout, "\npress ENTER to return to the menu...")
	reader := bufio.NewReader(s.stdin)
	_, _ = reader.ReadString('\n')
}

func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", command)
	}
	return exec.Command("sh", "-c", command)
}

func (m *Model) runCommand(command string) tea.Cmd {
	if command == "" {
		return nil
	}
	m.running = command
	events.Exec.Start(command)
	return tea.Exec(newShellExec(command), func(err error) tea.Msg {
		return execFinishedMsg{command: command, err: err}
	})
}

func (m *Model) handleExecFinishedMsg(msg tea.Msg) tea.Cmd {
	finished, ok := msg.(execFinishedMsg)
	if !ok {
		return nil
	}
	m.running = ""
	events.Exec.Finish(finished.command, finished.err)
	if finished.err != nil {
		m.errMsg = finished.err.Error()
	} else {
		m.errMsg = ""
	}
	return nil
}
