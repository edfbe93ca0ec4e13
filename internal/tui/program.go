package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the viewer on the local terminal and blocks until the user
// quits or ctx is cancelled. Unless keepLogs is set, logrus output is
// silenced while the program owns the screen.
func Run(ctx context.Context, opts Options, keepLogs bool) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if !keepLogs {
		prevOut := logrus.StandardLogger().Out
		logrus.SetOutput(io.Discard)
		defer logrus.SetOutput(prevOut)
	}

	_, err := p.Run()
	return err
}
