package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start() error {
	explorer := NewHashExplorer()
	if err := tea.NewProgram(explorer).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
