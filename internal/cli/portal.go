package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runPortal starts the full-screen TUI and blocks until the user quits.
func runPortal(app *App) error {
	var opts []tea.ProgramOption
	if app.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	run := app.RunProgram
	if run == nil {
		run = func(m tea.Model, opts ...tea.ProgramOption) error {
			_, err := tea.NewProgram(m, opts...).Run()
			return err
		}
	}

	if err := run(newAppModel(app), opts...); err != nil {
		return fmt.Errorf("running portal: %w", err)
	}
	return nil
}
