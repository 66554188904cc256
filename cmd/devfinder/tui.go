package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/tui"
)

func runTUI(cmd *cobra.Command, root *rootFlags) error {
	app, err := newAppContext(cmd, root, true)
	if err != nil {
		return err
	}
	defer app.Close()

	opts := tui.Options{
		Context:    cmd.Context(),
		Controller: app.NewController(),
		Themes:     app.Themes,
		Seed:       app.Seed,
		Logger:     app.Logger,
	}
	if app.Prefs != nil {
		opts.Saver = app.Prefs
	}

	app.Logger.WithFields(map[string]any{"seed": app.Seed, "theme": app.Themes.Current().String()}).Info("launching terminal UI")

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "terminal UI failed")
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}

	app.Logger.Info("terminal UI closed")
	return nil
}
