package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// runLookupCmd resolves a started lookup off the update loop.
func runLookupCmd(ctx context.Context, controller *lookup.Controller, ticket lookup.Ticket) tea.Cmd {
	return func() tea.Msg {
		state := controller.Run(ctx, ticket)
		return LookupResolvedMsg{Seq: ticket.Seq, State: state}
	}
}

// saveThemeCmd persists the chosen theme.
func saveThemeCmd(saver ThemeSaver, t theme.Theme) tea.Cmd {
	return func() tea.Msg {
		if err := saver.SetTheme(t); err != nil {
			return ErrorMsg{Err: err}
		}
		return ThemeSavedMsg{Theme: t}
	}
}
