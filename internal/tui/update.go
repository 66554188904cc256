package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LookupResolvedMsg:
		m.state = m.controller.Snapshot()
		return m, nil

	case ThemeSavedMsg:
		m.notice = ""
		return m, nil

	case ErrorMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "theme preference not saved")
			m.notice = fmt.Sprintf("Theme not saved: %v", msg.Err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		ticket := m.controller.Begin(m.input.Value())
		m.state = m.controller.Snapshot()
		if ticket.Rejected {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, runLookupCmd(m.ctx, m.controller, ticket))

	case tea.KeyCtrlT:
		next := m.themes.Toggle()
		m.applyTheme(next)
		m.log.WithFields(map[string]any{"theme": next.String()}).Debug("theme toggled")
		if m.saver == nil {
			return m, nil
		}
		return m, saveThemeCmd(m.saver, next)

	case tea.KeyEsc:
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
