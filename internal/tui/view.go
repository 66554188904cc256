package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/profile"
)

const helpText = "enter search • ctrl+t theme • esc clear • ctrl+c quit"

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderSearch(),
		m.renderBody(),
	}
	if m.notice != "" {
		sections = append(sections, m.styles.notice.Render(m.notice))
	}
	sections = append(sections, m.styles.help.Render(helpText))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	title := m.styles.title.Render("devfinder")
	toggle := m.styles.toggle.Render(m.themes.Current().Label())

	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

func (m Model) renderSearch() string {
	row := m.styles.input.Render(m.input.View())
	if m.state.Failed() {
		row = lipgloss.JoinVertical(lipgloss.Left, row, m.styles.failure.Render(lookup.FailureMessage))
	}
	return row
}

func (m Model) renderBody() string {
	if m.state.Loading() {
		return m.styles.loading.Render(m.spinner.View() + " Loading...")
	}

	// Failure and idle both fall back to the placeholder card.
	var card profile.Card
	if m.state.Status == lookup.StatusSuccess {
		card = profile.NewCard(m.state.Profile)
	} else {
		card = profile.NewCard(nil)
	}
	return renderCard(m.styles, card, m.contentWidth())
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}
