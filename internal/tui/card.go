package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// RenderCard draws a profile card in the palette of t. A width of zero or
// less leaves the card at its natural width.
func RenderCard(card profile.Card, t theme.Theme, width int) string {
	return renderCard(newStyles(t), card, width)
}

func renderCard(s styles, card profile.Card, width int) string {
	heading := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(card.Name),
		"  ",
		s.joined.Render("Joined "+card.Joined),
	)

	stats := s.stats.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.statLabel.Render("Repos"),
			s.statLabel.Render("Followers"),
			s.statLabel.Render("Following"),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.statValue.Render(strconv.Itoa(card.Repos)),
			s.statValue.Render(strconv.Itoa(card.Followers)),
			s.statValue.Render(strconv.Itoa(card.Following)),
		),
	))

	// The blog shows as written; BlogURL is only a link target.
	blog := s.metaValue.Render(card.Blog)
	if card.BlogURL != "" {
		blog = s.link.Render(card.Blog)
	}

	meta := lipgloss.JoinVertical(
		lipgloss.Left,
		metaRow(s, "Location", s.metaValue.Render(card.Location)),
		metaRow(s, "Blog", blog),
		metaRow(s, "Twitter", s.metaValue.Render(card.Twitter)),
		metaRow(s, "Company", s.metaValue.Render(card.Company)),
	)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		s.login.Render("@"+card.Login),
		s.avatar.Render(card.AvatarURL),
		s.bio.Render(card.Bio),
		stats,
		meta,
	)

	style := s.card
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}

func metaRow(s styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.metaLabel.Render(label), value)
}
