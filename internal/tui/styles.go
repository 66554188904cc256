package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// styles is the full style set for one theme. It is rebuilt on toggle
// rather than mutated in place.
type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	toggle  lipgloss.Style
	input   lipgloss.Style
	failure lipgloss.Style
	spinner lipgloss.Style
	loading lipgloss.Style
	help    lipgloss.Style
	notice  lipgloss.Style

	card      lipgloss.Style
	name      lipgloss.Style
	login     lipgloss.Style
	joined    lipgloss.Style
	bio       lipgloss.Style
	avatar    lipgloss.Style
	stats     lipgloss.Style
	statLabel lipgloss.Style
	statValue lipgloss.Style
	metaLabel lipgloss.Style
	metaValue lipgloss.Style
	link      lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := theme.PaletteFor(t)
	bg := theme.Color(p.Background)
	surface := theme.Color(p.Surface)

	return styles{
		app: lipgloss.NewStyle().
			Background(bg).
			Foreground(theme.Color(p.Text)).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(p.Text)),
		toggle: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(theme.Color(p.Toggle)).
			Foreground(theme.Color(p.ToggleText)),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(p.Accent)).
			Background(surface).
			Padding(0, 1),
		failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(p.Danger)),
		spinner: lipgloss.NewStyle().
			Foreground(theme.Color(p.Accent)),
		loading: lipgloss.NewStyle().
			Foreground(theme.Color(p.SubtleText)).
			Padding(1, 2),
		help: lipgloss.NewStyle().
			Foreground(theme.Color(p.Muted)).
			MarginTop(1),
		notice: lipgloss.NewStyle().
			Foreground(theme.Color(p.Danger)).
			Italic(true),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(p.Muted)).
			Background(surface).
			Padding(1, 2).
			MarginTop(1),
		name: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(p.Text)),
		login: lipgloss.NewStyle().
			Foreground(theme.Color(p.Accent)),
		joined: lipgloss.NewStyle().
			Foreground(theme.Color(p.SubtleText)),
		bio: lipgloss.NewStyle().
			Foreground(theme.Color(p.SubtleText)).
			MarginTop(1).
			MarginBottom(1),
		avatar: lipgloss.NewStyle().
			Foreground(theme.Color(p.Muted)).
			Italic(true),
		stats: lipgloss.NewStyle().
			Background(bg).
			Padding(0, 1).
			MarginBottom(1),
		statLabel: lipgloss.NewStyle().
			Foreground(theme.Color(p.SubtleText)).
			Width(12),
		statValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(p.Text)).
			Width(12),
		metaLabel: lipgloss.NewStyle().
			Foreground(theme.Color(p.Muted)).
			Width(10),
		metaValue: lipgloss.NewStyle().
			Foreground(theme.Color(p.Text)),
		link: lipgloss.NewStyle().
			Foreground(theme.Color(p.Accent)).
			Underline(true),
	}
}
