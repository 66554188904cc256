// Package tui is the terminal front end: a search field, the current lookup
// state and a theme toggle.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minCardWidth  = 40
	placeholder   = "Search GitHub username..."
)

// ThemeSaver persists a theme choice.
type ThemeSaver interface {
	SetTheme(theme.Theme) error
}

// Options wires the model to its collaborators.
type Options struct {
	Context    context.Context
	Controller *lookup.Controller
	Themes     *theme.Store
	// Saver is optional; when nil theme changes live only for the session.
	Saver  ThemeSaver
	Seed   string
	Logger *logger.Logger
}

// Model is the Bubbletea state for the profile finder.
type Model struct {
	ctx        context.Context
	controller *lookup.Controller
	themes     *theme.Store
	saver      ThemeSaver
	log        *logger.Logger

	input   textinput.Model
	spinner spinner.Model
	styles  styles

	seed   lookup.Ticket
	state  lookup.State
	notice string

	width  int
	height int
}

// NewModel creates the model and starts the seed lookup. The lookup is
// resolved by the command returned from Init.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewStore(theme.Default)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		controller: opts.Controller,
		themes:     themes,
		saver:      opts.Saver,
		log:        log,
		input:      input,
		spinner:    s,
		styles:     newStyles(themes.Current()),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.spinner.Style = m.styles.spinner

	m.seed = m.controller.Begin(opts.Seed)
	m.state = m.controller.Snapshot()
	return m
}

// Init starts the cursor blink, the spinner and the seed lookup.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
	}
	if !m.seed.Rejected {
		cmds = append(cmds, m.spinner.Tick, runLookupCmd(m.ctx, m.controller, m.seed))
	}
	return tea.Batch(cmds...)
}

// State returns the lookup state the model last rendered from.
func (m Model) State() lookup.State {
	return m.state
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.themes.Current()
}

func (m *Model) applyTheme(t theme.Theme) {
	m.styles = newStyles(t)
	m.spinner.Style = m.styles.spinner
}
