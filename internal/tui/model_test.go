package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
	apperrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

type fetcherFunc func(ctx context.Context, login string) (*profile.Profile, error)

func (f fetcherFunc) FetchUser(ctx context.Context, login string) (*profile.Profile, error) {
	return f(ctx, login)
}

func profileFetcher() fetcherFunc {
	return func(_ context.Context, login string) (*profile.Profile, error) {
		if login == "ghost" {
			return nil, apperrors.NewLookupError(login, 404, nil)
		}
		repos := 5
		l := login
		return &profile.Profile{Login: &l, PublicRepos: &repos}, nil
	}
}

type recordingSaver struct {
	saved []theme.Theme
	err   error
}

func (r *recordingSaver) SetTheme(t theme.Theme) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, t)
	return nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Controller == nil {
		opts.Controller = lookup.NewController(profileFetcher(), lookup.Options{})
	}
	if opts.Seed == "" {
		opts.Seed = "octocat"
	}
	return NewModel(opts)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func TestNewModelStartsSeedLookup(t *testing.T) {
	m := newTestModel(t, Options{})

	state := m.State()
	require.Equal(t, lookup.StatusLoading, state.Status)
	require.Equal(t, "octocat", state.Query)
	require.False(t, m.seed.Rejected)
	require.NotNil(t, m.Init())
}

func TestSeedLookupResolvesThroughCommand(t *testing.T) {
	m := newTestModel(t, Options{})

	msg := runLookupCmd(context.Background(), m.controller, m.seed)()
	resolved, ok := msg.(LookupResolvedMsg)
	require.True(t, ok)
	require.Equal(t, m.seed.Seq, resolved.Seq)

	updated, cmd := m.Update(resolved)
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, lookup.StatusSuccess, m.State().Status)
	require.Equal(t, "octocat", m.State().Profile.LoginOrEmpty())
}

func TestEnterSubmitsTrimmedQuery(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "  torvalds  ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.Equal(t, lookup.StatusLoading, m.State().Status)
	require.Equal(t, "torvalds", m.State().Query)
}

func TestEnterWithBlankInputFailsWithoutCommand(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, lookup.StatusFailure, m.State().Status)
	require.ErrorIs(t, m.State().Err, apperrors.ErrEmptyQuery)
}

func TestStaleSeedResolutionDoesNotReplaceNewerLookup(t *testing.T) {
	m := newTestModel(t, Options{})
	seed := m.seed

	m = typeText(t, m, "torvalds")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	msg := runLookupCmd(context.Background(), m.controller, seed)()
	updated, _ = m.Update(msg)
	m = updated.(Model)

	require.Equal(t, lookup.StatusLoading, m.State().Status)
	require.Equal(t, "torvalds", m.State().Query)
}

func TestCtrlTTogglesThemeAndPersists(t *testing.T) {
	saver := &recordingSaver{}
	m := newTestModel(t, Options{Themes: theme.NewStore(theme.Light), Saver: saver})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	require.Equal(t, theme.Dark, m.Theme())
	require.NotNil(t, cmd)

	msg := cmd()
	require.Equal(t, ThemeSavedMsg{Theme: theme.Dark}, msg)
	require.Equal(t, []theme.Theme{theme.Dark}, saver.saved)
}

func TestCtrlTWithoutSaverStaysInSession(t *testing.T) {
	m := newTestModel(t, Options{Themes: theme.NewStore(theme.Dark)})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Nil(t, cmd)
	require.Equal(t, theme.Light, updated.(Model).Theme())
}

func TestThemeSaveFailureShowsNotice(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	m := newTestModel(t, Options{Saver: saver})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	require.Contains(t, m.View(), "disk full")
}

func TestEscClearsInput(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "torvalds")
	require.Equal(t, "torvalds", m.input.Value())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, updated.(Model).input.Value())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeIsTracked(t *testing.T) {
	m := newTestModel(t, Options{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}
