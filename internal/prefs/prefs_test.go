package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store, err := Open(path)
	require.NoError(t, err)

	_, ok := store.Theme()
	assert.False(t, ok)
	assert.DirExists(t, filepath.Dir(path))
}

func TestSetThemeRoundTripsThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetTheme(theme.Dark))

	assert.NoFileExists(t, path+".tmp")

	reopened, err := Open(path)
	require.NoError(t, err)
	got, ok := reopened.Theme()
	require.True(t, ok)
	assert.Equal(t, theme.Dark, got)
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse preferences")
}

func TestUnknownStoredThemeIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","theme":"sepia"}`), 0o644))

	store, err := Open(path)
	require.NoError(t, err)
	_, ok := store.Theme()
	assert.False(t, ok)
}
