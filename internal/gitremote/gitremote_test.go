package gitremote

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://github.com/octocat/Hello-World.git", want: "octocat"},
		{url: "https://github.com/octocat/Hello-World", want: "octocat"},
		{url: "ssh://git@github.com/mona/repo.git", want: "mona"},
		{url: "git@github.com:torvalds/linux.git", want: "torvalds"},
		{url: "github.com:someone/thing", want: "someone"},
		{url: "https://www.GitHub.com/Upper/x", want: "Upper"},
		{url: "https://gitlab.com/octocat/x.git", wantErr: true},
		{url: "https://github.com/", wantErr: true},
		{url: "/local/path/repo", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			got, err := OwnerFromURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerFromURLRejectsOtherHosts(t *testing.T) {
	t.Parallel()

	_, err := OwnerFromURL("git@bitbucket.org:team/repo.git")
	assert.ErrorIs(t, err, ErrNotGitHub)
}

func initRepo(t *testing.T, remoteURL string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: DefaultRemote, URLs: []string{remoteURL}})
		require.NoError(t, err)
	}
	return dir
}

func TestOwnerFromRepoDetectsParentRepository(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, "git@github.com:octocat/devfinder.git")
	nested := filepath.Join(dir, "internal", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	owner, err := OwnerFromRepo(nested, "")
	require.NoError(t, err)
	assert.Equal(t, "octocat", owner)
}

func TestOwnerFromRepoWithoutRemote(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, "")
	_, err := OwnerFromRepo(dir, DefaultRemote)
	require.Error(t, err)
	assert.ErrorIs(t, err, git.ErrRemoteNotFound)
}

func TestOwnerFromRepoOutsideRepository(t *testing.T) {
	t.Parallel()

	_, err := OwnerFromRepo(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
