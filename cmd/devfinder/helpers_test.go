package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGitHub serves /users/{login} for the logins in users and 404 for the
// rest, recording every requested login.
type fakeGitHub struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFakeGitHub(t *testing.T, users map[string]string) *fakeGitHub {
	t.Helper()

	f := &fakeGitHub{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login := strings.TrimPrefix(r.URL.Path, "/users/")
		f.mu.Lock()
		f.requests = append(f.requests, login)
		f.mu.Unlock()

		body, ok := users[login]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeGitHub) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func writeConfig(t *testing.T, baseURL string, extra string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := fmt.Sprintf("api:\n  base_url: %s\nlookup:\n  seed: octocat\n%s", baseURL, extra)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
