// Package gitremote derives a GitHub username from a local checkout so the
// first lookup can show the owner of the repository being worked on.
package gitremote

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote consulted when none is named.
const DefaultRemote = "origin"

var (
	// ErrNotGitHub is returned when the remote does not point at github.com.
	ErrNotGitHub = errors.New("remote is not hosted on github.com")

	scpLikePattern = regexp.MustCompile(`^(?:[A-Za-z0-9._-]+@)?([A-Za-z0-9.-]+):(.+)$`)
)

// OwnerFromRepo opens the repository containing path and returns the GitHub
// owner of its remote.
func OwnerFromRepo(path, remoteName string) (string, error) {
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository %s: %w", path, err)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("read remote %q: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no url", remoteName)
	}
	return OwnerFromURL(urls[0])
}

// OwnerFromURL extracts the owner segment from an https, ssh or scp-style
// GitHub remote URL.
func OwnerFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	var host, path string
	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("parse remote url: %w", err)
		}
		host = parsed.Hostname()
		path = parsed.Path
	} else if m := scpLikePattern.FindStringSubmatch(raw); m != nil {
		host, path = m[1], m[2]
	} else {
		return "", fmt.Errorf("unrecognised remote url %q", raw)
	}

	host = strings.ToLower(host)
	if host != "github.com" && host != "www.github.com" {
		return "", fmt.Errorf("%w: %s", ErrNotGitHub, host)
	}

	owner := strings.SplitN(strings.Trim(path, "/"), "/", 2)[0]
	if owner == "" {
		return "", fmt.Errorf("remote url %q has no owner", raw)
	}
	return owner, nil
}
