// Package github fetches public user profiles from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	apperrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

// DefaultBaseURL is the public GitHub API host.
const DefaultBaseURL = "https://api.github.com"

// HTTPClient is the subset of *http.Client the client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout bounds a single request. Zero means no bound.
	Timeout time.Duration
}

// Client looks up users with unauthenticated GET /users/{login} requests.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient HTTPClient
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg Config, httpClient HTTPClient) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    cfg.Timeout,
		httpClient: httpClient,
	}
}

// FetchUser retrieves the profile for login. Every failure is reported as a
// *errors.LookupError.
func (c *Client) FetchUser(ctx context.Context, login string) (*profile.Profile, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(login))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewLookupError(login, 0, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewLookupError(login, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NewLookupError(login, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	p, err := profile.Decode(resp.Body)
	if err != nil {
		return nil, apperrors.NewLookupError(login, 0, err)
	}
	return p, nil
}
