// Package profile holds the GitHub user record returned by a lookup and the
// fallback-filled card that every renderer displays.
package profile

import (
	"encoding/json"
	"fmt"
	"io"
)

// Profile is the subset of the GitHub user document devfinder consumes.
// Every field may be absent in the response.
type Profile struct {
	Login           *string `json:"login,omitempty"`
	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Location        *string `json:"location,omitempty"`
	Blog            *string `json:"blog,omitempty"`
	Company         *string `json:"company,omitempty"`
	TwitterUsername *string `json:"twitter_username,omitempty"`
	// CreatedAt stays raw so an empty or odd timestamp cannot fail decoding.
	CreatedAt       *string `json:"created_at,omitempty"`
	PublicRepos     *int    `json:"public_repos,omitempty"`
	Followers       *int    `json:"followers,omitempty"`
	Following       *int    `json:"following,omitempty"`
}

// Decode reads a single JSON user document.
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// LoginOrEmpty returns the login reported by the API, or "" when missing.
func (p *Profile) LoginOrEmpty() string {
	if p == nil || p.Login == nil {
		return ""
	}
	return *p.Login
}
