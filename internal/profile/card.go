package profile

import (
	"strings"
	"time"
)

const (
	DefaultAvatarURL = "https://github.com/octocat.png"
	DefaultLogin     = "octocat"
	DefaultName      = "The Octocat"
	DefaultJoined    = "N/A"
	DefaultBio       = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Donec odio. Quisque volutpat mattis eros."
	DefaultLocation  = "San Francisco"
	DefaultBlog      = "https://github.blog"
	DefaultTwitter   = "Twitter"
	DefaultCompany   = "GitHub"

	joinedLayout = "02 Jan 2006"
)

// Card is a profile with every display field resolved. No text field is
// ever empty; BlogURL is set only when the profile carries a blog.
type Card struct {
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	Joined    string `json:"joined"`
	Bio       string `json:"bio"`
	Repos     int    `json:"public_repos"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Location  string `json:"location"`
	Blog      string `json:"blog"`
	BlogURL   string `json:"blog_url,omitempty"`
	Twitter   string `json:"twitter"`
	Company   string `json:"company"`
}

// NewCard resolves p into a Card. A nil profile yields the all-fallback card.
func NewCard(p *Profile) Card {
	if p == nil {
		p = &Profile{}
	}

	card := Card{
		AvatarURL: text(p.AvatarURL, DefaultAvatarURL),
		Name:      text(p.Name, DefaultName),
		Login:     text(p.Login, DefaultLogin),
		Joined:    DefaultJoined,
		Bio:       text(p.Bio, DefaultBio),
		Repos:     count(p.PublicRepos),
		Followers: count(p.Followers),
		Following: count(p.Following),
		Location:  text(p.Location, DefaultLocation),
		Blog:      DefaultBlog,
		Twitter:   DefaultTwitter,
		Company:   text(p.Company, DefaultCompany),
	}

	if joined, ok := joinedDate(p.CreatedAt); ok {
		card.Joined = joined
	}
	if blog := text(p.Blog, ""); blog != "" {
		card.Blog = blog
		card.BlogURL = blogHref(blog)
	}
	if handle := text(p.TwitterUsername, ""); handle != "" {
		card.Twitter = "@" + handle
	}

	return card
}

// joinedDate formats created_at in local time. Empty or unparseable values
// count as missing.
func joinedDate(value *string) (string, bool) {
	raw := text(value, "")
	if raw == "" {
		return "", false
	}
	created, err := time.Parse(time.RFC3339, raw)
	if err != nil || created.IsZero() {
		return "", false
	}
	return created.Local().Format(joinedLayout), true
}

func blogHref(blog string) string {
	if strings.HasPrefix(blog, "http") {
		return blog
	}
	return "https://" + blog
}

func text(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func count(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
