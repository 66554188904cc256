// Package web serves the profile finder as a single HTML page. Each request
// drives its own lookup controller; the theme lives in a cookie session.
package web

import (
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/alexedwards/scs"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

const (
	IndexRoute = "/"
	ThemeRoute = "/theme"

	themeSessionKey = "theme"
	queryParam      = "q"
	returnParam     = "return"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options wires a Handler to its collaborators.
type Options struct {
	Fetcher      lookup.Fetcher
	Policy       lookup.CommitPolicy
	Seed         string
	DefaultTheme theme.Theme
	// SessionKey must be 32 bytes; an empty key is replaced by a random one,
	// which invalidates sessions on restart.
	SessionKey string
	Logger     *logger.Logger
}

type Handler struct {
	fetcher      lookup.Fetcher
	policy       lookup.CommitPolicy
	seed         string
	defaultTheme theme.Theme
	log          *logger.Logger

	SessionManager *scs.Manager
	page           *template.Template
}

// New builds a Handler and parses the embedded page template.
func New(opts Options) (*Handler, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("web: fetcher is required")
	}

	key := opts.SessionKey
	if key == "" {
		key = randomSessionKey()
	}
	if len(key) != 32 {
		return nil, errors.New("web: session key must be 32 bytes")
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Handler{
		fetcher:        opts.Fetcher,
		policy:         opts.Policy,
		seed:           opts.Seed,
		defaultTheme:   opts.DefaultTheme,
		log:            log,
		SessionManager: scs.NewCookieManager(key),
		page:           page,
	}, nil
}

func randomSessionKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
