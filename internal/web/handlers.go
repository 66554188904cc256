package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/profile"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

type pageData struct {
	Theme       string
	ToggleLabel string
	Palette     theme.Palette
	Query       string
	Failed      bool
	Message     string
	Card        profile.Card
	Return      string
}

// Index renders the page for ?q=, or for the seed when q is absent. An
// empty q is a submitted blank search and renders the failure state.
func Index(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		query := h.seed
		if values.Has(queryParam) {
			query = values.Get(queryParam)
		}

		log := h.log.WithFields(map[string]any{"request_id": middleware.GetReqID(r.Context())})
		controller := lookup.NewController(h.fetcher, lookup.Options{Policy: h.policy, Logger: log})
		ticket := controller.Begin(query)
		state := controller.Run(r.Context(), ticket)

		t := h.sessionTheme(r)
		data := pageData{
			Theme:       t.String(),
			ToggleLabel: t.Label(),
			Palette:     theme.PaletteFor(t),
			Query:       state.Query,
			Return:      r.URL.RequestURI(),
		}
		if state.Status == lookup.StatusSuccess {
			data.Card = profile.NewCard(state.Profile)
		} else {
			data.Failed = true
			data.Message = lookup.FailureMessage
			data.Card = profile.NewCard(nil)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.page.Execute(w, data); err != nil {
			log.Error(err, "render page")
		}
	}
}

// ToggleTheme flips the session theme and redirects back to the page the
// form was posted from.
func ToggleTheme(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		store := theme.NewStore(h.sessionTheme(r))
		next := store.Toggle()

		session := h.SessionManager.Load(r)
		if err := session.PutString(w, themeSessionKey, next.String()); err != nil {
			h.log.Error(err, "store session theme")
			http.Error(w, "could not store theme", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, safeReturn(r.Form.Get(returnParam)), http.StatusSeeOther)
	}
}

func (h *Handler) sessionTheme(r *http.Request) theme.Theme {
	session := h.SessionManager.Load(r)
	value, err := session.GetString(themeSessionKey)
	if err != nil || value == "" {
		return h.defaultTheme
	}
	t, err := theme.ParseTheme(value)
	if err != nil {
		return h.defaultTheme
	}
	return t
}

// safeReturn only allows same-site paths.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return IndexRoute
	}
	return target
}
