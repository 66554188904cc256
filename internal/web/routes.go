package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Mount registers the page routes on r.
func (h *Handler) Mount(r chi.Router) {
	r.Get(IndexRoute, Index(h))
	r.Post(ThemeRoute, ToggleTheme(h))
}

// Router returns a chi router carrying the standard middleware stack and
// every route.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(h.log))
	r.Use(middleware.Recoverer)
	h.Mount(r)
	return r
}
