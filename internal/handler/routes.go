package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the host endpoints behind rl. Recoverer sits outside rl so a
// panic is logged as a failed request before it is turned into a 500.
func NewRouter(rl *RequestLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(rl.Handler)

	r.Get("/health", Health)
	r.Get("/echo", HandleErrors(Echo))

	return r
}
