package genrun

import (
	"net/http"

	"github.com/btw-edu/pembahasan-lambda/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.StartRun)
	r.Get("/", h.ListRuns)
	r.Get("/{id}", h.GetRun)
	return r
}
