package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/educahub/educahub-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
