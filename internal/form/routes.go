package form

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/educahub/educahub-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListForms)
	r.Post("/{id}/submissions", h.SubmitPDF)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Post("/", h.CreateForm)
		r.Put("/{id}", h.UpdateForm)
		r.Delete("/{id}", h.DeleteForm)
		r.Get("/{id}/submissions", h.ListFormSubmissions)
	})

	return r
}
