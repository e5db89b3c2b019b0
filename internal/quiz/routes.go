package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/educahub/educahub-lambda/internal/auth"
)

// Routes is mounted at /videos/{videoID}/quiz.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetQuiz)
	r.Post("/submissions", h.Submit)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Put("/", h.SaveQuiz)
		r.Delete("/", h.DeleteQuiz)
		r.Get("/submissions", h.ListVideoSubmissions)
	})

	return r
}
