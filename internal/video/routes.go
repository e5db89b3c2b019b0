package video

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/educahub/educahub-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListVideos)
	r.Get("/{id}", h.GetVideo)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Post("/", h.CreateVideo)
		r.Put("/{id}", h.UpdateVideo)
		r.Delete("/{id}", h.DeleteVideo)
		r.Post("/{id}/move", h.MoveVideo)
		r.Post("/{id}/thumbnail", h.UploadThumbnail)
	})

	return r
}
