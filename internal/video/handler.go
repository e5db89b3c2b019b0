package video

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/educahub/educahub-lambda/internal/config"
)

const maxThumbnailBytes = 10 << 20

type Handler struct {
	service VideoService
}

func NewHandler(service VideoService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var (
		videos []Video
		err    error
	)
	if r.URL.Query().Has("category") {
		// An empty category value selects the uncategorized bucket.
		var category *string
		if name := r.URL.Query().Get("category"); name != "" {
			category = &name
		}
		videos, err = h.service.ListBucket(r.Context(), category)
	} else {
		videos, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		log.WithError(err).Error("Failed to list videos")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, videos)
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	v, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, log, err, "Failed to fetch video")
		return
	}

	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateVideoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	v, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to create video")
		return
	}

	config.JSON(w, http.StatusCreated, v)
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var dto UpdateVideoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	v, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to update video")
		return
	}

	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, log, err, "Failed to delete video")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MoveVideo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var dto MoveVideoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Direction != DirectionUp && dto.Direction != DirectionDown {
		http.Error(w, "direction must be \"up\" or \"down\"", http.StatusBadRequest)
		return
	}

	moved, err := h.service.Move(r.Context(), id, dto.Direction)
	if err != nil {
		h.writeError(w, log, err, "Failed to move video")
		return
	}

	config.JSON(w, http.StatusOK, MoveVideoResponse{Moved: moved})
}

func (h *Handler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		http.Error(w, "content type required", http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxThumbnailBytes)
	v, err := h.service.UploadThumbnail(r.Context(), id, contentType, body)
	if err != nil {
		h.writeError(w, log, err, "Failed to upload thumbnail")
		return
	}

	config.JSON(w, http.StatusOK, v)
}

func (h *Handler) writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrVideoNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidURL):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func idFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "video id required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
