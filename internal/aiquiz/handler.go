package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/video"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar perguntas")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.VideoID == uuid.Nil {
		http.Error(w, "video_id required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GenerateForVideo(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, video.ErrVideoNotFound):
			http.Error(w, "video not found", http.StatusNotFound)
		case errors.Is(err, ErrProviderUnavailable):
			http.Error(w, "ai provider unavailable", http.StatusServiceUnavailable)
		default:
			log.WithError(err).Error("Erro ao gerar perguntas com IA")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
