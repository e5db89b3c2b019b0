package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/video"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SaveQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	videoID, ok := videoIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto SaveQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para salvar quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	for i, draft := range dto.Questions {
		if draft.Kind != KindMultipleChoice && draft.Kind != KindFreeText {
			http.Error(w, fmt.Sprintf("question %d: unknown kind", i), http.StatusBadRequest)
			return
		}
		if draft.Kind == KindMultipleChoice {
			if len(draft.Options) > MaxOptions {
				http.Error(w, fmt.Sprintf("question %d: at most %d options", i, MaxOptions), http.StatusBadRequest)
				return
			}
			if draft.CorrectIndex < 0 || draft.CorrectIndex >= len(draft.Options) {
				http.Error(w, fmt.Sprintf("question %d: correct_index out of range", i), http.StatusBadRequest)
				return
			}
		}
	}

	q, err := h.service.SaveQuiz(r.Context(), videoID, dto)
	if err != nil {
		switch {
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, video.ErrVideoNotFound):
			http.Error(w, "video not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Erro ao salvar quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	videoID, ok := videoIDFromRequest(w, r)
	if !ok {
		return
	}

	q, err := h.service.GetQuiz(r.Context(), videoID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Only the editor role sees the correct answers.
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err == nil && claims.Role == auth.RoleAdmin {
		config.JSON(w, http.StatusOK, q)
		return
	}
	config.JSON(w, http.StatusOK, toView(q))
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	videoID, ok := videoIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), videoID); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao deletar quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	videoID, ok := videoIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para enviar respostas")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Answers == nil {
		dto.Answers = AnswerSet{}
	}

	submission, err := h.service.Submit(r.Context(), videoID, dto.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Erro ao registrar tentativa")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, submission)
}

func (h *Handler) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	submissions, err := h.service.ListMySubmissions(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Erro ao listar tentativas do usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func (h *Handler) ListVideoSubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	videoID, ok := videoIDFromRequest(w, r)
	if !ok {
		return
	}

	submissions, err := h.service.ListVideoSubmissions(r.Context(), videoID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas do vídeo")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrEmptyQuestionText) ||
		errors.Is(err, ErrTooFewOptions) ||
		errors.Is(err, ErrEmptyOption) ||
		errors.Is(err, ErrEmptyCorrectAnswer) ||
		errors.Is(err, ErrNoQuestions) ||
		errors.Is(err, ErrInvalidPassingScore)
}

func videoIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "videoID")
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
