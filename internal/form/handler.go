package form

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/config"
)

const maxPDFBytes = 20 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	f, err := h.service.CreateForm(r.Context(), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to create form")
		return
	}

	config.JSON(w, http.StatusCreated, f)
}

func (h *Handler) ListForms(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	// Admins also see deactivated forms.
	includeInactive := false
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		includeInactive = claims.Role == auth.RoleAdmin
	}

	forms, err := h.service.ListForms(r.Context(), includeInactive)
	if err != nil {
		log.WithError(err).Error("Failed to list forms")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, forms)
}

func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	f, err := h.service.UpdateForm(r.Context(), id, dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to update form")
		return
	}

	config.JSON(w, http.StatusOK, f)
}

func (h *Handler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteForm(r.Context(), id); err != nil {
		h.writeError(w, log, err, "Failed to delete form")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitPDF(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/pdf") {
		http.Error(w, "content type must be application/pdf", http.StatusUnsupportedMediaType)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxPDFBytes)
	submission, err := h.service.SubmitPDF(r.Context(), id, body)
	if err != nil {
		h.writeError(w, log, err, "Failed to submit form")
		return
	}

	config.JSON(w, http.StatusCreated, submission)
}

func (h *Handler) ListFormSubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	submissions, err := h.service.ListFormSubmissions(r.Context(), id)
	if err != nil {
		h.writeError(w, log, err, "Failed to list form submissions")
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func (h *Handler) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	submissions, err := h.service.ListMySubmissions(r.Context())
	if err != nil {
		h.writeError(w, log, err, "Failed to list user submissions")
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	submissions, err := h.service.ListPending(r.Context())
	if err != nil {
		h.writeError(w, log, err, "Failed to list pending submissions")
		return
	}

	config.JSON(w, http.StatusOK, submissions)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var dto ReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	submission, err := h.service.Review(r.Context(), id, dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to review submission")
		return
	}

	config.JSON(w, http.StatusOK, submission)
}

func (h *Handler) writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrFormNotFound):
		http.Error(w, "form not found", http.StatusNotFound)
	case errors.Is(err, ErrSubmissionNotFound):
		http.Error(w, "submission not found", http.StatusNotFound)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidReview):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrFormInactive), errors.Is(err, ErrAlreadyReviewed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
