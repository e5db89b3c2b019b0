package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/storage"
)

var (
	ErrFormNotFound       = errors.New("form not found")
	ErrFormInactive       = errors.New("form is not accepting submissions")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidTitle       = errors.New("title is required")
	ErrInvalidReview      = errors.New("review status must be APPROVED or REJECTED")
	ErrAlreadyReviewed    = errors.New("submission was already reviewed")
	ErrUnauthorized       = errors.New("unauthorized")
)

type Service interface {
	CreateForm(ctx context.Context, dto CreateFormDTO) (*Form, error)
	ListForms(ctx context.Context, includeInactive bool) ([]Form, error)
	UpdateForm(ctx context.Context, id uuid.UUID, dto UpdateFormDTO) (*Form, error)
	DeleteForm(ctx context.Context, id uuid.UUID) error

	SubmitPDF(ctx context.Context, formID uuid.UUID, body io.Reader) (*Submission, error)
	ListFormSubmissions(ctx context.Context, formID uuid.UUID) ([]Submission, error)
	ListMySubmissions(ctx context.Context) ([]Submission, error)
	ListPending(ctx context.Context) ([]Submission, error)
	Review(ctx context.Context, submissionID uuid.UUID, dto ReviewDTO) (*Submission, error)
}

type service struct {
	repo  Repository
	blobs storage.BlobStore
}

func NewService(repo Repository, blobs storage.BlobStore) Service {
	return &service{repo: repo, blobs: blobs}
}

func (s *service) CreateForm(ctx context.Context, dto CreateFormDTO) (*Form, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrInvalidTitle
	}

	f := &Form{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		TemplateURL: dto.TemplateURL,
		Active:      true,
	}
	if err := s.repo.CreateForm(f); err != nil {
		log.WithError(err).Error("Failed to create form")
		return nil, err
	}
	return f, nil
}

func (s *service) ListForms(ctx context.Context, includeInactive bool) ([]Form, error) {
	return s.repo.FindForms(!includeInactive)
}

func (s *service) UpdateForm(ctx context.Context, id uuid.UUID, dto UpdateFormDTO) (*Form, error) {
	log := config.WithContext(ctx)

	f, err := s.findForm(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrInvalidTitle
		}
		f.Title = *dto.Title
	}
	if dto.Description != nil {
		f.Description = *dto.Description
	}
	if dto.TemplateURL != nil {
		f.TemplateURL = *dto.TemplateURL
	}
	if dto.Active != nil {
		f.Active = *dto.Active
	}

	if err := s.repo.UpdateForm(f); err != nil {
		log.WithError(err).Error("Failed to update form")
		return nil, err
	}
	return f, nil
}

func (s *service) DeleteForm(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.findForm(id); err != nil {
		return err
	}
	if err := s.repo.DeleteForm(id); err != nil {
		log.WithError(err).Error("Failed to delete form")
		return err
	}
	return nil
}

// SubmitPDF stores the filled PDF (generated client-side) and opens a
// pending submission for review.
func (s *service) SubmitPDF(ctx context.Context, formID uuid.UUID, body io.Reader) (*Submission, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if !f.Active {
		return nil, ErrFormInactive
	}

	submissionID := uuid.New()
	key := fmt.Sprintf("forms/%s/%s.pdf", formID, submissionID)
	url, err := s.blobs.Put(ctx, key, "application/pdf", body)
	if err != nil {
		log.WithError(err).Error("Failed to store submission PDF")
		return nil, err
	}

	submission := &Submission{
		ID:     submissionID,
		FormID: formID,
		UserID: userID,
		PDFURL: url,
		Status: SubmissionStatusPending,
	}
	if err := s.repo.CreateSubmission(submission); err != nil {
		log.WithError(err).Error("Failed to record form submission")
		return nil, err
	}

	log.Info("Form submission received", "form_id", formID.String(), "submission_id", submissionID.String())
	return submission, nil
}

func (s *service) ListFormSubmissions(ctx context.Context, formID uuid.UUID) ([]Submission, error) {
	if _, err := s.findForm(formID); err != nil {
		return nil, err
	}
	return s.repo.FindSubmissionsByForm(formID)
}

func (s *service) ListMySubmissions(ctx context.Context) ([]Submission, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindSubmissionsByUser(userID)
}

func (s *service) ListPending(ctx context.Context) ([]Submission, error) {
	return s.repo.FindSubmissionsByStatus(SubmissionStatusPending)
}

func (s *service) Review(ctx context.Context, submissionID uuid.UUID, dto ReviewDTO) (*Submission, error) {
	log := config.WithContext(ctx)

	if dto.Status != SubmissionStatusApproved && dto.Status != SubmissionStatusRejected {
		return nil, ErrInvalidReview
	}

	reviewerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submission, err := s.repo.FindSubmissionByID(submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}
	if submission.Status != SubmissionStatusPending {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	submission.Status = dto.Status
	submission.ReviewNote = dto.Note
	submission.ReviewedBy = &reviewerID
	submission.ReviewedAt = &now

	if err := s.repo.UpdateSubmission(submission); err != nil {
		log.WithError(err).Error("Failed to review submission")
		return nil, err
	}

	log.Info("Submission reviewed", "submission_id", submissionID.String(), "status", string(dto.Status))
	return submission, nil
}

func (s *service) findForm(id uuid.UUID) (*Form, error) {
	f, err := s.repo.FindFormByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFormNotFound
	}
	return f, nil
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
