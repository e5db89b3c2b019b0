package form

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateForm(f *Form) error
	FindForms(onlyActive bool) ([]Form, error)
	FindFormByID(id uuid.UUID) (*Form, error)
	UpdateForm(f *Form) error
	DeleteForm(id uuid.UUID) error

	CreateSubmission(s *Submission) error
	FindSubmissionByID(id uuid.UUID) (*Submission, error)
	FindSubmissionsByForm(formID uuid.UUID) ([]Submission, error)
	FindSubmissionsByUser(userID uuid.UUID) ([]Submission, error)
	FindSubmissionsByStatus(status SubmissionStatus) ([]Submission, error)
	UpdateSubmission(s *Submission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateForm(f *Form) error {
	return r.db.Create(f).Error
}

func (r *repository) FindForms(onlyActive bool) ([]Form, error) {
	var forms []Form
	q := r.db.Order("created_at DESC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *repository) FindFormByID(id uuid.UUID) (*Form, error) {
	var f Form
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) UpdateForm(f *Form) error {
	return r.db.Save(f).Error
}

func (r *repository) DeleteForm(id uuid.UUID) error {
	return r.db.Delete(&Form{}, "id = ?", id).Error
}

func (r *repository) CreateSubmission(s *Submission) error {
	return r.db.Create(s).Error
}

func (r *repository) FindSubmissionByID(id uuid.UUID) (*Submission, error) {
	var s Submission
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindSubmissionsByForm(formID uuid.UUID) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *repository) FindSubmissionsByUser(userID uuid.UUID) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *repository) FindSubmissionsByStatus(status SubmissionStatus) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *repository) UpdateSubmission(s *Submission) error {
	return r.db.Save(s).Error
}
