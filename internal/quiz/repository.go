package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	GetByVideoID(videoID uuid.UUID) (*Quiz, error)
	Replace(q *Quiz) error
	DeleteByVideoID(videoID uuid.UUID) error

	CreateSubmission(s *Submission) error
	ListSubmissionsByUser(userID uuid.UUID) ([]Submission, error)
	ListSubmissionsByVideo(videoID uuid.UUID) ([]Submission, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) GetByVideoID(videoID uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&q, "video_id = ?", videoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// Replace swaps the whole quiz document for a video in one transaction:
// the previous quiz (and its questions, by cascade) goes away and the new
// one is inserted.
func (r *quizRepository) Replace(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Quiz{}, "video_id = ?", q.VideoID).Error; err != nil {
			return err
		}
		return tx.Create(q).Error
	})
}

func (r *quizRepository) DeleteByVideoID(videoID uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "video_id = ?", videoID).Error
}

func (r *quizRepository) CreateSubmission(s *Submission) error {
	return r.db.Create(s).Error
}

func (r *quizRepository) ListSubmissionsByUser(userID uuid.UUID) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *quizRepository) ListSubmissionsByVideo(videoID uuid.UUID) ([]Submission, error) {
	var submissions []Submission
	if err := r.db.
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
