package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/video"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidName      = errors.New("category name is required")
	ErrDuplicateName    = errors.New("category already exists")
)

type Service interface {
	Create(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	videoRepo video.VideoRepository
}

func NewService(repo Repository, videoRepo video.VideoRepository) Service {
	return &service{repo: repo, videoRepo: videoRepo}
}

func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	log := config.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	existing, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	c := &Category{ID: uuid.New(), Name: name}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Failed to create category")
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.FindAll()
}

// Delete removes the category and moves its videos to the uncategorized
// bucket; their relative order is kept.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	c, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCategoryNotFound
	}

	if err := s.videoRepo.ClearCategory(c.Name); err != nil {
		log.WithError(err).Error("Failed to detach videos from category")
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete category")
		return err
	}
	return nil
}
