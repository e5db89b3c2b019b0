package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/storage"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrInvalidTitle  = errors.New("title is required")
	ErrInvalidURL    = errors.New("url is required")
)

type VideoService interface {
	Create(ctx context.Context, dto CreateVideoDTO) (*Video, error)
	ListAll(ctx context.Context) ([]Video, error)
	ListBucket(ctx context.Context, category *string) ([]Video, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Video, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateVideoDTO) (*Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Move(ctx context.Context, id uuid.UUID, direction Direction) (bool, error)
	UploadThumbnail(ctx context.Context, id uuid.UUID, contentType string, body io.Reader) (*Video, error)
}

type videoService struct {
	repo  VideoRepository
	blobs storage.BlobStore
}

func NewService(repo VideoRepository, blobs storage.BlobStore) VideoService {
	return &videoService{repo: repo, blobs: blobs}
}

func (s *videoService) Create(ctx context.Context, dto CreateVideoDTO) (*Video, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if strings.TrimSpace(dto.URL) == "" {
		return nil, ErrInvalidURL
	}

	all, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	bucket := InBucket(all, dto.Category)

	v := &Video{
		ID:              uuid.New(),
		Title:           dto.Title,
		Description:     dto.Description,
		URL:             dto.URL,
		ThumbnailURL:    dto.ThumbnailURL,
		DurationSeconds: dto.DurationSeconds,
		Category:        dto.Category,
		SortOrder:       NextSortOrder(bucket),
	}

	if err := s.repo.Create(v); err != nil {
		log.WithError(err).Error("Failed to create video")
		return nil, err
	}
	return v, nil
}

func (s *videoService) ListAll(ctx context.Context) ([]Video, error) {
	return s.repo.FindAll()
}

func (s *videoService) ListBucket(ctx context.Context, category *string) ([]Video, error) {
	all, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return InBucket(all, category), nil
}

func (s *videoService) FindByID(ctx context.Context, id uuid.UUID) (*Video, error) {
	v, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVideoNotFound
	}
	return v, nil
}

func (s *videoService) Update(ctx context.Context, id uuid.UUID, dto UpdateVideoDTO) (*Video, error) {
	log := config.WithContext(ctx)

	v, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrInvalidTitle
		}
		v.Title = *dto.Title
	}
	if dto.Description != nil {
		v.Description = *dto.Description
	}
	if dto.URL != nil {
		if strings.TrimSpace(*dto.URL) == "" {
			return nil, ErrInvalidURL
		}
		v.URL = *dto.URL
	}
	if dto.ThumbnailURL != nil {
		v.ThumbnailURL = *dto.ThumbnailURL
	}
	if dto.DurationSeconds != nil {
		v.DurationSeconds = *dto.DurationSeconds
	}

	if dto.Category != nil || dto.ClearCategory {
		target := dto.Category
		if dto.ClearCategory {
			target = nil
		}
		if !sameBucket(v.Category, target) {
			// A video changing bucket joins the end of the target bucket.
			all, err := s.repo.FindAll()
			if err != nil {
				return nil, err
			}
			v.Category = target
			v.SortOrder = NextSortOrder(InBucket(all, target))
		}
	}

	if err := s.repo.Update(v); err != nil {
		log.WithError(err).Error("Failed to update video")
		return nil, err
	}
	return v, nil
}

func (s *videoService) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete video")
		return err
	}
	return nil
}

// Move shifts a video one position inside its bucket. A move past the edge
// of the bucket, or for a video that is not in the fetched snapshot, returns
// moved=false with no error.
func (s *videoService) Move(ctx context.Context, id uuid.UUID, direction Direction) (bool, error) {
	log := config.WithContext(ctx)

	v, err := s.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	all, err := s.repo.FindAll()
	if err != nil {
		return false, err
	}
	bucket := InBucket(all, v.Category)

	plan, ok := PlanMove(bucket, id, direction)
	if !ok {
		return false, nil
	}

	if err := s.repo.SwapOrder(plan.A, plan.B); err != nil {
		log.WithError(err).Error("Failed to persist reorder swap")
		return false, err
	}
	return true, nil
}

func (s *videoService) UploadThumbnail(ctx context.Context, id uuid.UUID, contentType string, body io.Reader) (*Video, error) {
	log := config.WithContext(ctx)

	v, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("thumbnails/%s%s", v.ID, extForContentType(contentType))
	url, err := s.blobs.Put(ctx, key, contentType, body)
	if err != nil {
		log.WithError(err).Error("Failed to store thumbnail")
		return nil, err
	}

	v.ThumbnailURL = url
	if err := s.repo.Update(v); err != nil {
		return nil, err
	}
	return v, nil
}

func extForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
