package aiquiz

import (
	"context"
	"errors"

	"github.com/educahub/educahub-lambda/internal/video"
)

var ErrProviderUnavailable = errors.New("ai provider is not configured")

type Service interface {
	GenerateForVideo(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider  Provider
	videoRepo video.VideoRepository
}

func NewService(provider Provider, videoRepo video.VideoRepository) Service {
	return &service{provider: provider, videoRepo: videoRepo}
}

func (s *service) GenerateForVideo(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	v, err := s.videoRepo.FindByID(req.VideoID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, video.ErrVideoNotFound
	}

	questions, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(v.Title, v.Description, req.Quantity))
	if err != nil {
		return nil, err
	}

	return &GenerateResponse{
		VideoID:   v.ID,
		Questions: questions,
	}, nil
}
