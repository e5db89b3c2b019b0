package aiquiz

import (
	"context"

	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/video"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(videoRepo video.VideoRepository) *AIQuizContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		// The portal still works without the generator; requests get 503.
		config.WithContext(ctx).WithError(err).Warn("Gerador de quiz com IA indisponível")
	}

	service := NewService(provider, videoRepo)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
