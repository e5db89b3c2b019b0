package quiz

import (
	"gorm.io/gorm"

	"github.com/educahub/educahub-lambda/internal/video"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB, videoRepo video.VideoRepository) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, videoRepo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
