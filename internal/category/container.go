package category

import (
	"gorm.io/gorm"

	"github.com/educahub/educahub-lambda/internal/video"
)

type CategoryContainer struct {
	Handler *Handler
}

func NewCategoryContainer(db *gorm.DB, videoRepo video.VideoRepository) *CategoryContainer {
	repo := NewRepository(db)
	service := NewService(repo, videoRepo)
	handler := NewHandler(service)

	return &CategoryContainer{
		Handler: handler,
	}
}
