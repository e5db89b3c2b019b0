package video

import (
	"gorm.io/gorm"

	"github.com/educahub/educahub-lambda/internal/storage"
)

type VideoContainer struct {
	Handler *Handler
	Repo    VideoRepository
	Service VideoService
}

func NewVideoContainer(db *gorm.DB, blobs storage.BlobStore) *VideoContainer {
	repo := NewRepository(db)
	service := NewService(repo, blobs)
	handler := NewHandler(service)

	return &VideoContainer{
		Handler: handler,
		Repo:    repo,
		Service: service,
	}
}
