package form

import (
	"gorm.io/gorm"

	"github.com/educahub/educahub-lambda/internal/storage"
)

type FormContainer struct {
	Handler *Handler
}

func NewFormContainer(db *gorm.DB, blobs storage.BlobStore) *FormContainer {
	repo := NewRepository(db)
	service := NewService(repo, blobs)
	handler := NewHandler(service)

	return &FormContainer{
		Handler: handler,
	}
}
