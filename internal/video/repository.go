package video

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(v *Video) error
	FindAll() ([]Video, error)
	FindByID(id uuid.UUID) (*Video, error)
	Update(v *Video) error
	Delete(id uuid.UUID) error
	SwapOrder(a, b OrderChange) error
	ClearCategory(name string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(v *Video) error {
	return r.db.Create(v).Error
}

func (r *videoRepository) FindAll() ([]Video, error) {
	var videos []Video
	if err := r.db.
		Order("sort_order ASC, created_at ASC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) FindByID(id uuid.UUID) (*Video, error) {
	var v Video
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) Update(v *Video) error {
	return r.db.Save(v).Error
}

func (r *videoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Video{}, "id = ?", id).Error
}

// SwapOrder applies both halves of a reorder as one transaction.
func (r *videoRepository) SwapOrder(a, b OrderChange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Video{}).Where("id = ?", a.ID).Update("sort_order", a.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&Video{}).Where("id = ?", b.ID).Update("sort_order", b.SortOrder).Error
	})
}

func (r *videoRepository) ClearCategory(name string) error {
	return r.db.Model(&Video{}).Where("category = ?", name).Update("category", nil).Error
}
