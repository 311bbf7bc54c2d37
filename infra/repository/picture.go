package repository

import (
	"context"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository creates the GORM-backed picture repository.
func NewPictureRepository(db *gorm.DB) repository.PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) FindByID(ctx context.Context, id uint) (*domain.Picture, error) {
	var pictures []domain.Picture
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&pictures)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(pictures) == 0 {
		return nil, nil
	}
	return &pictures[0], nil
}

func (r *pictureRepository) Save(ctx context.Context, p *domain.Picture) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}
