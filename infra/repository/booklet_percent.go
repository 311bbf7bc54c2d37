package repository

import (
	"context"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookletPercentRepository struct {
	db *gorm.DB
}

// NewBookletPercentRepository creates the GORM-backed interest tier
// repository.
func NewBookletPercentRepository(db *gorm.DB) repository.BookletPercentRepository {
	return &bookletPercentRepository{db: db}
}

func (r *bookletPercentRepository) FindAll(ctx context.Context) ([]domain.BookletPercent, error) {
	var percents []domain.BookletPercent
	result := r.db.WithContext(ctx).Find(&percents)
	return percents, result.Error
}

func (r *bookletPercentRepository) FindAllActivated(ctx context.Context) ([]domain.BookletPercent, error) {
	var percents []domain.BookletPercent
	result := r.db.WithContext(ctx).Where("status = ?", true).Find(&percents)
	return percents, result.Error
}

func (r *bookletPercentRepository) FindActivated(ctx context.Context, id uint) (*domain.BookletPercent, error) {
	var percents []domain.BookletPercent
	result := r.db.WithContext(ctx).
		Where("status = ? AND id = ?", true, id).
		Limit(1).
		Find(&percents)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(percents) == 0 {
		return nil, nil
	}
	return &percents[0], nil
}

func (r *bookletPercentRepository) FindByID(ctx context.Context, id uint) (*domain.BookletPercent, error) {
	var percents []domain.BookletPercent
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&percents)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(percents) == 0 {
		return nil, nil
	}
	return &percents[0], nil
}

func (r *bookletPercentRepository) Save(ctx context.Context, bp *domain.BookletPercent) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(bp).Error
}

func (r *bookletPercentRepository) Remove(ctx context.Context, bp *domain.BookletPercent) error {
	return r.db.WithContext(ctx).Delete(bp).Error
}
