// Package repository implements the finder contracts on GORM.
package repository

import (
	"context"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookletRepository struct {
	db *gorm.DB
}

// NewBookletRepository creates the GORM-backed booklet repository.
func NewBookletRepository(db *gorm.DB) repository.BookletRepository {
	return &bookletRepository{db: db}
}

// scope preloads the relations the booklet views render.
func (r *bookletRepository) scope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("BookletPercent").
		Preload("CurrentAccount").
		Preload("CurrentAccount.Users")
}

func (r *bookletRepository) FindAll(ctx context.Context) ([]domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).Find(&booklets)
	return booklets, result.Error
}

func (r *bookletRepository) FindAllActivated(ctx context.Context) ([]domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).Where("status = ?", true).Find(&booklets)
	return booklets, result.Error
}

func (r *bookletRepository) FindActivated(ctx context.Context, id uint) (*domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).Where("status = ? AND id = ?", true, id).Limit(1).Find(&booklets)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(booklets) == 0 {
		return nil, nil
	}
	return &booklets[0], nil
}

func (r *bookletRepository) FindByID(ctx context.Context, id uint) (*domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).Where("id = ?", id).Limit(1).Find(&booklets)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(booklets) == 0 {
		return nil, nil
	}
	return &booklets[0], nil
}

func (r *bookletRepository) FindBetweenDates(ctx context.Context, start, end time.Time) ([]domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&booklets)
	return booklets, result.Error
}

func (r *bookletRepository) FindWithPagination(ctx context.Context, page, limit int) ([]domain.Booklet, error) {
	var booklets []domain.Booklet
	result := r.scope(ctx).Offset((page - 1) * limit).Limit(limit).Find(&booklets)
	return booklets, result.Error
}

func (r *bookletRepository) Save(ctx context.Context, b *domain.Booklet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *bookletRepository) Remove(ctx context.Context, b *domain.Booklet) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
