package repository

import (
	"context"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type currentAccountRepository struct {
	db *gorm.DB
}

// NewCurrentAccountRepository creates the GORM-backed current account
// repository.
func NewCurrentAccountRepository(db *gorm.DB) repository.CurrentAccountRepository {
	return &currentAccountRepository{db: db}
}

func (r *currentAccountRepository) scope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Booklets").
		Preload("Booklets.BookletPercent").
		Preload("Users")
}

func (r *currentAccountRepository) FindAll(ctx context.Context) ([]domain.CurrentAccount, error) {
	var accounts []domain.CurrentAccount
	result := r.scope(ctx).Find(&accounts)
	return accounts, result.Error
}

func (r *currentAccountRepository) FindAllActivated(ctx context.Context) ([]domain.CurrentAccount, error) {
	var accounts []domain.CurrentAccount
	result := r.scope(ctx).Where("status = ?", true).Find(&accounts)
	return accounts, result.Error
}

func (r *currentAccountRepository) FindActivated(ctx context.Context, id uint) (*domain.CurrentAccount, error) {
	var accounts []domain.CurrentAccount
	result := r.scope(ctx).Where("status = ? AND id = ?", true, id).Limit(1).Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

func (r *currentAccountRepository) FindByID(ctx context.Context, id uint) (*domain.CurrentAccount, error) {
	var accounts []domain.CurrentAccount
	result := r.scope(ctx).Where("id = ?", id).Limit(1).Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

func (r *currentAccountRepository) Save(ctx context.Context, ca *domain.CurrentAccount) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ca).Error
}

func (r *currentAccountRepository) Remove(ctx context.Context, ca *domain.CurrentAccount) error {
	return r.db.WithContext(ctx).Delete(ca).Error
}
