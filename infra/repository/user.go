package repository

import (
	"context"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the GORM-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) scope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("CurrentAccount").
		Preload("CurrentAccount.Booklets")
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := r.scope(ctx).Find(&users)
	return users, result.Error
}

func (r *userRepository) FindAllActivated(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := r.scope(ctx).Where("status = ?", true).Find(&users)
	return users, result.Error
}

func (r *userRepository) FindActivated(ctx context.Context, id uint) (*domain.User, error) {
	var users []domain.User
	result := r.scope(ctx).Where("status = ? AND id = ?", true, id).Limit(1).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var users []domain.User
	result := r.scope(ctx).Where("id = ?", id).Limit(1).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var users []domain.User
	result := r.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) TotalMoney(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT ca.money + COALESCE(SUM(b.money), 0)
		FROM users u
		JOIN current_accounts ca ON ca.id = u.current_account_id
		LEFT JOIN booklets b ON b.current_account_id = ca.id
		WHERE u.id = ?
		GROUP BY ca.money`, userID).Scan(&total).Error
	return total, err
}

func (r *userRepository) Save(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *userRepository) Remove(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}
