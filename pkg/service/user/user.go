// Package user provides business logic for account holders: cached reads,
// registration with password hashing, load-then-merge updates and the
// wealth filter.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"github.com/Forgos-ynov/Vault-API/pkg/utils"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/go-playground/validator/v10"
)

const (
	cacheKeyAll = "getAllUsers"
	cacheKeyOne = "getUserId"
)

// Service owns user reads and mutations. User views embed the current
// account with its booklets, so mutations invalidate both the user tag and
// the current account tag.
type Service struct {
	users    repository.UserRepository
	accounts repository.CurrentAccountRepository
	cache    cache.TagCache
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a user service.
func New(
	users repository.UserRepository,
	accounts repository.CurrentAccountRepository,
	tagCache cache.TagCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		accounts: accounts,
		cache:    tagCache,
		validate: domain.NewValidator(),
		logger:   logger,
	}
}

// CreateInput is the inbound payload for user registration. The password
// arrives in clear and is bcrypt-hashed before the entity is built.
type CreateInput struct {
	Username         string   `json:"username"`
	Password         string   `json:"password"`
	Roles            []string `json:"roles"`
	IDCurrentAccount *uint    `json:"idCurrentAccount"`
}

// UpdateInput carries the fields of a user update; nil fields keep the
// loaded value.
type UpdateInput struct {
	Username         *string  `json:"username"`
	Password         *string  `json:"password"`
	Roles            []string `json:"roles"`
	IDCurrentAccount *uint    `json:"idCurrentAccount"`
}

// ListCached returns the serialized activated users, read through the
// cache under the fixed list key.
func (s *Service) ListCached(ctx context.Context) (string, error) {
	return s.cache.GetOrPopulate(ctx, cacheKeyAll, cache.TagUser, s.produceAll)
}

func (s *Service) produceAll(ctx context.Context) (string, error) {
	users, err := s.users.FindAllActivated(ctx)
	if err != nil {
		return "", err
	}
	raw, err := view.Render(users, view.GroupUser)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetCached returns the serialized activated user with the given id.
// Returns domain.ErrUserNotFound when the user is absent or turned off.
func (s *Service) GetCached(ctx context.Context, id uint) (string, error) {
	u, err := s.users.FindActivated(ctx, id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	key := fmt.Sprintf("%s%d", cacheKeyOne, id)
	return s.cache.GetOrPopulate(ctx, key, cache.TagUser, s.produceOne(id))
}

func (s *Service) produceOne(id uint) cache.Producer {
	return func(ctx context.Context) (string, error) {
		u, err := s.users.FindActivated(ctx, id)
		if err != nil {
			return "", err
		}
		raw, err := view.Render(u, view.GroupUser)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// FilterByMinimumWealth returns the serialized activated users whose
// total money, current account plus attached booklets, reaches the
// threshold. Uncached.
func (s *Service) FilterByMinimumWealth(ctx context.Context, minimum float64) (string, error) {
	users, err := s.users.FindAllActivated(ctx)
	if err != nil {
		return "", err
	}
	wealthy := make([]domain.User, 0, len(users))
	for _, u := range users {
		total, err := s.users.TotalMoney(ctx, u.ID)
		if err != nil {
			return "", err
		}
		if total >= minimum {
			wealthy = append(wealthy, u)
		}
	}
	raw, err := view.Render(wealthy, view.GroupUser)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Create builds, validates and persists a new user. An empty password is
// left unhashed so the required rule rejects it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, []domain.Violation, error) {
	u := &domain.User{
		Username:  in.Username,
		Roles:     domain.Roles(in.Roles),
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, nil, err
		}
		u.Password = hash
	}
	if err := s.attachAccount(ctx, u, in.IDCurrentAccount); err != nil {
		return nil, nil, err
	}

	if violations := domain.CollectViolations(s.validate.Struct(u)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.invalidate(ctx); err != nil {
		return nil, nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, nil, err
	}
	s.logger.Info("user created", "id", u.ID, "username", u.Username)
	return u, nil, nil
}

// Update merges non-nil input fields onto the loaded user, re-hashing the
// password and re-resolving the account id when provided.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*domain.User, []domain.Violation, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Password != nil {
		u.Password = ""
		if *in.Password != "" {
			hash, err := utils.HashPassword(*in.Password)
			if err != nil {
				return nil, nil, err
			}
			u.Password = hash
		}
	}
	if in.Roles != nil {
		u.Roles = domain.Roles(in.Roles)
	}
	if in.IDCurrentAccount != nil {
		u.CurrentAccountID = nil
		u.CurrentAccount = nil
		if err := s.attachAccount(ctx, u, in.IDCurrentAccount); err != nil {
			return nil, nil, err
		}
	}

	if violations := domain.CollectViolations(s.validate.Struct(u)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.invalidate(ctx); err != nil {
		return nil, nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, nil, err
	}
	s.logger.Info("user updated", "id", u.ID)
	return u, nil, nil
}

// TurnOff soft-deletes the user by flipping its status flag.
func (s *Service) TurnOff(ctx context.Context, id uint) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := s.invalidate(ctx); err != nil {
		return err
	}
	u.Status = false
	if err := s.users.Save(ctx, u); err != nil {
		return err
	}
	s.logger.Info("user turned off", "id", u.ID)
	return nil
}

// invalidate drops both tags touched by a user mutation. Account views
// list their users, so they go stale together.
func (s *Service) invalidate(ctx context.Context) error {
	if err := s.cache.InvalidateTag(ctx, cache.TagUser); err != nil {
		return err
	}
	return s.cache.InvalidateTag(ctx, cache.TagCurrentAccount)
}

func (s *Service) attachAccount(ctx context.Context, u *domain.User, id *uint) error {
	if id == nil {
		return nil
	}
	account, err := s.accounts.FindByID(ctx, *id)
	if err != nil {
		return err
	}
	if account == nil {
		s.logger.Warn("current account not found", "id", *id)
		return nil
	}
	u.CurrentAccountID = &account.ID
	u.CurrentAccount = account
	return nil
}
