// Package currentaccount provides business logic for current account
// operations.
package currentaccount

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/go-playground/validator/v10"
)

const (
	cacheKeyAll = "getAllCurrentAccounts"
	cacheKeyOne = "getCurrentAccountId"
)

// Service owns current account reads and mutations.
type Service struct {
	accounts repository.CurrentAccountRepository
	cache    cache.TagCache
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a current account service.
func New(
	accounts repository.CurrentAccountRepository,
	tagCache cache.TagCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts: accounts,
		cache:    tagCache,
		validate: domain.NewValidator(),
		logger:   logger,
	}
}

// CreateInput is the inbound payload for account creation.
type CreateInput struct {
	Name  string  `json:"name"`
	Money float64 `json:"money"`
}

// UpdateInput carries the fields of an account update.
type UpdateInput struct {
	Name  *string  `json:"name"`
	Money *float64 `json:"money"`
}

// ListCached returns the serialized activated accounts through the cache.
func (s *Service) ListCached(ctx context.Context) (string, error) {
	return s.cache.GetOrPopulate(ctx, cacheKeyAll, cache.TagCurrentAccount, s.produceAll)
}

func (s *Service) produceAll(ctx context.Context) (string, error) {
	accounts, err := s.accounts.FindAllActivated(ctx)
	if err != nil {
		return "", err
	}
	raw, err := view.Render(accounts, view.GroupCurrentAccount)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetCached returns the serialized activated account with the given id, or
// domain.ErrCurrentAccountNotFound.
func (s *Service) GetCached(ctx context.Context, id uint) (string, error) {
	ca, err := s.accounts.FindActivated(ctx, id)
	if err != nil {
		return "", err
	}
	if ca == nil {
		return "", domain.ErrCurrentAccountNotFound
	}
	key := fmt.Sprintf("%s%d", cacheKeyOne, id)
	return s.cache.GetOrPopulate(ctx, key, cache.TagCurrentAccount, s.produceOne(id))
}

func (s *Service) produceOne(id uint) cache.Producer {
	return func(ctx context.Context) (string, error) {
		ca, err := s.accounts.FindActivated(ctx, id)
		if err != nil {
			return "", err
		}
		raw, err := view.Render(ca, view.GroupCurrentAccount)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// Create validates and persists a new account.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.CurrentAccount, []domain.Violation, error) {
	ca := &domain.CurrentAccount{
		Name:      in.Name,
		Money:     in.Money,
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}

	if violations := domain.CollectViolations(s.validate.Struct(ca)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagCurrentAccount); err != nil {
		return nil, nil, err
	}
	if err := s.accounts.Save(ctx, ca); err != nil {
		return nil, nil, err
	}
	s.logger.Info("current account created", "id", ca.ID, "name", ca.Name)
	return ca, nil, nil
}

// Update merges non-nil input fields onto the loaded account and persists.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*domain.CurrentAccount, []domain.Violation, error) {
	ca, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ca == nil {
		return nil, nil, domain.ErrCurrentAccountNotFound
	}
	if in.Name != nil {
		ca.Name = *in.Name
	}
	if in.Money != nil {
		ca.Money = *in.Money
	}

	if violations := domain.CollectViolations(s.validate.Struct(ca)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagCurrentAccount); err != nil {
		return nil, nil, err
	}
	if err := s.accounts.Save(ctx, ca); err != nil {
		return nil, nil, err
	}
	s.logger.Info("current account updated", "id", ca.ID)
	return ca, nil, nil
}

// TurnOff soft-deletes the account.
func (s *Service) TurnOff(ctx context.Context, id uint) error {
	ca, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ca == nil {
		return domain.ErrCurrentAccountNotFound
	}
	if err := s.cache.InvalidateTag(ctx, cache.TagCurrentAccount); err != nil {
		return err
	}
	ca.Status = false
	if err := s.accounts.Save(ctx, ca); err != nil {
		return err
	}
	s.logger.Info("current account turned off", "id", ca.ID)
	return nil
}
