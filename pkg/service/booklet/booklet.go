// Package booklet provides business logic for savings booklet operations:
// cached reads, creation with relationship resolution, load-then-merge
// updates, and both soft and hard deletion.
package booklet

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
	cacheKeyAll = "getAllBooklets"
	cacheKeyOne = "getBookletId"
)

// Service owns booklet reads and mutations. Mutations invalidate the
// booklet cache tag after validation passes and before the persistence
// call, so a failed commit costs one refill instead of staleness.
type Service struct {
	booklets repository.BookletRepository
	percents repository.BookletPercentRepository
	accounts repository.CurrentAccountRepository
	cache    cache.TagCache
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a booklet service.
func New(
	booklets repository.BookletRepository,
	percents repository.BookletPercentRepository,
	accounts repository.CurrentAccountRepository,
	tagCache cache.TagCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		booklets: booklets,
		percents: percents,
		accounts: accounts,
		cache:    tagCache,
		validate: domain.NewValidator(),
		logger:   logger,
	}
}

// CreateInput is the inbound payload for booklet creation. Relationship
// ids are resolved against their repositories; a dangling id fails
// validation rather than persisting a null required reference.
type CreateInput struct {
	Name             string  `json:"name"`
	Money            float64 `json:"money"`
	IDBookletPercent *uint   `json:"idBookletPercent"`
	IDCurrentAccount *uint   `json:"idCurrentAccount"`
}

// UpdateInput carries the fields of a booklet update; nil fields keep the
// loaded value.
type UpdateInput struct {
	Name             *string  `json:"name"`
	Money            *float64 `json:"money"`
	IDBookletPercent *uint    `json:"idBookletPercent"`
	IDCurrentAccount *uint    `json:"idCurrentAccount"`
}

// ListCached returns the serialized activated booklets, read through the
// cache under the fixed list key.
func (s *Service) ListCached(ctx context.Context) (string, error) {
	return s.cache.GetOrPopulate(ctx, cacheKeyAll, cache.TagBooklet, s.produceAll)
}

func (s *Service) produceAll(ctx context.Context) (string, error) {
	booklets, err := s.booklets.FindAllActivated(ctx)
	if err != nil {
		return "", err
	}
	raw, err := view.Render(booklets, view.GroupBooklet)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetCached returns the serialized activated booklet with the given id.
// Returns domain.ErrBookletNotFound when the booklet is absent or turned
// off; the cache is only consulted for booklets that exist.
func (s *Service) GetCached(ctx context.Context, id uint) (string, error) {
	b, err := s.booklets.FindActivated(ctx, id)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", domain.ErrBookletNotFound
	}
	key := fmt.Sprintf("%s%d", cacheKeyOne, id)
	return s.cache.GetOrPopulate(ctx, key, cache.TagBooklet, s.produceOne(id))
}

func (s *Service) produceOne(id uint) cache.Producer {
	return func(ctx context.Context) (string, error) {
		b, err := s.booklets.FindActivated(ctx, id)
		if err != nil {
			return "", err
		}
		raw, err := view.Render(b, view.GroupBooklet)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// ListBetweenDates returns the serialized booklets created inside the
// closed range [start, end]. Uncached.
func (s *Service) ListBetweenDates(ctx context.Context, start, end time.Time) (string, error) {
	booklets, err := s.booklets.FindBetweenDates(ctx, start, end)
	if err != nil {
		return "", err
	}
	raw, err := view.Render(booklets, view.GroupBooklet)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Create builds, validates and persists a new booklet. A non-empty
// violation list means the write was rejected and nothing was persisted.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Booklet, []domain.Violation, error) {
	b := &domain.Booklet{
		Name:      in.Name,
		Money:     in.Money,
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.attachPercent(ctx, b, in.IDBookletPercent); err != nil {
		return nil, nil, err
	}
	if err := s.attachAccount(ctx, b, in.IDCurrentAccount); err != nil {
		return nil, nil, err
	}

	if violations := domain.CollectViolations(s.validate.Struct(b)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagBooklet); err != nil {
		return nil, nil, err
	}
	if err := s.booklets.Save(ctx, b); err != nil {
		return nil, nil, err
	}
	s.logger.Info("booklet created", "id", b.ID, "name", b.Name)
	return b, nil, nil
}

// Update merges non-nil input fields onto the loaded booklet, re-resolves
// relationship ids when provided, validates and persists.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*domain.Booklet, []domain.Violation, error) {
	b, err := s.booklets.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, domain.ErrBookletNotFound
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Money != nil {
		b.Money = *in.Money
	}
	if in.IDBookletPercent != nil {
		b.BookletPercentID = nil
		b.BookletPercent = nil
		if err := s.attachPercent(ctx, b, in.IDBookletPercent); err != nil {
			return nil, nil, err
		}
	}
	if in.IDCurrentAccount != nil {
		b.CurrentAccountID = nil
		b.CurrentAccount = nil
		if err := s.attachAccount(ctx, b, in.IDCurrentAccount); err != nil {
			return nil, nil, err
		}
	}

	if violations := domain.CollectViolations(s.validate.Struct(b)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagBooklet); err != nil {
		return nil, nil, err
	}
	if err := s.booklets.Save(ctx, b); err != nil {
		return nil, nil, err
	}
	s.logger.Info("booklet updated", "id", b.ID)
	return b, nil, nil
}

// TurnOff soft-deletes the booklet by flipping its status flag.
func (s *Service) TurnOff(ctx context.Context, id uint) error {
	b, err := s.booklets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBookletNotFound
	}
	if err := s.cache.InvalidateTag(ctx, cache.TagBooklet); err != nil {
		return err
	}
	b.Status = false
	if err := s.booklets.Save(ctx, b); err != nil {
		return err
	}
	s.logger.Info("booklet turned off", "id", b.ID)
	return nil
}

// Delete removes the booklet row entirely. The booklet owns both of its
// foreign keys, so no inverse side needs nulling.
func (s *Service) Delete(ctx context.Context, id uint) error {
	b, err := s.booklets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBookletNotFound
	}
	if err := s.cache.InvalidateTag(ctx, cache.TagBooklet); err != nil {
		return err
	}
	if err := s.booklets.Remove(ctx, b); err != nil {
		return err
	}
	s.logger.Info("booklet deleted", "id", id)
	return nil
}

// attachPercent resolves the tier id and attaches the reference. A nil or
// dangling id leaves the required reference nil for validation to reject.
func (s *Service) attachPercent(ctx context.Context, b *domain.Booklet, id *uint) error {
	if id == nil {
		return nil
	}
	percent, err := s.percents.FindByID(ctx, *id)
	if err != nil {
		return err
	}
	if percent == nil {
		s.logger.Warn("booklet percent not found", "id", *id)
		return nil
	}
	b.BookletPercentID = &percent.ID
	b.BookletPercent = percent
	return nil
}

func (s *Service) attachAccount(ctx context.Context, b *domain.Booklet, id *uint) error {
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
	b.CurrentAccountID = &account.ID
	b.CurrentAccount = account
	return nil
}
