// Package bookletpercent provides business logic for interest tier
// operations.
package bookletpercent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/go-playground/validator/v10"
)

const (
	cacheKeyAll = "getAllBookletPercents"
	cacheKeyOne = "getBookletPercentId"
)

// Service owns interest tier reads and mutations.
type Service struct {
	percents repository.BookletPercentRepository
	cache    cache.TagCache
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a booklet percent service.
func New(
	percents repository.BookletPercentRepository,
	tagCache cache.TagCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		percents: percents,
		cache:    tagCache,
		validate: domain.NewValidator(),
		logger:   logger,
	}
}

// CreateInput is the inbound payload for tier creation.
type CreateInput struct {
	Percent *float64 `json:"percent" validate:"required,gte=0"`
}

// UpdateInput carries the fields of a tier update.
type UpdateInput struct {
	Percent *float64 `json:"percent"`
}

// ListCached returns the serialized activated tiers through the cache.
func (s *Service) ListCached(ctx context.Context) (string, error) {
	return s.cache.GetOrPopulate(ctx, cacheKeyAll, cache.TagBookletPercent, s.produceAll)
}

func (s *Service) produceAll(ctx context.Context) (string, error) {
	percents, err := s.percents.FindAllActivated(ctx)
	if err != nil {
		return "", err
	}
	raw, err := view.Render(percents, view.GroupBookletPercent)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetCached returns the serialized activated tier with the given id, or
// domain.ErrBookletPercentNotFound.
func (s *Service) GetCached(ctx context.Context, id uint) (string, error) {
	bp, err := s.percents.FindActivated(ctx, id)
	if err != nil {
		return "", err
	}
	if bp == nil {
		return "", domain.ErrBookletPercentNotFound
	}
	key := fmt.Sprintf("%s%d", cacheKeyOne, id)
	return s.cache.GetOrPopulate(ctx, key, cache.TagBookletPercent, s.produceOne(id))
}

func (s *Service) produceOne(id uint) cache.Producer {
	return func(ctx context.Context) (string, error) {
		bp, err := s.percents.FindActivated(ctx, id)
		if err != nil {
			return "", err
		}
		raw, err := view.Render(bp, view.GroupBookletPercent)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// Create validates and persists a new tier.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.BookletPercent, []domain.Violation, error) {
	if violations := domain.CollectViolations(s.validate.Struct(in)); len(violations) > 0 {
		return nil, violations, nil
	}
	bp := &domain.BookletPercent{
		Percent: *in.Percent,
		Status:  true,
	}
	if violations := domain.CollectViolations(s.validate.Struct(bp)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagBookletPercent); err != nil {
		return nil, nil, err
	}
	if err := s.percents.Save(ctx, bp); err != nil {
		return nil, nil, err
	}
	s.logger.Info("booklet percent created", "id", bp.ID, "percent", bp.Percent)
	return bp, nil, nil
}

// Update merges non-nil input fields onto the loaded tier and persists.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*domain.BookletPercent, []domain.Violation, error) {
	bp, err := s.percents.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if bp == nil {
		return nil, nil, domain.ErrBookletPercentNotFound
	}
	if in.Percent != nil {
		bp.Percent = *in.Percent
	}

	if violations := domain.CollectViolations(s.validate.Struct(bp)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.cache.InvalidateTag(ctx, cache.TagBookletPercent); err != nil {
		return nil, nil, err
	}
	if err := s.percents.Save(ctx, bp); err != nil {
		return nil, nil, err
	}
	s.logger.Info("booklet percent updated", "id", bp.ID)
	return bp, nil, nil
}

// TurnOff soft-deletes the tier.
func (s *Service) TurnOff(ctx context.Context, id uint) error {
	bp, err := s.percents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bp == nil {
		return domain.ErrBookletPercentNotFound
	}
	if err := s.cache.InvalidateTag(ctx, cache.TagBookletPercent); err != nil {
		return err
	}
	bp.Status = false
	if err := s.percents.Save(ctx, bp); err != nil {
		return err
	}
	s.logger.Info("booklet percent turned off", "id", bp.ID)
	return nil
}
