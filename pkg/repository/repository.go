// Package repository defines the finder contracts over the persisted
// entity set. Find-style calls return empty results, never errors, when
// the target is absent or deactivated; callers check for nil.
package repository

import (
	"context"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
)

// BookletRepository queries and persists savings booklets.
type BookletRepository interface {
	// FindAll returns every booklet regardless of status. Ordering is
	// unspecified.
	FindAll(ctx context.Context) ([]domain.Booklet, error)
	// FindAllActivated returns booklets whose status flag is set.
	FindAllActivated(ctx context.Context) ([]domain.Booklet, error)
	// FindActivated returns the activated booklet with the given id, or
	// nil when it is absent or deactivated.
	FindActivated(ctx context.Context, id uint) (*domain.Booklet, error)
	// FindByID returns the booklet regardless of status, or nil when
	// absent.
	FindByID(ctx context.Context, id uint) (*domain.Booklet, error)
	// FindBetweenDates returns booklets created inside the closed range
	// [start, end].
	FindBetweenDates(ctx context.Context, start, end time.Time) ([]domain.Booklet, error)
	// FindWithPagination returns one page of booklets. Not wired to a
	// route; kept as the extension point it was in the original schema.
	FindWithPagination(ctx context.Context, page, limit int) ([]domain.Booklet, error)
	// Save stages and commits a create or update.
	Save(ctx context.Context, b *domain.Booklet) error
	// Remove deletes the row entirely.
	Remove(ctx context.Context, b *domain.Booklet) error
}

// BookletPercentRepository queries and persists interest tiers.
type BookletPercentRepository interface {
	FindAll(ctx context.Context) ([]domain.BookletPercent, error)
	FindAllActivated(ctx context.Context) ([]domain.BookletPercent, error)
	FindActivated(ctx context.Context, id uint) (*domain.BookletPercent, error)
	FindByID(ctx context.Context, id uint) (*domain.BookletPercent, error)
	Save(ctx context.Context, bp *domain.BookletPercent) error
	Remove(ctx context.Context, bp *domain.BookletPercent) error
}

// CurrentAccountRepository queries and persists current accounts.
type CurrentAccountRepository interface {
	FindAll(ctx context.Context) ([]domain.CurrentAccount, error)
	FindAllActivated(ctx context.Context) ([]domain.CurrentAccount, error)
	FindActivated(ctx context.Context, id uint) (*domain.CurrentAccount, error)
	FindByID(ctx context.Context, id uint) (*domain.CurrentAccount, error)
	Save(ctx context.Context, ca *domain.CurrentAccount) error
	Remove(ctx context.Context, ca *domain.CurrentAccount) error
}

// UserRepository queries and persists users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindAllActivated(ctx context.Context) ([]domain.User, error)
	FindActivated(ctx context.Context, id uint) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// TotalMoney sums the user's account balance and every booklet balance
	// attached to that account.
	TotalMoney(ctx context.Context, userID uint) (float64, error)
	Save(ctx context.Context, u *domain.User) error
	Remove(ctx context.Context, u *domain.User) error
}

// PictureRepository persists picture attachments.
type PictureRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Picture, error)
	Save(ctx context.Context, p *domain.Picture) error
}
