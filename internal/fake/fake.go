// Package fake provides in-memory repository implementations for tests.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
)

// BookletRepo is an in-memory BookletRepository.
type BookletRepo struct {
	mu      sync.Mutex
	ByID    map[uint]*domain.Booklet
	nextID  uint
	SaveErr error
	Saves   int
}

func NewBookletRepo() *BookletRepo {
	return &BookletRepo{ByID: map[uint]*domain.Booklet{}}
}

func (r *BookletRepo) all() []domain.Booklet {
	ids := make([]uint, 0, len(r.ByID))
	for id := range r.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.Booklet, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.ByID[id])
	}
	return out
}

func (r *BookletRepo) FindAll(ctx context.Context) ([]domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(), nil
}

func (r *BookletRepo) FindAllActivated(ctx context.Context) ([]domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booklet
	for _, b := range r.all() {
		if b.Status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookletRepo) FindActivated(ctx context.Context, id uint) (*domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.ByID[id]; ok && b.Status {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *BookletRepo) FindByID(ctx context.Context, id uint) (*domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.ByID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *BookletRepo) FindBetweenDates(ctx context.Context, start, end time.Time) ([]domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booklet
	for _, b := range r.all() {
		if !b.CreatedAt.Before(start) && !b.CreatedAt.After(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookletRepo) FindWithPagination(ctx context.Context, page, limit int) ([]domain.Booklet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.all()
	from := (page - 1) * limit
	if from >= len(all) {
		return nil, nil
	}
	to := min(from+limit, len(all))
	return all[from:to], nil
}

func (r *BookletRepo) Save(ctx context.Context, b *domain.Booklet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if b.ID == 0 {
		r.nextID++
		b.ID = r.nextID
	}
	cp := *b
	r.ByID[b.ID] = &cp
	r.Saves++
	return nil
}

func (r *BookletRepo) Remove(ctx context.Context, b *domain.Booklet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ByID, b.ID)
	return nil
}

// PercentRepo is an in-memory BookletPercentRepository.
type PercentRepo struct {
	mu     sync.Mutex
	ByID   map[uint]*domain.BookletPercent
	nextID uint
}

func NewPercentRepo() *PercentRepo {
	return &PercentRepo{ByID: map[uint]*domain.BookletPercent{}}
}

func (r *PercentRepo) all() []domain.BookletPercent {
	ids := make([]uint, 0, len(r.ByID))
	for id := range r.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.BookletPercent, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.ByID[id])
	}
	return out
}

func (r *PercentRepo) FindAll(ctx context.Context) ([]domain.BookletPercent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(), nil
}

func (r *PercentRepo) FindAllActivated(ctx context.Context) ([]domain.BookletPercent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.BookletPercent
	for _, bp := range r.all() {
		if bp.Status {
			out = append(out, bp)
		}
	}
	return out, nil
}

func (r *PercentRepo) FindActivated(ctx context.Context, id uint) (*domain.BookletPercent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bp, ok := r.ByID[id]; ok && bp.Status {
		cp := *bp
		return &cp, nil
	}
	return nil, nil
}

func (r *PercentRepo) FindByID(ctx context.Context, id uint) (*domain.BookletPercent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bp, ok := r.ByID[id]; ok {
		cp := *bp
		return &cp, nil
	}
	return nil, nil
}

func (r *PercentRepo) Save(ctx context.Context, bp *domain.BookletPercent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bp.ID == 0 {
		r.nextID++
		bp.ID = r.nextID
	}
	cp := *bp
	r.ByID[bp.ID] = &cp
	return nil
}

func (r *PercentRepo) Remove(ctx context.Context, bp *domain.BookletPercent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ByID, bp.ID)
	return nil
}

// AccountRepo is an in-memory CurrentAccountRepository.
type AccountRepo struct {
	mu     sync.Mutex
	ByID   map[uint]*domain.CurrentAccount
	nextID uint
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{ByID: map[uint]*domain.CurrentAccount{}}
}

func (r *AccountRepo) all() []domain.CurrentAccount {
	ids := make([]uint, 0, len(r.ByID))
	for id := range r.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.CurrentAccount, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.ByID[id])
	}
	return out
}

func (r *AccountRepo) FindAll(ctx context.Context) ([]domain.CurrentAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(), nil
}

func (r *AccountRepo) FindAllActivated(ctx context.Context) ([]domain.CurrentAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CurrentAccount
	for _, ca := range r.all() {
		if ca.Status {
			out = append(out, ca)
		}
	}
	return out, nil
}

func (r *AccountRepo) FindActivated(ctx context.Context, id uint) (*domain.CurrentAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ca, ok := r.ByID[id]; ok && ca.Status {
		cp := *ca
		return &cp, nil
	}
	return nil, nil
}

func (r *AccountRepo) FindByID(ctx context.Context, id uint) (*domain.CurrentAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ca, ok := r.ByID[id]; ok {
		cp := *ca
		return &cp, nil
	}
	return nil, nil
}

func (r *AccountRepo) Save(ctx context.Context, ca *domain.CurrentAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ca.ID == 0 {
		r.nextID++
		ca.ID = r.nextID
	}
	cp := *ca
	r.ByID[ca.ID] = &cp
	return nil
}

func (r *AccountRepo) Remove(ctx context.Context, ca *domain.CurrentAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ByID, ca.ID)
	return nil
}

// UserRepo is an in-memory UserRepository. Totals overrides TotalMoney per
// user id; absent entries answer zero.
type UserRepo struct {
	mu     sync.Mutex
	ByID   map[uint]*domain.User
	Totals map[uint]float64
	nextID uint
}

func NewUserRepo() *UserRepo {
	return &UserRepo{ByID: map[uint]*domain.User{}, Totals: map[uint]float64{}}
}

func (r *UserRepo) all() []domain.User {
	ids := make([]uint, 0, len(r.ByID))
	for id := range r.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.ByID[id])
	}
	return out
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(), nil
}

func (r *UserRepo) FindAllActivated(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, u := range r.all() {
		if u.Status {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepo) FindActivated(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.ByID[id]; ok && u.Status {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.ByID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.all() {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) TotalMoney(ctx context.Context, userID uint) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Totals[userID], nil
}

func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == 0 {
		r.nextID++
		u.ID = r.nextID
	}
	cp := *u
	r.ByID[u.ID] = &cp
	return nil
}

func (r *UserRepo) Remove(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ByID, u.ID)
	return nil
}

// PictureRepo is an in-memory PictureRepository.
type PictureRepo struct {
	mu     sync.Mutex
	ByID   map[uint]*domain.Picture
	nextID uint
}

func NewPictureRepo() *PictureRepo {
	return &PictureRepo{ByID: map[uint]*domain.Picture{}}
}

func (r *PictureRepo) FindByID(ctx context.Context, id uint) (*domain.Picture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.ByID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *PictureRepo) Save(ctx context.Context, p *domain.Picture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	cp := *p
	r.ByID[p.ID] = &cp
	return nil
}
