// Package picture provides business logic for image attachments: upload to
// the file store plus metadata persistence, and single-item reads.
package picture

import (
	"context"
	"log/slog"
	"mime/multipart"
	"path"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"github.com/go-playground/validator/v10"
)

// FileStore is the slice of the disk store the service needs.
type FileStore interface {
	Store(file *multipart.FileHeader) (string, error)
	PublicPath() string
}

// Service owns picture uploads and reads. Pictures hang off no other
// entity view, so no cache tag is involved.
type Service struct {
	pictures repository.PictureRepository
	store    FileStore
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a picture service.
func New(pictures repository.PictureRepository, store FileStore, logger *slog.Logger) *Service {
	return &Service{
		pictures: pictures,
		store:    store,
		validate: domain.NewValidator(),
		logger:   logger,
	}
}

// Upload writes the file to the store and persists its metadata. A missing
// file fails validation before anything touches the disk.
func (s *Service) Upload(ctx context.Context, file *multipart.FileHeader) (*domain.Picture, []domain.Violation, error) {
	p := &domain.Picture{
		Status:     true,
		UploadDate: time.Now().UTC(),
		File:       file,
	}
	if file == nil {
		violations := domain.CollectViolations(s.validate.Struct(p))
		return nil, violations, nil
	}

	storedName, err := s.store.Store(file)
	if err != nil {
		return nil, nil, err
	}
	p.RealName = file.Filename
	p.RealPath = storedName
	p.PublicPath = path.Join(s.store.PublicPath(), storedName)
	p.MimeType = file.Header.Get("Content-Type")

	if violations := domain.CollectViolations(s.validate.Struct(p)); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.pictures.Save(ctx, p); err != nil {
		return nil, nil, err
	}
	s.logger.Info("picture uploaded", "id", p.ID, "name", p.RealName)
	return p, nil, nil
}

// Get returns the picture with the given id. Returns
// domain.ErrPictureNotFound when absent.
func (s *Service) Get(ctx context.Context, id uint) (*domain.Picture, error) {
	p, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPictureNotFound
	}
	return p, nil
}
