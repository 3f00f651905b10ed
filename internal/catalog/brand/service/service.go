package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand/db"
	"github.com/xw1nchester/protech-admin/internal/catalog/entitystore"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

const (
	ReferencedMessage = "Cannot delete: This item is still assigned to one or more products."
	CreatedMessage    = "Item created successfully!"
	UpdatedMessage    = "Item updated successfully!"
	DeletedMessage    = "Item deleted."
	ImageRemovedText  = "Image removed successfully."
)

var (
	ErrItemNotFound = apperror.NewNotFoundErr("Item not found for deletion.")
	ErrNoImageURL   = apperror.NewAppError("No image URL provided to delete.")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockbrandservice
type Repository interface {
	GetPage(ctx context.Context, q listing.Query) ([]brand.Brand, int, error)
	GetAll(ctx context.Context) ([]brand.Summary, error)
	GetByID(ctx context.Context, id int) (*brand.Brand, error)
	Create(ctx context.Context, data brand.Brand) (*brand.Brand, error)
	Update(ctx context.Context, data brand.Brand) (*brand.Brand, error)
	SetImage(ctx context.Context, id int, image *string) (*brand.Brand, error)
	Delete(ctx context.Context, id int) error
}

type FileManager interface {
	UploadFile(ctx context.Context, file filemanager.File, bucket string) (string, error)
	DeleteFile(ctx context.Context, fileURL, bucket string)
}

type service struct {
	*entitystore.Store[brand.Brand]

	repository Repository
	files      FileManager
	bucket     string
	logger     *zap.Logger

	mu  sync.Mutex
	all []brand.Summary
}

func New(
	repository Repository,
	files FileManager,
	notifier entitystore.Notifier,
	bucket string,
	debounce time.Duration,
	logger *zap.Logger,
) *service {
	s := &service{
		repository: repository,
		files:      files,
		bucket:     bucket,
		logger:     logger,
		all:        []brand.Summary{},
	}

	s.Store = entitystore.New(
		s.fetchPage,
		notifier,
		entitystore.Config{
			Debounce:  debounce,
			Translate: apperror.ReferencedTranslator(ReferencedMessage),
		},
		logger,
	)

	return s
}

func (s *service) fetchPage(ctx context.Context, q listing.Query) ([]brand.Brand, int, error) {
	brands, total, err := s.repository.GetPage(ctx, q)
	if err != nil {
		s.logger.Error("unexpected error when fetching brands", zap.Error(err))
		return nil, 0, err
	}

	return brands, total, nil
}

// FetchAllItems loads every brand for pickers and caches the result.
func (s *service) FetchAllItems(ctx context.Context) ([]brand.Summary, error) {
	var (
		all []brand.Summary
		err error
	)

	s.Track(func() {
		all, err = s.repository.GetAll(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("unexpected error when fetching all brands", zap.Error(err))
		s.all = []brand.Summary{}
		return nil, s.Report(err)
	}

	s.all = all

	return all, nil
}

func (s *service) AllItems() []brand.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]brand.Summary(nil), s.all...)
}

func (s *service) CreateItem(ctx context.Context, in brand.CreateInput) (*brand.Brand, error) {
	return entitystore.Perform(ctx, s.Store, CreatedMessage, func(ctx context.Context) (*brand.Brand, error) {
		image, err := s.upload(ctx, in.ImageFile)
		if err != nil {
			return nil, err
		}

		created, err := s.repository.Create(ctx, brand.Brand{
			Name:        in.Name,
			Description: in.Description,
			Image:       image,
		})
		if err != nil {
			s.logger.Error("unexpected error when creating brand", zap.Error(err))
			s.discard(ctx, image)
			return nil, err
		}

		return created, nil
	})
}

// UpdateItem replaces the image in three steps: the old object is deleted,
// the new one uploaded, then the row is written. A failed upload leaves the
// row pointing at the deleted object.
func (s *service) UpdateItem(ctx context.Context, in brand.UpdateInput) (*brand.Brand, error) {
	return entitystore.Perform(ctx, s.Store, UpdatedMessage, func(ctx context.Context) (*brand.Brand, error) {
		image := in.CurrentImage
		var uploaded *string

		if !in.ImageFile.Empty() {
			if in.CurrentImage != nil && *in.CurrentImage != "" {
				s.files.DeleteFile(ctx, *in.CurrentImage, s.bucket)
			}

			var err error
			uploaded, err = s.upload(ctx, in.ImageFile)
			if err != nil {
				return nil, err
			}
			image = uploaded
		}

		updated, err := s.repository.Update(ctx, brand.Brand{
			ID:          in.ID,
			Name:        in.Name,
			Description: in.Description,
			Image:       image,
		})
		if err != nil {
			s.discard(ctx, uploaded)

			if errors.Is(err, db.ErrBrandNotFound) {
				return nil, apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when updating brand", zap.Error(err))
			return nil, err
		}

		return updated, nil
	})
}

// DeleteItem removes the row first so a brand still used by products keeps its image.
func (s *service) DeleteItem(ctx context.Context, id int) error {
	_, err := entitystore.Perform(ctx, s.Store, DeletedMessage, func(ctx context.Context) (struct{}, error) {
		item, ok := s.Find(func(b brand.Brand) bool { return b.ID == id })
		if !ok {
			found, err := s.repository.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, db.ErrBrandNotFound) {
					return struct{}{}, ErrItemNotFound
				}

				s.logger.Error("unexpected error when fetching brand by id", zap.Error(err))
				return struct{}{}, err
			}
			item = *found
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			if errors.Is(err, db.ErrBrandNotFound) {
				return struct{}{}, ErrItemNotFound
			}

			if !apperror.IsForeignKeyViolation(err) {
				s.logger.Error("unexpected error when deleting brand", zap.Error(err))
			}
			return struct{}{}, err
		}

		if item.Image != nil {
			s.files.DeleteFile(ctx, *item.Image, s.bucket)
		}

		return struct{}{}, nil
	})

	return err
}

func (s *service) RemoveItemImage(ctx context.Context, id int, imageURL string) (*brand.Brand, error) {
	return entitystore.Perform(ctx, s.Store, ImageRemovedText, func(ctx context.Context) (*brand.Brand, error) {
		if imageURL == "" {
			return nil, ErrNoImageURL
		}

		s.files.DeleteFile(ctx, imageURL, s.bucket)

		updated, err := s.repository.SetImage(ctx, id, nil)
		if err != nil {
			if errors.Is(err, db.ErrBrandNotFound) {
				return nil, apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when removing brand image", zap.Error(err))
			return nil, err
		}

		return updated, nil
	})
}

func (s *service) upload(ctx context.Context, file *filemanager.File) (*string, error) {
	if file.Empty() {
		return nil, nil
	}

	url, err := s.files.UploadFile(ctx, *file, s.bucket)
	if err != nil {
		return nil, err
	}

	return &url, nil
}

func (s *service) discard(ctx context.Context, image *string) {
	if image != nil {
		s.files.DeleteFile(context.WithoutCancel(ctx), *image, s.bucket)
	}
}
