package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/catalog/category/db"
	"github.com/xw1nchester/protech-admin/internal/catalog/entitystore"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/pkg/transactor"
	"github.com/xw1nchester/protech-admin/pkg/utils"
	"go.uber.org/zap"
)

const (
	ReferencedMessage = "Cannot delete: This category is still assigned to one or more products."
	CreatedMessage    = "Category created successfully!"
	UpdatedMessage    = "Category updated successfully!"
	DeletedMessage    = "Category deleted."
	ImageRemovedText  = "Image removed successfully."
)

var (
	ErrCategoryNotFound = apperror.NewNotFoundErr("Category not found for deletion.")
	ErrNoImageURL       = apperror.NewAppError("No image URL provided to delete.")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcategoryservice
type Repository interface {
	GetPage(ctx context.Context, q listing.Query) ([]category.Category, int, error)
	GetAll(ctx context.Context) ([]category.Summary, error)
	GetByID(ctx context.Context, id int) (*category.Category, error)
	Create(ctx context.Context, data category.Category) (int, error)
	Update(ctx context.Context, data category.Category) error
	SetImage(ctx context.Context, id int, image *string) error
	Delete(ctx context.Context, id int) error
	ReplaceBrands(ctx context.Context, categoryID int, brandIDs []int) error
}

type FileManager interface {
	UploadFile(ctx context.Context, file filemanager.File, bucket string) (string, error)
	DeleteFile(ctx context.Context, fileURL, bucket string)
}

// BrandCatalog is refreshed after every category page load so brand pickers
// stay current.
type BrandCatalog interface {
	FetchAllItems(ctx context.Context) ([]brand.Summary, error)
}

type service struct {
	*entitystore.Store[category.Category]

	repository Repository
	files      FileManager
	brands     BrandCatalog
	txManager  transactor.Manager
	bucket     string
	logger     *zap.Logger

	mu  sync.Mutex
	all []category.Summary
}

func New(
	repository Repository,
	files FileManager,
	brands BrandCatalog,
	txManager transactor.Manager,
	notifier entitystore.Notifier,
	bucket string,
	debounce time.Duration,
	logger *zap.Logger,
) *service {
	s := &service{
		repository: repository,
		files:      files,
		brands:     brands,
		txManager:  txManager,
		bucket:     bucket,
		logger:     logger,
		all:        []category.Summary{},
	}

	s.Store = entitystore.New(
		s.fetchPage,
		notifier,
		entitystore.Config{
			Debounce:   debounce,
			Translate:  apperror.ReferencedTranslator(ReferencedMessage),
			AfterFetch: s.refreshBrands,
		},
		logger,
	)

	return s
}

func (s *service) fetchPage(ctx context.Context, q listing.Query) ([]category.Category, int, error) {
	categories, total, err := s.repository.GetPage(ctx, q)
	if err != nil {
		s.logger.Error("unexpected error when fetching categories", zap.Error(err))
		return nil, 0, err
	}

	return categories, total, nil
}

func (s *service) refreshBrands(ctx context.Context) {
	if _, err := s.brands.FetchAllItems(ctx); err != nil {
		s.logger.Debug("brand list refresh failed", zap.Error(err))
	}
}

// FetchAllItems loads the autocomplete list of categories with their brands.
func (s *service) FetchAllItems(ctx context.Context) ([]category.Summary, error) {
	var (
		all []category.Summary
		err error
	)

	s.Track(func() {
		all, err = s.repository.GetAll(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("unexpected error when fetching all categories", zap.Error(err))
		s.all = []category.Summary{}
		return nil, s.Report(err)
	}

	s.all = all

	return all, nil
}

func (s *service) AllItems() []category.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]category.Summary(nil), s.all...)
}

// save writes the category row and its brand set in one transaction and
// returns the stored category.
func (s *service) save(ctx context.Context, data category.Category, brandIDs []int) (*category.Category, error) {
	var saved *category.Category

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		id := data.ID

		if id == 0 {
			var err error
			if id, err = s.repository.Create(ctx, data); err != nil {
				return err
			}
		} else if err := s.repository.Update(ctx, data); err != nil {
			return err
		}

		if err := s.repository.ReplaceBrands(ctx, id, utils.RemoveDuplicates(brandIDs)); err != nil {
			return err
		}

		var err error
		saved, err = s.repository.GetByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (s *service) CreateItem(ctx context.Context, in category.CreateInput) (*category.Category, error) {
	return entitystore.Perform(ctx, s.Store, CreatedMessage, func(ctx context.Context) (*category.Category, error) {
		image, err := s.upload(ctx, in.ImageFile)
		if err != nil {
			return nil, err
		}

		created, err := s.save(ctx, category.Category{
			Name:        in.Name,
			Description: in.Description,
			Image:       image,
		}, in.BrandIDs)
		if err != nil {
			s.logger.Error("unexpected error when creating category", zap.Error(err))
			s.discard(ctx, image)
			return nil, err
		}

		return created, nil
	})
}

func (s *service) UpdateItem(ctx context.Context, in category.UpdateInput) (*category.Category, error) {
	return entitystore.Perform(ctx, s.Store, UpdatedMessage, func(ctx context.Context) (*category.Category, error) {
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

		updated, err := s.save(ctx, category.Category{
			ID:          in.ID,
			Name:        in.Name,
			Description: in.Description,
			Image:       image,
		}, in.BrandIDs)
		if err != nil {
			s.discard(ctx, uploaded)

			if errors.Is(err, db.ErrCategoryNotFound) {
				return nil, apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when updating category", zap.Error(err))
			return nil, err
		}

		return updated, nil
	})
}

func (s *service) DeleteItem(ctx context.Context, id int) error {
	_, err := entitystore.Perform(ctx, s.Store, DeletedMessage, func(ctx context.Context) (struct{}, error) {
		item, ok := s.Find(func(c category.Category) bool { return c.ID == id })
		if !ok {
			found, err := s.repository.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, db.ErrCategoryNotFound) {
					return struct{}{}, ErrCategoryNotFound
				}

				s.logger.Error("unexpected error when fetching category by id", zap.Error(err))
				return struct{}{}, err
			}
			item = *found
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			if errors.Is(err, db.ErrCategoryNotFound) {
				return struct{}{}, ErrCategoryNotFound
			}

			if !apperror.IsForeignKeyViolation(err) {
				s.logger.Error("unexpected error when deleting category", zap.Error(err))
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

func (s *service) RemoveItemImage(ctx context.Context, id int, imageURL string) (*category.Category, error) {
	return entitystore.Perform(ctx, s.Store, ImageRemovedText, func(ctx context.Context) (*category.Category, error) {
		if imageURL == "" {
			return nil, ErrNoImageURL
		}

		s.files.DeleteFile(ctx, imageURL, s.bucket)

		if err := s.repository.SetImage(ctx, id, nil); err != nil {
			if errors.Is(err, db.ErrCategoryNotFound) {
				return nil, apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when removing category image", zap.Error(err))
			return nil, err
		}

		updated, err := s.repository.GetByID(ctx, id)
		if err != nil {
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
