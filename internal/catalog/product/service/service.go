package service

import (
	"context"
	"errors"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/entitystore"
	"github.com/xw1nchester/protech-admin/internal/catalog/product"
	"github.com/xw1nchester/protech-admin/internal/catalog/product/db"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/pkg/utils"
	"go.uber.org/zap"
)

const (
	ReferencedMessage = "Cannot delete: This item is still assigned to one or more products."
	CreatedMessage    = "Item created successfully!"
	UpdatedMessage    = "Item updated successfully!"
	DeletedMessage    = "Item deleted."
	ImageRemovedText  = "Image removed successfully."

	// CreatedRoute is where the UI goes after a product is created.
	CreatedRoute = "product"
)

var (
	ErrItemNotFound  = apperror.NewNotFoundErr("Item not found for deletion.")
	ErrNoImageURL    = apperror.NewAppError("No image URL provided to delete.")
	ErrImageRequired = apperror.NewAppError("A main image is required.")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductservice
type Repository interface {
	GetPage(ctx context.Context, q listing.Query) ([]product.Product, int, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	GetDetail(ctx context.Context, id int) (*product.Detail, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) (*product.Product, error)
	SetImage(ctx context.Context, id int, image *string) error
	SetGallery(ctx context.Context, id int, images []string) error
	Delete(ctx context.Context, id int) error
}

type FileManager interface {
	UploadFile(ctx context.Context, file filemanager.File, bucket string) (string, error)
	UploadFiles(ctx context.Context, files []filemanager.File, bucket string) ([]string, error)
	DeleteFile(ctx context.Context, fileURL, bucket string)
	DeleteFiles(ctx context.Context, fileURLs []string, bucket string)
}

type Navigator interface {
	Navigate(route string)
}

type service struct {
	*entitystore.Store[product.Product]

	repository Repository
	files      FileManager
	navigator  Navigator
	bucket     string
	logger     *zap.Logger
}

func New(
	repository Repository,
	files FileManager,
	notifier entitystore.Notifier,
	navigator Navigator,
	bucket string,
	debounce time.Duration,
	logger *zap.Logger,
) *service {
	s := &service{
		repository: repository,
		files:      files,
		navigator:  navigator,
		bucket:     bucket,
		logger:     logger,
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

func (s *service) fetchPage(ctx context.Context, q listing.Query) ([]product.Product, int, error) {
	products, total, err := s.repository.GetPage(ctx, q)
	if err != nil {
		s.logger.Error("unexpected error when fetching products", zap.Error(err))
		return nil, 0, err
	}

	return products, total, nil
}

func (s *service) FetchItemByID(ctx context.Context, id int) (*product.Detail, error) {
	var (
		detail *product.Detail
		err    error
	)

	s.Track(func() {
		detail, err = s.repository.GetDetail(ctx, id)
	})

	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, s.Report(apperror.ErrNotFound)
		}

		s.logger.Error("unexpected error when fetching product by id", zap.Error(err))
		return nil, s.Report(err)
	}

	return detail, nil
}

func (s *service) CreateItem(ctx context.Context, in product.CreateInput) (*product.Product, error) {
	created, err := entitystore.Perform(ctx, s.Store, CreatedMessage, func(ctx context.Context) (*product.Product, error) {
		if in.ImageFile.Empty() {
			return nil, ErrImageRequired
		}

		image, err := s.files.UploadFile(ctx, *in.ImageFile, s.bucket)
		if err != nil {
			return nil, err
		}

		galleryImages, err := s.uploadGallery(ctx, in.GalleryFiles)
		if err != nil {
			s.discard(ctx, []string{image})
			return nil, err
		}

		created, err := s.repository.Create(ctx, product.Product{
			Name:           in.Name,
			PartNumber:     in.PartNumber,
			Description:    in.Description,
			Specifications: in.Specifications,
			IsAvailable:    in.IsAvailable,
			Image:          &image,
			GalleryImages:  galleryImages,
			CategoryID:     in.CategoryID,
			BrandID:        in.BrandID,
		})
		if err != nil {
			s.logger.Error("unexpected error when creating product", zap.Error(err))
			s.discard(ctx, append([]string{image}, galleryImages...))
			return nil, err
		}

		return created, nil
	})
	if err != nil {
		return nil, err
	}

	s.navigator.Navigate(CreatedRoute)

	return created, nil
}

// UpdateItem replaces the main image when a new one is given and appends new
// gallery files to the current gallery.
func (s *service) UpdateItem(ctx context.Context, in product.UpdateInput) (*product.Product, error) {
	return entitystore.Perform(ctx, s.Store, UpdatedMessage, func(ctx context.Context) (*product.Product, error) {
		image := in.CurrentImage
		var uploaded []string

		if !in.ImageFile.Empty() {
			if in.CurrentImage != nil && *in.CurrentImage != "" {
				s.files.DeleteFile(ctx, *in.CurrentImage, s.bucket)
			}

			url, err := s.files.UploadFile(ctx, *in.ImageFile, s.bucket)
			if err != nil {
				return nil, err
			}

			image = &url
			uploaded = append(uploaded, url)
		}

		galleryImages, err := s.uploadGallery(ctx, in.GalleryFiles)
		if err != nil {
			s.discard(ctx, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, galleryImages...)

		updated, err := s.repository.Update(ctx, product.Product{
			ID:             in.ID,
			Name:           in.Name,
			PartNumber:     in.PartNumber,
			Description:    in.Description,
			Specifications: in.Specifications,
			IsAvailable:    in.IsAvailable,
			Image:          image,
			GalleryImages:  append(append([]string{}, in.CurrentGallery...), galleryImages...),
			CategoryID:     in.CategoryID,
			BrandID:        in.BrandID,
		})
		if err != nil {
			s.discard(ctx, uploaded)

			if errors.Is(err, db.ErrProductNotFound) {
				return nil, apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when updating product", zap.Error(err))
			return nil, err
		}

		return updated, nil
	})
}

func (s *service) DeleteItem(ctx context.Context, id int) error {
	_, err := entitystore.Perform(ctx, s.Store, DeletedMessage, func(ctx context.Context) (struct{}, error) {
		item, ok := s.Find(func(p product.Product) bool { return p.ID == id })
		if !ok {
			found, err := s.repository.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, db.ErrProductNotFound) {
					return struct{}{}, ErrItemNotFound
				}

				s.logger.Error("unexpected error when fetching product by id", zap.Error(err))
				return struct{}{}, err
			}
			item = *found
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			if errors.Is(err, db.ErrProductNotFound) {
				return struct{}{}, ErrItemNotFound
			}

			if !apperror.IsForeignKeyViolation(err) {
				s.logger.Error("unexpected error when deleting product", zap.Error(err))
			}
			return struct{}{}, err
		}

		s.files.DeleteFiles(ctx, item.Images(), s.bucket)

		return struct{}{}, nil
	})

	return err
}

func (s *service) RemoveItemImage(ctx context.Context, id int, imageURL string) error {
	_, err := entitystore.Perform(ctx, s.Store, ImageRemovedText, func(ctx context.Context) (struct{}, error) {
		if imageURL == "" {
			return struct{}{}, ErrNoImageURL
		}

		s.files.DeleteFile(ctx, imageURL, s.bucket)

		return struct{}{}, s.notFound(s.repository.SetImage(ctx, id, nil), "removing product image")
	})

	return err
}

// RemoveGalleryImage deletes gallery[index] and stores the gallery without it.
func (s *service) RemoveGalleryImage(ctx context.Context, id int, gallery []string, index int) ([]string, error) {
	return entitystore.Perform(ctx, s.Store, ImageRemovedText, func(ctx context.Context) ([]string, error) {
		if index < 0 || index >= len(gallery) || gallery[index] == "" {
			return nil, ErrNoImageURL
		}

		s.files.DeleteFile(ctx, gallery[index], s.bucket)

		remaining := utils.RemoveAt(gallery, index)

		if err := s.notFound(s.repository.SetGallery(ctx, id, remaining), "removing gallery image"); err != nil {
			return nil, err
		}

		return remaining, nil
	})
}

func (s *service) uploadGallery(ctx context.Context, files []filemanager.File) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	return s.files.UploadFiles(ctx, files, s.bucket)
}

func (s *service) discard(ctx context.Context, images []string) {
	if len(images) > 0 {
		s.files.DeleteFiles(context.WithoutCancel(ctx), images, s.bucket)
	}
}

func (s *service) notFound(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, db.ErrProductNotFound) {
		return apperror.ErrNotFound
	}

	s.logger.Error("unexpected error when "+action, zap.Error(err))

	return err
}
