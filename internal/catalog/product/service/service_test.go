package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/catalog/product"
	"github.com/xw1nchester/protech-admin/internal/catalog/product/db"
	mockproductservice "github.com/xw1nchester/protech-admin/internal/catalog/product/service/mocks"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/notification"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	Bucket   = "pro-tech-product-images"
	OldImage = "http://cdn/pro-tech-product-images/1-old.png"
	NewImage = "http://cdn/pro-tech-product-images/2-new.png"
	Gallery1 = "http://cdn/pro-tech-product-images/3-g1.png"
	Gallery2 = "http://cdn/pro-tech-product-images/4-g2.png"
)

var (
	ErrUnexpected  = errors.New("unexpected error")
	ErrFKViolation = &pgconn.PgError{Code: apperror.ForeignKeyViolationCode, Message: "violates foreign key constraint"}
)

func ptr[T any](v T) *T {
	return &v
}

func imageFile(name string) *filemanager.File {
	return &filemanager.File{Name: name, Size: 3, Reader: strings.NewReader("png")}
}

type fixture struct {
	repo      *mockproductservice.MockRepository
	files     *mockproductservice.MockFileManager
	navigator *mockproductservice.MockNavigator
	hub       *notification.Hub
	svc       *service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mockproductservice.NewMockRepository(ctrl),
		files:     mockproductservice.NewMockFileManager(ctrl),
		navigator: mockproductservice.NewMockNavigator(ctrl),
		hub:       notification.NewHub(zap.NewNop()),
	}
	f.svc = New(f.repo, f.files, f.hub, f.navigator, Bucket, 0, zap.NewNop())

	t.Cleanup(func() {
		f.svc.Close()
		f.hub.Close()
	})

	return f
}

func TestCreateItem(t *testing.T) {
	type mockBehavior func(f *fixture)

	fields := product.Fields{
		Name:           "Pump",
		PartNumber:     "P-100",
		Specifications: []product.Specification{{Label: "Power", Value: "5kW"}},
		IsAvailable:    true,
		BrandID:        ptr(2),
	}

	tests := []struct {
		name          string
		input         product.CreateInput
		mockBehavior  mockBehavior
		expectedError string
		expectedColor notification.Color
	}{
		{
			name:          "image required",
			input:         product.CreateInput{Fields: fields},
			mockBehavior:  func(f *fixture) {},
			expectedError: ErrImageRequired.Error(),
			expectedColor: notification.ColorError,
		},
		{
			name: "ok with gallery",
			input: product.CreateInput{
				Fields:       fields,
				ImageFile:    imageFile("main.png"),
				GalleryFiles: []filemanager.File{*imageFile("g1.png"), *imageFile("g2.png")},
			},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil)
				f.files.EXPECT().UploadFiles(gomock.Any(), gomock.Len(2), Bucket).Return([]string{Gallery1, Gallery2}, nil)
				f.repo.EXPECT().
					Create(gomock.Any(), product.Product{
						Name:           "Pump",
						PartNumber:     "P-100",
						Specifications: fields.Specifications,
						IsAvailable:    true,
						BrandID:        ptr(2),
						Image:          ptr(NewImage),
						GalleryImages:  []string{Gallery1, Gallery2},
					}).
					Return(&product.Product{ID: 7, Name: "Pump"}, nil)
				f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
				f.navigator.EXPECT().Navigate(CreatedRoute)
			},
			expectedColor: notification.ColorSuccess,
		},
		{
			name: "gallery upload error removes main image",
			input: product.CreateInput{
				Fields:       fields,
				ImageFile:    imageFile("main.png"),
				GalleryFiles: []filemanager.File{*imageFile("g1.png")},
			},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil)
				f.files.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), Bucket).Return(nil, errors.New("Upload failed"))
				f.files.EXPECT().DeleteFiles(gomock.Any(), []string{NewImage}, Bucket)
			},
			expectedError: "Upload failed",
			expectedColor: notification.ColorError,
		},
		{
			name: "record write error removes every upload",
			input: product.CreateInput{
				Fields:       fields,
				ImageFile:    imageFile("main.png"),
				GalleryFiles: []filemanager.File{*imageFile("g1.png")},
			},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil)
				f.files.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), Bucket).Return([]string{Gallery1}, nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, ErrUnexpected)
				f.files.EXPECT().DeleteFiles(gomock.Any(), []string{NewImage, Gallery1}, Bucket)
			},
			expectedError: ErrUnexpected.Error(),
			expectedColor: notification.ColorError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockBehavior(f)

			created, err := f.svc.CreateItem(context.Background(), tt.input)

			if tt.expectedError != "" {
				require.EqualError(t, err, tt.expectedError)
				require.Nil(t, created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, CreatedMessage, f.hub.Snackbar().Text)
			}

			assert.Equal(t, tt.expectedColor, f.hub.Snackbar().Color)
			assert.False(t, f.svc.Loading())
		})
	}
}

func TestUpdateItem(t *testing.T) {
	t.Run("replace image and append gallery", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket),
			f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil),
			f.files.EXPECT().UploadFiles(gomock.Any(), gomock.Len(1), Bucket).Return([]string{Gallery2}, nil),
			f.repo.EXPECT().
				Update(gomock.Any(), product.Product{
					ID:            1,
					Name:          "Pump",
					Image:         ptr(NewImage),
					GalleryImages: []string{Gallery1, Gallery2},
				}).
				Return(&product.Product{ID: 1, Name: "Pump", Image: ptr(NewImage), GalleryImages: []string{Gallery1, Gallery2}}, nil),
			f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil),
		)

		updated, err := f.svc.UpdateItem(context.Background(), product.UpdateInput{
			Fields:         product.Fields{Name: "Pump"},
			ID:             1,
			CurrentImage:   ptr(OldImage),
			CurrentGallery: []string{Gallery1},
			ImageFile:      imageFile("new.png"),
			GalleryFiles:   []filemanager.File{*imageFile("g2.png")},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{Gallery1, Gallery2}, updated.GalleryImages)
		assert.Equal(t, UpdatedMessage, f.hub.Snackbar().Text)
	})

	t.Run("not found discards uploads", func(t *testing.T) {
		f := newFixture(t)

		f.files.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), Bucket).Return([]string{Gallery2}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, db.ErrProductNotFound)
		f.files.EXPECT().DeleteFiles(gomock.Any(), []string{Gallery2}, Bucket)

		_, err := f.svc.UpdateItem(context.Background(), product.UpdateInput{
			Fields:       product.Fields{Name: "Pump"},
			ID:           1,
			GalleryFiles: []filemanager.File{*imageFile("g2.png")},
		})
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, notification.ColorError, f.hub.Snackbar().Color)
	})
}

func TestDeleteItem(t *testing.T) {
	type mockBehavior func(f *fixture)

	stored := &product.Product{ID: 1, Image: ptr(OldImage), GalleryImages: []string{Gallery1}}

	tests := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError string
	}{
		{
			name: "ok",
			mockBehavior: func(f *fixture) {
				gomock.InOrder(
					f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil),
					f.repo.EXPECT().Delete(gomock.Any(), 1).Return(nil),
					f.files.EXPECT().DeleteFiles(gomock.Any(), []string{OldImage, Gallery1}, Bucket),
				)
				f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
			},
		},
		{
			name: "not found",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, db.ErrProductNotFound)
			},
			expectedError: ErrItemNotFound.Error(),
		},
		{
			name: "referenced keeps images",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
				f.repo.EXPECT().Delete(gomock.Any(), 1).Return(ErrFKViolation)
			},
			expectedError: ReferencedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockBehavior(f)

			err := f.svc.DeleteItem(context.Background(), 1)

			if tt.expectedError != "" {
				require.EqualError(t, err, tt.expectedError)
				assert.Equal(t, tt.expectedError, f.hub.Snackbar().Text)
			} else {
				require.NoError(t, err)
				assert.Equal(t, DeletedMessage, f.hub.Snackbar().Text)
			}
		})
	}
}

func TestRemoveGalleryImage(t *testing.T) {
	gallery := []string{Gallery1, Gallery2}

	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)

		f.files.EXPECT().DeleteFile(gomock.Any(), Gallery1, Bucket)
		f.repo.EXPECT().SetGallery(gomock.Any(), 1, []string{Gallery2}).Return(nil)
		f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		remaining, err := f.svc.RemoveGalleryImage(context.Background(), 1, gallery, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{Gallery2}, remaining)
		assert.Equal(t, []string{Gallery1, Gallery2}, gallery)
		assert.Equal(t, ImageRemovedText, f.hub.Snackbar().Text)
	})

	t.Run("index out of range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RemoveGalleryImage(context.Background(), 1, gallery, 5)
		require.EqualError(t, err, ErrNoImageURL.Error())
	})
}

func TestRemoveItemImage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)

		f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket)
		f.repo.EXPECT().SetImage(gomock.Any(), 1, (*string)(nil)).Return(nil)
		f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		require.NoError(t, f.svc.RemoveItemImage(context.Background(), 1, OldImage))
	})

	t.Run("empty url", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.RemoveItemImage(context.Background(), 1, "")
		require.EqualError(t, err, ErrNoImageURL.Error())
	})
}

func TestFetchItemByID(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)

		detail := &product.Detail{
			Product:  product.Product{ID: 1, Name: "Pump"},
			Category: &category.Category{ID: 3, Name: "Pumps"},
		}
		f.repo.EXPECT().GetDetail(gomock.Any(), 1).Return(detail, nil)

		got, err := f.svc.FetchItemByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, detail, got)
		assert.False(t, f.svc.Loading())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), 1).Return(nil, db.ErrProductNotFound)

		_, err := f.svc.FetchItemByID(context.Background(), 1)
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, notification.ColorError, f.hub.Snackbar().Color)
	})
}
