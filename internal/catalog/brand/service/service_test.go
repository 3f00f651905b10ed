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
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand/db"
	mockbrandservice "github.com/xw1nchester/protech-admin/internal/catalog/brand/service/mocks"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/notification"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	Bucket   = "pro-tech-brand-images"
	OldImage = "http://cdn/pro-tech-brand-images/1-old.png"
	NewImage = "http://cdn/pro-tech-brand-images/2-new.png"
)

var (
	ErrUnexpected  = errors.New("unexpected error")
	ErrFKViolation = &pgconn.PgError{Code: apperror.ForeignKeyViolationCode, Message: "update or delete violates foreign key constraint"}
)

func ptr[T any](v T) *T {
	return &v
}

func imageFile(name string) *filemanager.File {
	return &filemanager.File{Name: name, Size: 3, Reader: strings.NewReader("png")}
}

type fixture struct {
	repo  *mockbrandservice.MockRepository
	files *mockbrandservice.MockFileManager
	hub   *notification.Hub
	svc   *service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mockbrandservice.NewMockRepository(ctrl),
		files: mockbrandservice.NewMockFileManager(ctrl),
		hub:   notification.NewHub(zap.NewNop()),
	}
	f.svc = New(f.repo, f.files, f.hub, Bucket, 0, zap.NewNop())

	t.Cleanup(func() {
		f.svc.Close()
		f.hub.Close()
	})

	return f
}

func TestCreateItem(t *testing.T) {
	type mockBehavior func(f *fixture)

	tests := []struct {
		name          string
		input         brand.CreateInput
		mockBehavior  mockBehavior
		expectedError string
		expectedText  string
		expectedColor notification.Color
	}{
		{
			name:  "without image",
			input: brand.CreateInput{Name: "Acme"},
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().
					Create(gomock.Any(), brand.Brand{Name: "Acme"}).
					Return(&brand.Brand{ID: 1, Name: "Acme"}, nil)
				f.repo.EXPECT().
					GetPage(gomock.Any(), gomock.Any()).
					Return([]brand.Brand{{ID: 1, Name: "Acme"}}, 1, nil)
			},
			expectedText:  CreatedMessage,
			expectedColor: notification.ColorSuccess,
		},
		{
			name:  "with image",
			input: brand.CreateInput{Name: "Acme", ImageFile: imageFile("logo.png")},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil)
				f.repo.EXPECT().
					Create(gomock.Any(), brand.Brand{Name: "Acme", Image: ptr(NewImage)}).
					Return(&brand.Brand{ID: 1, Name: "Acme", Image: ptr(NewImage)}, nil)
				f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
			},
			expectedText:  CreatedMessage,
			expectedColor: notification.ColorSuccess,
		},
		{
			name:  "upload error",
			input: brand.CreateInput{Name: "Acme", ImageFile: imageFile("logo.png")},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return("", errors.New("Upload failed"))
			},
			expectedError: "Upload failed",
			expectedText:  "Upload failed",
			expectedColor: notification.ColorError,
		},
		{
			name:  "record write error removes uploaded image",
			input: brand.CreateInput{Name: "Acme", ImageFile: imageFile("logo.png")},
			mockBehavior: func(f *fixture) {
				f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, ErrUnexpected)
				f.files.EXPECT().DeleteFile(gomock.Any(), NewImage, Bucket)
			},
			expectedError: ErrUnexpected.Error(),
			expectedText:  ErrUnexpected.Error(),
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
			}

			snackbar := f.hub.Snackbar()
			assert.Equal(t, tt.expectedText, snackbar.Text)
			assert.Equal(t, tt.expectedColor, snackbar.Color)
			assert.False(t, f.svc.Loading())
		})
	}
}

func TestUpdateItem(t *testing.T) {
	t.Run("replace image", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket),
			f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return(NewImage, nil),
			f.repo.EXPECT().
				Update(gomock.Any(), brand.Brand{ID: 1, Name: "Acme", Image: ptr(NewImage)}).
				Return(&brand.Brand{ID: 1, Name: "Acme", Image: ptr(NewImage)}, nil),
			f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil),
		)

		updated, err := f.svc.UpdateItem(context.Background(), brand.UpdateInput{
			ID:           1,
			Name:         "Acme",
			CurrentImage: ptr(OldImage),
			ImageFile:    imageFile("new.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, NewImage, *updated.Image)
		assert.Equal(t, UpdatedMessage, f.hub.Snackbar().Text)
	})

	t.Run("upload failure leaves record untouched", func(t *testing.T) {
		f := newFixture(t)

		f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket)
		f.files.EXPECT().UploadFile(gomock.Any(), gomock.Any(), Bucket).Return("", errors.New("Upload failed"))

		_, err := f.svc.UpdateItem(context.Background(), brand.UpdateInput{
			ID:           1,
			Name:         "Acme",
			CurrentImage: ptr(OldImage),
			ImageFile:    imageFile("new.png"),
		})
		require.EqualError(t, err, "Upload failed")
		assert.Equal(t, notification.ColorError, f.hub.Snackbar().Color)
	})

	t.Run("keeps current image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Update(gomock.Any(), brand.Brand{ID: 1, Name: "Acme 2", Image: ptr(OldImage)}).
			Return(&brand.Brand{ID: 1, Name: "Acme 2", Image: ptr(OldImage)}, nil)
		f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		_, err := f.svc.UpdateItem(context.Background(), brand.UpdateInput{ID: 1, Name: "Acme 2", CurrentImage: ptr(OldImage)})
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, db.ErrBrandNotFound)

		_, err := f.svc.UpdateItem(context.Background(), brand.UpdateInput{ID: 9, Name: "Acme"})
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestDeleteItem(t *testing.T) {
	cached := []brand.Brand{{ID: 1, Name: "Acme", Image: ptr(OldImage)}}

	type mockBehavior func(f *fixture)

	tests := []struct {
		name          string
		id            int
		mockBehavior  mockBehavior
		expectedError string
		expectedText  string
	}{
		{
			name: "cached item",
			id:   1,
			mockBehavior: func(f *fixture) {
				gomock.InOrder(
					f.repo.EXPECT().Delete(gomock.Any(), 1).Return(nil),
					f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket),
					f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil),
				)
			},
			expectedText: DeletedMessage,
		},
		{
			name: "still referenced by products",
			id:   1,
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), 1).Return(ErrFKViolation)
			},
			expectedError: ReferencedMessage,
			expectedText:  ReferencedMessage,
		},
		{
			name: "looked up in backend",
			id:   2,
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), 2).Return(&brand.Brand{ID: 2, Name: "Globex"}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), 2).Return(nil)
				f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
			},
			expectedText: DeletedMessage,
		},
		{
			name: "not found",
			id:   3,
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, db.ErrBrandNotFound)
			},
			expectedError: "Item not found for deletion.",
			expectedText:  "Item not found for deletion.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(cached, 1, nil)
			require.NoError(t, f.svc.FetchItems(context.Background(), nil))

			tt.mockBehavior(f)

			err := f.svc.DeleteItem(context.Background(), tt.id)

			if tt.expectedError != "" {
				require.EqualError(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expectedText, f.hub.Snackbar().Text)
		})
	}
}

func TestDeleteItemNotFoundIsNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, db.ErrBrandNotFound)

	err := f.svc.DeleteItem(context.Background(), 3)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRemoveItemImage(t *testing.T) {
	t.Run("no url", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RemoveItemImage(context.Background(), 1, "")
		require.EqualError(t, err, "No image URL provided to delete.")
		assert.Equal(t, notification.ColorError, f.hub.Snackbar().Color)
	})

	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.files.EXPECT().DeleteFile(gomock.Any(), OldImage, Bucket),
			f.repo.EXPECT().SetImage(gomock.Any(), 1, nil).Return(&brand.Brand{ID: 1, Name: "Acme"}, nil),
			f.repo.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, 0, nil),
		)

		updated, err := f.svc.RemoveItemImage(context.Background(), 1, OldImage)
		require.NoError(t, err)
		assert.Nil(t, updated.Image)
		assert.Equal(t, ImageRemovedText, f.hub.Snackbar().Text)
	})
}

func TestFetchAllItems(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any()).Return([]brand.Summary{{ID: 1, Name: "Acme"}}, nil)

	all, err := f.svc.FetchAllItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, all, f.svc.AllItems())

	f.repo.EXPECT().GetAll(gomock.Any()).Return(nil, ErrUnexpected)

	_, err = f.svc.FetchAllItems(context.Background())
	require.Error(t, err)
	assert.Empty(t, f.svc.AllItems())
	assert.Equal(t, ErrUnexpected.Error(), f.hub.Snackbar().Text)
}

func TestFetchItemsUsesSearch(t *testing.T) {
	f := newFixture(t)

	search := "acme"
	f.repo.EXPECT().
		GetPage(gomock.Any(), listing.Query{Offset: 0, Limit: 10, Search: "acme", Sort: listing.SortBy{Key: "created_at", Order: listing.Desc}}).
		Return([]brand.Brand{{ID: 1, Name: "Acme"}}, 1, nil)

	require.NoError(t, f.svc.FetchItems(context.Background(), &listing.Override{Search: &search}))
	assert.Equal(t, 1, f.svc.Total())
}
