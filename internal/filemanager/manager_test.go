package filemanager_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	mockfilemanager "github.com/xw1nchester/protech-admin/internal/filemanager/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const bucket = "pro-tech-brand-images"

func newFile(name string) filemanager.File {
	return filemanager.File{Name: name, Size: 3, ContentType: "image/png", Reader: strings.NewReader("png")}
}

func hasSuffix(suffix string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.HasSuffix(s, suffix)
	})
}

func TestObjectName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "1700000000123-my-photo-1.png", filemanager.ObjectName("my  photo\t1.png", at))
	assert.Equal(t, "1700000000123-logo.png", filemanager.ObjectName("logo.png", at))
}

func TestObjectNameFromURL(t *testing.T) {
	name, err := filemanager.ObjectNameFromURL("http://localhost:9000/pro-tech-brand-images/1700-logo.png")
	require.NoError(t, err)
	assert.Equal(t, "1700-logo.png", name)

	_, err = filemanager.ObjectNameFromURL("http://localhost:9000/")
	assert.Error(t, err)
}

func TestManager_UploadFile(t *testing.T) {
	type mockBehavior func(s *mockfilemanager.MockStorage)

	tests := []struct {
		name         string
		file         filemanager.File
		bucket       string
		mockBehavior mockBehavior
		want         string
		wantErr      string
	}{
		{
			name:         "missing file",
			file:         filemanager.File{},
			bucket:       bucket,
			mockBehavior: func(s *mockfilemanager.MockStorage) {},
			wantErr:      "File and bucket name are required.",
		},
		{
			name:         "missing bucket",
			file:         newFile("logo.png"),
			mockBehavior: func(s *mockfilemanager.MockStorage) {},
			wantErr:      "File and bucket name are required.",
		},
		{
			name:   "storage failure",
			file:   newFile("logo.png"),
			bucket: bucket,
			mockBehavior: func(s *mockfilemanager.MockStorage) {
				s.EXPECT().Put(gomock.Any(), bucket, hasSuffix("-logo.png"), gomock.Any()).Return(errors.New("bucket not found"))
			},
			wantErr: "bucket not found",
		},
		{
			name:   "ok",
			file:   newFile("my logo.png"),
			bucket: bucket,
			mockBehavior: func(s *mockfilemanager.MockStorage) {
				s.EXPECT().Put(gomock.Any(), bucket, hasSuffix("-my-logo.png"), gomock.Any()).Return(nil)
				s.EXPECT().URL(bucket, hasSuffix("-my-logo.png")).Return("http://cdn/pro-tech-brand-images/1-my-logo.png")
			},
			want: "http://cdn/pro-tech-brand-images/1-my-logo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := mockfilemanager.NewMockStorage(ctrl)
			tt.mockBehavior(storage)

			m := filemanager.New(storage, zap.NewNop())

			got, err := m.UploadFile(context.Background(), tt.file, tt.bucket)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantErr, m.LastError())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, m.LastError())
			assert.False(t, m.Busy())
		})
	}
}

func TestManager_UploadFilesPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mockfilemanager.NewMockStorage(ctrl)

	storage.EXPECT().Put(gomock.Any(), bucket, hasSuffix("-ok.png"), gomock.Any()).Return(nil)
	storage.EXPECT().URL(bucket, hasSuffix("-ok.png")).Return("http://cdn/b/1-ok.png")
	storage.EXPECT().Put(gomock.Any(), bucket, hasSuffix("-bad.png"), gomock.Any()).Return(errors.New("disk full"))
	storage.EXPECT().Remove(gomock.Any(), bucket, "1-ok.png").Return(nil)

	m := filemanager.New(storage, zap.NewNop())

	_, err := m.UploadFiles(
		context.Background(),
		[]filemanager.File{newFile("ok.png"), newFile("bad.png")},
		bucket,
	)
	require.EqualError(t, err, "disk full")
	assert.False(t, m.Busy())
}

func TestManager_DeleteFileIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mockfilemanager.NewMockStorage(ctrl)
	storage.EXPECT().Remove(gomock.Any(), bucket, "1-logo.png").Return(errors.New("not found"))

	m := filemanager.New(storage, zap.NewNop())

	assert.NotPanics(t, func() {
		m.DeleteFile(context.Background(), "http://cdn/pro-tech-brand-images/1-logo.png", bucket)
		m.DeleteFile(context.Background(), "", bucket)
	})
	assert.Equal(t, "not found", m.LastError())
}
