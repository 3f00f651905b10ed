// Package editorupload stores files picked inside the rich-text editor.
package editorupload

import (
	"context"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"go.uber.org/zap"
)

var ErrUploadFailed = apperror.NewAppError("Upload failed")

//go:generate mockgen -source=adapter.go -destination=mocks/mock.go -package=mockeditorupload
type Uploader interface {
	UploadFile(ctx context.Context, file filemanager.File, bucket string) (string, error)
	LastError() string
}

// Result is the payload the editor expects back from an upload.
type Result struct {
	Default string `json:"default"`
}

type Adapter struct {
	files  Uploader
	bucket string
	logger *zap.Logger
}

func New(files Uploader, bucket string, logger *zap.Logger) *Adapter {
	return &Adapter{
		files:  files,
		bucket: bucket,
		logger: logger,
	}
}

func (a *Adapter) Upload(ctx context.Context, file filemanager.File) (*Result, error) {
	url, err := a.files.UploadFile(ctx, file, a.bucket)
	if err == nil && url == "" {
		err = ErrUploadFailed
	}
	if err != nil {
		msg := a.files.LastError()
		if msg == "" {
			msg = ErrUploadFailed.Message
		}

		return nil, apperror.NewReportedError(msg, err)
	}

	return &Result{Default: url}, nil
}

// Abort is called by the editor when the operator cancels an upload.
func (a *Adapter) Abort() {
	a.logger.Info("editor upload aborted", zap.String("bucket", a.bucket))
}
