package storage

import (
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"go.uber.org/zap"
)

type storage struct {
	client    *minio.Client
	publicURL string
	logger    *zap.Logger
}

func New(client *minio.Client, publicURL string, logger *zap.Logger) *storage {
	return &storage{
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

func (s *storage) Put(ctx context.Context, bucket, name string, file filemanager.File) error {
	size := file.Size
	if size <= 0 {
		size = -1
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.client.PutObject(
		ctx,
		bucket,
		name,
		file.Reader,
		size,
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "max-age=3600",
		},
	)
	if err != nil {
		return err
	}

	s.logger.Info("uploaded info",
		zap.String("bucket", info.Bucket),
		zap.String("key", info.Key),
		zap.String("etag", info.ETag),
		zap.Int64("size", info.Size),
	)

	return nil
}

func (s *storage) Remove(ctx context.Context, bucket, name string) error {
	return s.client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{})
}

func (s *storage) URL(bucket, name string) string {
	return s.publicURL + "/" + bucket + "/" + name
}
