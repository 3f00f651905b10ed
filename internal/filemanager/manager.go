package filemanager

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrFileRequired = apperror.NewAppError("File and bucket name are required.")

var whitespace = regexp.MustCompile(`\s+`)

//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mockfilemanager
type Storage interface {
	Put(ctx context.Context, bucket, name string, file File) error
	Remove(ctx context.Context, bucket, name string) error
	URL(bucket, name string) string
}

type Manager struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	busy    int
	lastErr string
}

func New(storage Storage, logger *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// ObjectName prefixes name with the upload time in unix milliseconds and
// replaces whitespace runs with a dash.
func ObjectName(name string, at time.Time) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), whitespace.ReplaceAllString(name, "-"))
}

// ObjectNameFromURL returns the last path segment of a public object URL.
func ObjectNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("no object name in url %q", rawURL)
	}

	return url.PathUnescape(name)
}

func (m *Manager) UploadFile(ctx context.Context, file File, bucket string) (string, error) {
	if file.Empty() || bucket == "" {
		m.setLastError(ErrFileRequired)
		return "", ErrFileRequired
	}

	m.begin()
	defer m.end()

	name := ObjectName(file.Name, m.now())

	if err := m.storage.Put(ctx, bucket, name, file); err != nil {
		m.logger.Error(
			"error uploading file",
			zap.String("bucket", bucket),
			zap.String("name", name),
			zap.Error(err),
		)
		m.setLastError(err)
		return "", err
	}

	return m.storage.URL(bucket, name), nil
}

// UploadFiles uploads files concurrently and returns their URLs in input order.
// On the first failure the files of this batch that were stored are removed.
func (m *Manager) UploadFiles(ctx context.Context, files []File, bucket string) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)

	for i, file := range files {
		g.Go(func() error {
			u, err := m.UploadFile(gctx, file, bucket)
			if err != nil {
				return err
			}

			urls[i] = u

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uploaded := make([]string, 0, len(urls))
		for _, u := range urls {
			if u != "" {
				uploaded = append(uploaded, u)
			}
		}

		m.DeleteFiles(context.WithoutCancel(ctx), uploaded, bucket)

		return nil, err
	}

	return urls, nil
}

// DeleteFile never fails: a missing or unreachable object is only logged.
func (m *Manager) DeleteFile(ctx context.Context, fileURL, bucket string) {
	if fileURL == "" || bucket == "" {
		return
	}

	name, err := ObjectNameFromURL(fileURL)
	if err != nil {
		m.logger.Warn("failed to extract object name", zap.String("url", fileURL), zap.Error(err))
		return
	}

	if err := m.storage.Remove(ctx, bucket, name); err != nil {
		m.logger.Warn(
			"error deleting file",
			zap.String("bucket", bucket),
			zap.String("name", name),
			zap.Error(err),
		)
		m.setLastError(err)
	}
}

func (m *Manager) DeleteFiles(ctx context.Context, fileURLs []string, bucket string) {
	for _, u := range fileURLs {
		m.DeleteFile(ctx, u, bucket)
	}
}

func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.busy > 0
}

func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastErr
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.busy++
	m.lastErr = ""
	m.mu.Unlock()
}

func (m *Manager) end() {
	m.mu.Lock()
	m.busy--
	m.mu.Unlock()
}

func (m *Manager) setLastError(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	m.mu.Lock()
	m.lastErr = err.Error()
	m.mu.Unlock()
}
