// Package entitystore keeps one paginated, searchable collection per entity
// and funnels every mutation through a single refetch-and-notify wrapper.
package entitystore

import (
	"context"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

// Fetcher loads one page and the exact number of matching rows.
type Fetcher[T any] func(ctx context.Context, q listing.Query) ([]T, int, error)

type Notifier interface {
	Success(text string)
	Error(text string)
}

type Config struct {
	Debounce  time.Duration
	Translate apperror.Translator
	// AfterFetch runs after every page fetch that replaced the items.
	AfterFetch func(ctx context.Context)
}

type Store[T any] struct {
	mu         sync.Mutex
	items      []T
	total      int
	options    listing.Options
	loading    int
	generation uint64

	fetch      Fetcher[T]
	translate  apperror.Translator
	afterFetch func(ctx context.Context)
	notifier   Notifier
	debouncer  *listing.Debouncer
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New[T any](fetch Fetcher[T], notifier Notifier, cfg Config, logger *zap.Logger) *Store[T] {
	if cfg.Debounce <= 0 {
		cfg.Debounce = listing.SearchDebounce
	}
	if cfg.Translate == nil {
		cfg.Translate = func(err error) string { return err.Error() }
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Store[T]{
		items:      []T{},
		options:    listing.DefaultOptions(),
		fetch:      fetch,
		translate:  cfg.Translate,
		afterFetch: cfg.AfterFetch,
		notifier:   notifier,
		debouncer:  listing.NewDebouncer(cfg.Debounce),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// FetchItems merges o into the persisted options and loads that page.
// A response overtaken by a newer fetch is dropped.
func (s *Store[T]) FetchItems(ctx context.Context, o *listing.Override) error {
	s.mu.Lock()
	s.options = s.options.Merge(o)
	q := s.options.Query()
	s.generation++
	gen := s.generation
	s.loading++
	s.mu.Unlock()

	items, total, err := s.fetch(ctx, q)

	s.mu.Lock()
	s.loading--

	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale page", zap.Uint64("generation", gen))
		return nil
	}

	if err != nil {
		s.items = []T{}
		s.total = 0
		s.mu.Unlock()

		return s.Report(err)
	}

	if items == nil {
		items = []T{}
	}
	s.items = items
	s.total = total
	s.mu.Unlock()

	if s.afterFetch != nil {
		s.afterFetch(ctx)
	}

	return nil
}

// SetSearch stores term and schedules a fetch of the first page once the
// debounce delay passes without another call.
func (s *Store[T]) SetSearch(term string) {
	s.mu.Lock()
	s.options.Search = term
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		if s.ctx.Err() != nil {
			return
		}

		if err := s.FetchItems(s.ctx, listing.PageOverride(1)); err != nil {
			s.logger.Debug("debounced search failed", zap.Error(err))
		}
	})
}

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]T(nil), s.items...)
}

func (s *Store[T]) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.total
}

func (s *Store[T]) Options() listing.Options {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.options
	o.SortBy = append([]listing.SortBy(nil), s.options.SortBy...)

	return o
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading > 0
}

// Find returns the first cached item matching match.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Prepend puts item at the head of the cached page without refetching.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]T{item}, s.items...)
}

// Update applies fn to every cached item in place.
func (s *Store[T]) Update(fn func(item *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		fn(&s.items[i])
	}
}

// Report shows the translated err and returns it as an *apperror.ReportedError.
func (s *Store[T]) Report(err error) error {
	msg := s.translate(err)
	s.notifier.Error(msg)

	return apperror.NewReportedError(msg, err)
}

// Track keeps the store loading while fn runs.
func (s *Store[T]) Track(fn func()) {
	s.beginLoading()
	defer s.endLoading()

	fn()
}

// Close cancels the pending debounced search and any fetch it started.
func (s *Store[T]) Close() {
	s.debouncer.Stop()
	s.cancel()
}

func (s *Store[T]) beginLoading() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *Store[T]) endLoading() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}
