package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/entitystore"
	"github.com/xw1nchester/protech-admin/internal/enquiry"
	"github.com/xw1nchester/protech-admin/internal/enquiry/db"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/notification"
	"go.uber.org/zap"
)

const NewEnquiryTimeout = 10 * time.Second

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockenquiryservice
type Repository interface {
	GetPage(ctx context.Context, q listing.Query) ([]enquiry.Enquiry, int, error)
	GetUnread(ctx context.Context) ([]enquiry.Enquiry, error)
	SetRead(ctx context.Context, id int, read bool) error
}

type Feed interface {
	Subscribe(onInsert func(enquiry.Enquiry)) (func(), error)
}

type Notifier interface {
	Success(text string)
	Error(text string)
	ShowSnackbar(s notification.Snackbar)
	HandleError(err error, action string)
}

type service struct {
	*entitystore.Store[enquiry.Enquiry]

	repository Repository
	feed       Feed
	notifier   Notifier
	logger     *zap.Logger

	mu          sync.Mutex
	unread      []enquiry.Enquiry
	unsubscribe func()
}

func New(
	repository Repository,
	feed Feed,
	notifier Notifier,
	debounce time.Duration,
	logger *zap.Logger,
) *service {
	s := &service{
		repository: repository,
		feed:       feed,
		notifier:   notifier,
		logger:     logger,
		unread:     []enquiry.Enquiry{},
	}

	s.Store = entitystore.New(
		s.fetchPage,
		notifier,
		entitystore.Config{
			Debounce:  debounce,
			Translate: func(error) string { return notification.GenericErrorText },
		},
		logger,
	)

	return s
}

func (s *service) fetchPage(ctx context.Context, q listing.Query) ([]enquiry.Enquiry, int, error) {
	enquiries, total, err := s.repository.GetPage(ctx, q)
	if err != nil {
		s.logger.Error("error in fetchItems", zap.Error(err))
		return nil, 0, err
	}

	return enquiries, total, nil
}

// Subscribe starts prepending newly inserted enquiries to the cached page.
// It does nothing when already subscribed.
func (s *service) Subscribe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsubscribe != nil {
		return nil
	}

	unsubscribe, err := s.feed.Subscribe(s.onInsert)
	if err != nil {
		s.notifier.HandleError(err, "subscribeToEnquiries")
		return apperror.NewReportedError(notification.GenericErrorText, err)
	}

	s.unsubscribe = unsubscribe

	s.logger.Info("subscribed to new enquiries")

	return nil
}

func (s *service) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsubscribe == nil {
		return
	}

	s.unsubscribe()
	s.unsubscribe = nil

	s.logger.Info("unsubscribed from new enquiries")
}

func (s *service) Subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unsubscribe != nil
}

func (s *service) onInsert(e enquiry.Enquiry) {
	s.Prepend(e)

	s.notifier.ShowSnackbar(notification.Snackbar{
		Text:     fmt.Sprintf("New enquiry from %s for %s", e.CustomerName, e.ProductName),
		Color:    notification.ColorSuccess,
		Timeout:  NewEnquiryTimeout,
		Closable: true,
		Sound:    notification.NotificationSound,
	})
}

// FetchUnread replaces the unread subset. On failure the subset is kept.
func (s *service) FetchUnread(ctx context.Context) ([]enquiry.Enquiry, error) {
	var (
		unread []enquiry.Enquiry
		err    error
	)

	s.Track(func() {
		unread, err = s.repository.GetUnread(ctx)
	})

	if err != nil {
		s.notifier.HandleError(err, "fetchUnreadEnquiries")
		return nil, apperror.NewReportedError(notification.GenericErrorText, err)
	}

	s.mu.Lock()
	s.unread = unread
	s.mu.Unlock()

	return s.Unread(), nil
}

func (s *service) Unread() []enquiry.Enquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]enquiry.Enquiry{}, s.unread...)
}

func (s *service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.unread)
}

// Entry returns the cached enquiry with id, or one carrying only the id.
func (s *service) Entry(id int) enquiry.Enquiry {
	s.mu.Lock()
	for _, e := range s.unread {
		if e.ID == id {
			s.mu.Unlock()
			return e
		}
	}
	s.mu.Unlock()

	if e, ok := s.Find(func(e enquiry.Enquiry) bool { return e.ID == id }); ok {
		return e
	}

	return enquiry.Enquiry{ID: id}
}

// MarkAsRead drops e from the unread subset before the write and puts it
// back when the write fails.
func (s *service) MarkAsRead(ctx context.Context, e enquiry.Enquiry) error {
	return s.setRead(ctx, e, true, "markAsRead")
}

// MarkAsUnread adds e to the unread subset before the write and removes it
// again when the write fails.
func (s *service) MarkAsUnread(ctx context.Context, e enquiry.Enquiry) error {
	return s.setRead(ctx, e, false, "markAsUnread")
}

func (s *service) setRead(ctx context.Context, e enquiry.Enquiry, read bool, action string) error {
	var changed bool

	apply := func() {
		if read {
			changed = s.removeUnread(e.ID)
		} else {
			e.IsRead = false
			changed = s.addUnread(e)
		}
		s.setCachedRead(e.ID, read)
	}

	revert := func() {
		if changed {
			if read {
				s.addUnread(e)
			} else {
				s.removeUnread(e.ID)
			}
		}
		s.setCachedRead(e.ID, !read)
	}

	err := entitystore.Optimistic(ctx, apply, revert, func(ctx context.Context) error {
		return s.repository.SetRead(ctx, e.ID, read)
	})
	if err != nil {
		s.notifier.HandleError(err, action)

		if errors.Is(err, db.ErrEnquiryNotFound) {
			return apperror.NewReportedError(notification.GenericErrorText, apperror.ErrNotFound)
		}

		return apperror.NewReportedError(notification.GenericErrorText, err)
	}

	return nil
}

func (s *service) removeUnread(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.unread {
		if e.ID == id {
			s.unread = append(s.unread[:i:i], s.unread[i+1:]...)
			return true
		}
	}

	return false
}

func (s *service) addUnread(e enquiry.Enquiry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.unread {
		if u.ID == e.ID {
			return false
		}
	}

	s.unread = append(s.unread, e)

	return true
}

func (s *service) setCachedRead(id int, read bool) {
	s.Update(func(item *enquiry.Enquiry) {
		if item.ID == id {
			item.IsRead = read
		}
	})
}

// Close unsubscribes from the feed and stops the pending search.
func (s *service) Close() {
	s.Unsubscribe()
	s.Store.Close()
}
