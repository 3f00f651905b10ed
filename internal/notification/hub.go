// Package notification is the feedback channel every store reports through:
// snackbars, confirmation prompts and navigation requests for the UI.
package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDialogNotFound = errors.New("confirmation dialog not found")
	ErrHubClosed      = errors.New("notification hub closed")
)

// subscriberBuffer bounds how far a slow UI stream may lag before events are dropped.
const subscriberBuffer = 32

type Hub struct {
	mu       sync.Mutex
	snackbar Snackbar
	dialog   ConfirmDialog
	resolve  chan bool
	subs     map[int]chan Event
	nextSub  int
	closed   bool
	logger   *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		snackbar: Snackbar{Color: ColorSuccess, Timeout: DefaultTimeout},
		dialog:   ConfirmDialog{ConfirmText: DefaultConfirm, CancelText: DefaultCancel},
		subs:     make(map[int]chan Event),
		logger:   logger,
	}
}

func (h *Hub) ShowSnackbar(s Snackbar) {
	if s.Color == "" {
		s.Color = ColorSuccess
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}
	s.Show = true

	h.mu.Lock()
	h.snackbar = s
	h.publishLocked(Event{Kind: EventSnackbar, Snackbar: &s})
	h.mu.Unlock()
}

func (h *Hub) Success(text string) {
	h.ShowSnackbar(Snackbar{Text: text, Color: ColorSuccess})
}

func (h *Hub) Error(text string) {
	h.ShowSnackbar(Snackbar{Text: text, Color: ColorError})
}

func (h *Hub) HideSnackbar() {
	h.mu.Lock()
	h.snackbar.Show = false
	s := h.snackbar
	h.publishLocked(Event{Kind: EventSnackbar, Snackbar: &s})
	h.mu.Unlock()
}

func (h *Hub) Snackbar() Snackbar {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.snackbar
}

// HandleError logs err under action and shows the generic error text.
func (h *Hub) HandleError(err error, action string) {
	if action == "" {
		action = "handleError"
	}

	h.logger.Error("error in "+action, zap.Error(err))

	h.Error(GenericErrorText)
}

// ShowConfirmDialog displays d and blocks until the operator answers, ctx ends
// or a newer dialog replaces it, in which case the answer is false.
func (h *Hub) ShowConfirmDialog(ctx context.Context, d ConfirmDialog) (bool, error) {
	if d.ConfirmText == "" {
		d.ConfirmText = DefaultConfirm
	}
	if d.CancelText == "" {
		d.CancelText = DefaultCancel
	}
	d.ID = uuid.NewString()
	d.Show = true

	answer := make(chan bool, 1)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false, ErrHubClosed
	}
	if h.resolve != nil {
		h.resolve <- false
	}
	h.dialog = d
	h.resolve = answer
	h.publishLocked(Event{Kind: EventConfirm, Confirm: &d})
	h.mu.Unlock()

	select {
	case ok := <-answer:
		return ok, nil
	case <-ctx.Done():
		h.settle(d.ID, false)
		return false, ctx.Err()
	}
}

func (h *Hub) Confirm(id string) error {
	return h.settle(id, true)
}

func (h *Hub) Cancel(id string) error {
	return h.settle(id, false)
}

func (h *Hub) ConfirmDialog() ConfirmDialog {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.dialog
}

func (h *Hub) settle(id string, ok bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.resolve == nil || h.dialog.ID != id {
		return ErrDialogNotFound
	}

	h.resolve <- ok
	h.resolve = nil
	h.dialog.Show = false

	d := h.dialog
	h.publishLocked(Event{Kind: EventConfirm, Confirm: &d})

	return nil
}

// Navigate asks the UI to move to route.
func (h *Hub) Navigate(route string) {
	h.mu.Lock()
	h.publishLocked(Event{Kind: EventNavigate, Route: route})
	h.mu.Unlock()
}

// Subscribe streams every event published after the call. The returned
// cancel func must be called to release the subscription.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextSub
	h.nextSub++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

// Close resolves a pending dialog with false and ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	if h.resolve != nil {
		h.resolve <- false
		h.resolve = nil
	}

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

func (h *Hub) publishLocked(e Event) {
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			h.logger.Warn("dropping notification event for slow subscriber", zap.String("kind", string(e.Kind)))
		}
	}
}
