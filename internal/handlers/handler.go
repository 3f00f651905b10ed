package handlers

import (
	"context"

	"github.com/go-chi/chi/v5"
)

type Handler interface {
	Register(router chi.Router)
}

// ConfirmFunc asks the operator to approve deleting subject. It returns
// apperror.ErrCancelled when the operator declines.
type ConfirmFunc func(ctx context.Context, subject string) error

func NoConfirm(ctx context.Context, subject string) error {
	return nil
}
