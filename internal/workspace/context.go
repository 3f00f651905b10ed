package workspace

import (
	"context"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	brandHandler "github.com/xw1nchester/protech-admin/internal/catalog/brand/handler"
	categoryHandler "github.com/xw1nchester/protech-admin/internal/catalog/category/handler"
	productHandler "github.com/xw1nchester/protech-admin/internal/catalog/product/handler"
	editorHandler "github.com/xw1nchester/protech-admin/internal/editorupload/handler"
	enquiryHandler "github.com/xw1nchester/protech-admin/internal/enquiry/handler"
	notificationHandler "github.com/xw1nchester/protech-admin/internal/notification/handler"
)

type contextKey struct{}

func WithWorkspace(ctx context.Context, w *Workspace) context.Context {
	return context.WithValue(ctx, contextKey{}, w)
}

// FromContext returns the workspace the middleware resolved for the request.
func FromContext(ctx context.Context) (*Workspace, error) {
	w, ok := ctx.Value(contextKey{}).(*Workspace)
	if !ok || w == nil {
		return nil, apperror.ErrUnauthorized
	}

	return w, nil
}

// Confirm is the handlers.ConfirmFunc backed by the request's workspace.
func Confirm(ctx context.Context, subject string) error {
	w, err := FromContext(ctx)
	if err != nil {
		return err
	}

	return w.ConfirmDelete(ctx, subject)
}

func Brands(ctx context.Context) (brandHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Brands, nil
}

func Categories(ctx context.Context) (categoryHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Categories, nil
}

func Products(ctx context.Context) (productHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Products, nil
}

func Enquiries(ctx context.Context) (enquiryHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Enquiries, nil
}

func Notifications(ctx context.Context) (notificationHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Hub, nil
}

func Editor(ctx context.Context) (editorHandler.Service, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return w.Editor, nil
}
