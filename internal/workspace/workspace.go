// Package workspace owns the per-login set of stores: one hub, one session
// and one store per catalog concept, created on sign-in and disposed on sign-out.
package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	brandHandler "github.com/xw1nchester/protech-admin/internal/catalog/brand/handler"
	brandService "github.com/xw1nchester/protech-admin/internal/catalog/brand/service"
	categoryHandler "github.com/xw1nchester/protech-admin/internal/catalog/category/handler"
	categoryService "github.com/xw1nchester/protech-admin/internal/catalog/category/service"
	productHandler "github.com/xw1nchester/protech-admin/internal/catalog/product/handler"
	productService "github.com/xw1nchester/protech-admin/internal/catalog/product/service"
	"github.com/xw1nchester/protech-admin/internal/config"
	"github.com/xw1nchester/protech-admin/internal/editorupload"
	enquiryHandler "github.com/xw1nchester/protech-admin/internal/enquiry/handler"
	enquiryService "github.com/xw1nchester/protech-admin/internal/enquiry/service"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/notification"
	"github.com/xw1nchester/protech-admin/internal/session"
	"github.com/xw1nchester/protech-admin/pkg/transactor"
	"go.uber.org/zap"
)

const (
	ConfirmDeleteTitle   = "Confirm deletion"
	ConfirmDeleteMessage = "Are you sure you want to delete %s?"
	ConfirmDeleteButton  = "Delete"
)

// Deps are shared by every workspace.
type Deps struct {
	Brands     brandService.Repository
	Categories categoryService.Repository
	Products   productService.Repository
	Enquiries  enquiryService.Repository
	Feed       enquiryService.Feed
	Storage    filemanager.Storage
	Auth       session.Backend
	TxManager  transactor.Manager
	Buckets    config.Buckets
	Config     config.Workspace
}

type Workspace struct {
	Hub        *notification.Hub
	Session    *session.Manager
	Files      *filemanager.Manager
	Brands     brandHandler.Service
	Categories categoryHandler.Service
	Products   productHandler.Service
	Enquiries  enquiryHandler.Service
	Editor     *editorupload.Adapter

	cfg       config.Workspace
	closers   []func()
	closeOnce sync.Once
	logger    *zap.Logger
}

// Open builds a workspace on deps. onSignedOut runs when its session ends.
func Open(deps Deps, onSignedOut func(sessionID string), logger *zap.Logger) *Workspace {
	hub := notification.NewHub(logger)
	files := filemanager.New(deps.Storage, logger)
	debounce := deps.Config.SearchDebounce

	brands := brandService.New(deps.Brands, files, hub, deps.Buckets.Brand, debounce, logger)
	categories := categoryService.New(deps.Categories, files, brands, deps.TxManager, hub, deps.Buckets.Category, debounce, logger)
	products := productService.New(deps.Products, files, hub, hub, deps.Buckets.Product, debounce, logger)
	enquiries := enquiryService.New(deps.Enquiries, deps.Feed, hub, debounce, logger)

	w := &Workspace{
		Hub:        hub,
		Files:      files,
		Brands:     brands,
		Categories: categories,
		Products:   products,
		Enquiries:  enquiries,
		Editor:     editorupload.New(files, deps.Buckets.Editor, logger),
		cfg:        deps.Config,
		logger:     logger,
	}
	w.Session = session.New(deps.Auth, hub, onSignedOut, logger)

	w.closers = []func(){
		w.Session.Close,
		brands.Close,
		categories.Close,
		products.Close,
		enquiries.Close,
		hub.Close,
	}

	return w
}

// ConfirmDelete asks the operator to approve deleting subject when
// confirmations are enabled. A declined, expired or replaced prompt yields
// apperror.ErrCancelled.
func (w *Workspace) ConfirmDelete(ctx context.Context, subject string) error {
	if !w.cfg.ConfirmDeletes {
		return nil
	}

	if w.cfg.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.ConfirmTimeout)
		defer cancel()
	}

	ok, err := w.Hub.ShowConfirmDialog(ctx, notification.ConfirmDialog{
		Title:       ConfirmDeleteTitle,
		Message:     fmt.Sprintf(ConfirmDeleteMessage, subject),
		ConfirmText: ConfirmDeleteButton,
	})
	if err != nil {
		w.logger.Debug("delete confirmation not answered", zap.String("subject", subject), zap.Error(err))
		return apperror.ErrCancelled
	}

	if !ok {
		return apperror.ErrCancelled
	}

	return nil
}

// Close disposes every store, ends the auth subscription and closes the hub.
func (w *Workspace) Close() {
	w.closeOnce.Do(func() {
		for _, fn := range w.closers {
			fn()
		}
	})
}
