package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/editorupload"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockeditoruploadhandler
type Service interface {
	Upload(ctx context.Context, file filemanager.File) (*editorupload.Result, error)
	Abort()
}

type Resolver func(ctx context.Context) (Service, error)

type handler struct {
	resolve        Resolver
	authMiddleware func(http.Handler) http.Handler
	maxUploadSize  int64
	logger         *zap.Logger
}

func New(
	resolve Resolver,
	authMiddleware func(http.Handler) http.Handler,
	maxUploadSize int64,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		resolve:        resolve,
		authMiddleware: authMiddleware,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/editor/uploads", apperror.Middleware(h.uploadHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		editor
// @Accept		multipart/form-data
// @Param		upload	formData	file	true	"file picked in the editor"
// @Success	200		{object}	editorupload.Result
// @Failure	400,401,502	{object}	apperror.AppError
// @Router		/editor/uploads [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	if err := handlers.ParseMultipart(w, r, h.maxUploadSize); err != nil {
		return err
	}

	file, closeFile, err := handlers.FormFile(r, "upload")
	if err != nil {
		return err
	}
	defer closeFile()

	if file == nil {
		return filemanager.ErrFileRequired
	}

	if err := r.Context().Err(); err != nil {
		service.Abort()
		return err
	}

	h.logger.Debug("editor upload", zap.String("name", file.Name), zap.Int64("size", file.Size))

	res, err := service.Upload(r.Context(), *file)
	if err != nil {
		if r.Context().Err() != nil {
			service.Abort()
		}
		return err
	}

	render.JSON(w, r, res)

	return nil
}
