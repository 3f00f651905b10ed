package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"github.com/xw1nchester/protech-admin/internal/notification"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocknotificationhandler
type Service interface {
	Subscribe() (<-chan notification.Event, func())
	Snackbar() notification.Snackbar
	HideSnackbar()
	ConfirmDialog() notification.ConfirmDialog
	Confirm(id string) error
	Cancel(id string) error
}

// Resolver returns the hub of the caller's workspace.
type Resolver func(ctx context.Context) (Service, error)

type handler struct {
	resolve        Resolver
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(resolve Resolver, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		resolve:        resolve,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/notifications", func(notificationRouter chi.Router) {
		notificationRouter.Use(h.authMiddleware)

		notificationRouter.Get("/", apperror.Middleware(h.getStateHandler))
		notificationRouter.Get("/stream", apperror.Middleware(h.streamHandler))
		notificationRouter.Delete("/snackbar", apperror.Middleware(h.hideSnackbarHandler))
		notificationRouter.Post("/confirmations/{id}", apperror.Middleware(h.answerConfirmationHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		notifications
// @Success	200	{object}	StateResponse
// @Router		/notifications [get]
func (h *handler) getStateHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, StateResponse{
		Snackbar:      service.Snackbar(),
		ConfirmDialog: service.ConfirmDialog(),
	})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		notifications
// @Produce	text/event-stream
// @Success	200	{object}	notification.Event
// @Router		/notifications/stream [get]
func (h *handler) streamHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	events, cancel := service.Subscribe()
	defer cancel()

	h.logger.Debug("notification stream opened")

	r.Header.Set("Accept", "text/event-stream")
	render.Respond(w, r, events)

	h.logger.Debug("notification stream closed")

	return nil
}

// @Security	ApiKeyAuth
// @Tags		notifications
// @Success	204
// @Router		/notifications/snackbar [delete]
func (h *handler) hideSnackbarHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	service.HideSnackbar()
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		notifications
// @Param		id		path	string				true	"dialog id"
// @Param		request	body	ConfirmationRequest	true	"operator answer"
// @Success	204
// @Failure	400,404	{object}	apperror.AppError
// @Router		/notifications/confirmations/{id} [post]
func (h *handler) answerConfirmationHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	var dto ConfirmationRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	id := chi.URLParam(r, "id")

	answer := service.Cancel
	if *dto.Confirmed {
		answer = service.Confirm
	}

	if err := answer(id); err != nil {
		if errors.Is(err, notification.ErrDialogNotFound) {
			return apperror.NewNotFoundErr("Confirmation dialog not found.")
		}
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
