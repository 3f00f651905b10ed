package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/enquiry"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"github.com/xw1nchester/protech-admin/internal/lib/api/response"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockenquiryhandler
type Service interface {
	FetchItems(ctx context.Context, o *listing.Override) error
	SetSearch(term string)
	Items() []enquiry.Enquiry
	Total() int
	Options() listing.Options
	Loading() bool
	FetchUnread(ctx context.Context) ([]enquiry.Enquiry, error)
	UnreadCount() int
	Entry(id int) enquiry.Enquiry
	MarkAsRead(ctx context.Context, e enquiry.Enquiry) error
	MarkAsUnread(ctx context.Context, e enquiry.Enquiry) error
	Subscribe() error
	Unsubscribe()
	Subscribed() bool
}

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
	router.Route("/enquiries", func(enquiryRouter chi.Router) {
		enquiryRouter.Use(h.authMiddleware)

		enquiryRouter.Get("/", apperror.Middleware(h.getEnquiriesHandler))
		enquiryRouter.Put("/search", apperror.Middleware(h.searchEnquiriesHandler))
		enquiryRouter.Get("/unread", apperror.Middleware(h.getUnreadHandler))
		enquiryRouter.Patch("/{id}/read", apperror.Middleware(h.markAsReadHandler))
		enquiryRouter.Patch("/{id}/unread", apperror.Middleware(h.markAsUnreadHandler))
		enquiryRouter.Post("/subscription", apperror.Middleware(h.subscribeHandler))
		enquiryRouter.Delete("/subscription", apperror.Middleware(h.unsubscribeHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Param		page			query		int		false	"page"
// @Param		itemsPerPage	query		int		false	"items per page"
// @Param		sortBy			query		string	false	"sort key"
// @Param		sortOrder		query		string	false	"asc or desc"
// @Param		search			query		string	false	"search term"
// @Success	200				{object}	response.Page[enquiry.Enquiry]
// @Router		/enquiries [get]
func (h *handler) getEnquiriesHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	override, err := handlers.ListingOverride(r)
	if err != nil {
		return err
	}

	if err := service.FetchItems(r.Context(), override); err != nil {
		return err
	}

	render.JSON(w, r, response.NewPage(service.Items(), service))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Param		request	body		SearchRequest	true	"request body"
// @Success	202		{object}	response.Page[enquiry.Enquiry]
// @Router		/enquiries/search [put]
func (h *handler) searchEnquiriesHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	var dto SearchRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	service.SetSearch(dto.Search)

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.NewPage(service.Items(), service))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Success	200	{object}	UnreadResponse
// @Router		/enquiries/unread [get]
func (h *handler) getUnreadHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	unread, err := service.FetchUnread(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, UnreadResponse{Enquiries: unread, Count: service.UnreadCount()})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Param		id	path	int	true	"enquiry id"
// @Success	204
// @Router		/enquiries/{id}/read [patch]
func (h *handler) markAsReadHandler(w http.ResponseWriter, r *http.Request) error {
	return h.mark(w, r, Service.MarkAsRead)
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Param		id	path	int	true	"enquiry id"
// @Success	204
// @Router		/enquiries/{id}/unread [patch]
func (h *handler) markAsUnreadHandler(w http.ResponseWriter, r *http.Request) error {
	return h.mark(w, r, Service.MarkAsUnread)
}

func (h *handler) mark(
	w http.ResponseWriter,
	r *http.Request,
	set func(Service, context.Context, enquiry.Enquiry) error,
) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	if err := set(service, r.Context(), service.Entry(id)); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Success	200	{object}	SubscriptionResponse
// @Router		/enquiries/subscription [post]
func (h *handler) subscribeHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	if err := service.Subscribe(); err != nil {
		return err
	}

	render.JSON(w, r, SubscriptionResponse{Subscribed: service.Subscribed()})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		enquiries
// @Success	200	{object}	SubscriptionResponse
// @Router		/enquiries/subscription [delete]
func (h *handler) unsubscribeHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	service.Unsubscribe()

	render.JSON(w, r, SubscriptionResponse{Subscribed: service.Subscribed()})

	return nil
}
