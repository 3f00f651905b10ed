package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"github.com/xw1nchester/protech-admin/internal/lib/api/response"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcategoryhandler
type Service interface {
	FetchItems(ctx context.Context, o *listing.Override) error
	SetSearch(term string)
	Items() []category.Category
	Total() int
	Options() listing.Options
	Loading() bool
	FetchAllItems(ctx context.Context) ([]category.Summary, error)
	CreateItem(ctx context.Context, in category.CreateInput) (*category.Category, error)
	UpdateItem(ctx context.Context, in category.UpdateInput) (*category.Category, error)
	DeleteItem(ctx context.Context, id int) error
	RemoveItemImage(ctx context.Context, id int, imageURL string) (*category.Category, error)
}

// Resolver returns the category store of the caller's workspace.
type Resolver func(ctx context.Context) (Service, error)

type handler struct {
	resolve        Resolver
	confirm        handlers.ConfirmFunc
	authMiddleware func(http.Handler) http.Handler
	maxUploadSize  int64
	logger         *zap.Logger
}

func New(
	resolve Resolver,
	confirm handlers.ConfirmFunc,
	authMiddleware func(http.Handler) http.Handler,
	maxUploadSize int64,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		resolve:        resolve,
		confirm:        confirm,
		authMiddleware: authMiddleware,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/categories", func(categoryRouter chi.Router) {
		categoryRouter.Use(h.authMiddleware)

		categoryRouter.Get("/", apperror.Middleware(h.getCategoriesHandler))
		categoryRouter.Post("/", apperror.Middleware(h.createCategoryHandler))
		categoryRouter.Get("/all", apperror.Middleware(h.getAllCategoriesHandler))
		categoryRouter.Put("/search", apperror.Middleware(h.searchCategoriesHandler))
		categoryRouter.Put("/{id}", apperror.Middleware(h.updateCategoryHandler))
		categoryRouter.Delete("/{id}", apperror.Middleware(h.deleteCategoryHandler))
		categoryRouter.Delete("/{id}/image", apperror.Middleware(h.removeCategoryImageHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		page			query		int		false	"page"
// @Param		itemsPerPage	query		int		false	"items per page"
// @Param		sortBy			query		string	false	"sort key"
// @Param		sortOrder		query		string	false	"asc or desc"
// @Param		search			query		string	false	"search term"
// @Success	200				{object}	response.Page[category.Category]
// @Failure	400,401,500		{object}	apperror.AppError
// @Router		/categories [get]
func (h *handler) getCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		categories
// @Param		request	body		SearchRequest	true	"request body"
// @Success	202		{object}	response.Page[category.Category]
// @Router		/categories/search [put]
func (h *handler) searchCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		categories
// @Success	200		{object}	CategoriesSummaryResponse
// @Router		/categories/all [get]
func (h *handler) getAllCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	categories, err := service.FetchAllItems(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoriesSummaryResponse{Categories: categories})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Accept		multipart/form-data
// @Param		data	formData	string	true	"CategoryRequest as JSON"
// @Param		image	formData	file	false	"category image"
// @Success	201		{object}	CategoryResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/categories [post]
func (h *handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	var dto CategoryRequest
	if err := handlers.DecodeForm(w, r, h.maxUploadSize, &dto); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	image, closeImage, err := handlers.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	created, err := service.CreateItem(r.Context(), dto.ToCreateInput(image))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CategoryResponse{Category: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Accept		multipart/form-data
// @Param		id		path		int		true	"category id"
// @Param		data	formData	string	true	"CategoryRequest as JSON"
// @Param		image	formData	file	false	"replacement image"
// @Success	200		{object}	CategoryResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [put]
func (h *handler) updateCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	var dto CategoryRequest
	if err := handlers.DecodeForm(w, r, h.maxUploadSize, &dto); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	image, closeImage, err := handlers.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	updated, err := service.UpdateItem(r.Context(), dto.ToUpdateInput(id, image))
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoryResponse{Category: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id	path	int	true	"category id"
// @Success	204
// @Failure	404,409,500	{object}	apperror.AppError
// @Router		/categories/{id} [delete]
func (h *handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.confirm(r.Context(), "this category"); err != nil {
		return err
	}

	if err := service.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id			path		int		true	"category id"
// @Param		imageUrl	query		string	true	"public url of the image"
// @Success	200			{object}	CategoryResponse
// @Router		/categories/{id}/image [delete]
func (h *handler) removeCategoryImageHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	updated, err := service.RemoveItemImage(r.Context(), id, r.URL.Query().Get("imageUrl"))
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoryResponse{Category: *updated})

	return nil
}
