package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"github.com/xw1nchester/protech-admin/internal/lib/api/response"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockbrandhandler
type Service interface {
	FetchItems(ctx context.Context, o *listing.Override) error
	SetSearch(term string)
	Items() []brand.Brand
	Total() int
	Options() listing.Options
	Loading() bool
	FetchAllItems(ctx context.Context) ([]brand.Summary, error)
	CreateItem(ctx context.Context, in brand.CreateInput) (*brand.Brand, error)
	UpdateItem(ctx context.Context, in brand.UpdateInput) (*brand.Brand, error)
	DeleteItem(ctx context.Context, id int) error
	RemoveItemImage(ctx context.Context, id int, imageURL string) (*brand.Brand, error)
}

// Resolver returns the brand store of the caller's workspace.
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
	router.Route("/brands", func(brandRouter chi.Router) {
		brandRouter.Use(h.authMiddleware)

		brandRouter.Get("/", apperror.Middleware(h.getBrandsHandler))
		brandRouter.Post("/", apperror.Middleware(h.createBrandHandler))
		brandRouter.Get("/all", apperror.Middleware(h.getAllBrandsHandler))
		brandRouter.Put("/search", apperror.Middleware(h.searchBrandsHandler))
		brandRouter.Put("/{id}", apperror.Middleware(h.updateBrandHandler))
		brandRouter.Delete("/{id}", apperror.Middleware(h.deleteBrandHandler))
		brandRouter.Delete("/{id}/image", apperror.Middleware(h.removeBrandImageHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		brands
// @Param		page			query		int		false	"page"
// @Param		itemsPerPage	query		int		false	"items per page"
// @Param		sortBy			query		string	false	"sort key"
// @Param		sortOrder		query		string	false	"asc or desc"
// @Param		search			query		string	false	"search term"
// @Success	200				{object}	response.Page[brand.Brand]
// @Failure	400,401,500		{object}	apperror.AppError
// @Router		/brands [get]
func (h *handler) getBrandsHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		brands
// @Param		request	body		SearchRequest	true	"request body"
// @Success	202		{object}	response.Page[brand.Brand]
// @Router		/brands/search [put]
func (h *handler) searchBrandsHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		brands
// @Success	200		{object}	BrandsSummaryResponse
// @Router		/brands/all [get]
func (h *handler) getAllBrandsHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	brands, err := service.FetchAllItems(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandsSummaryResponse{Brands: brands})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		brands
// @Accept		multipart/form-data
// @Param		data	formData	string	true	"BrandRequest as JSON"
// @Param		image	formData	file	false	"brand image"
// @Success	201		{object}	BrandResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/brands [post]
func (h *handler) createBrandHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	var dto BrandRequest
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
	render.JSON(w, r, BrandResponse{Brand: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		brands
// @Accept		multipart/form-data
// @Param		id		path		int		true	"brand id"
// @Param		data	formData	string	true	"BrandRequest as JSON"
// @Param		image	formData	file	false	"replacement image"
// @Success	200		{object}	BrandResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/brands/{id} [put]
func (h *handler) updateBrandHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	var dto BrandRequest
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

	render.JSON(w, r, BrandResponse{Brand: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		brands
// @Param		id	path	int	true	"brand id"
// @Success	204
// @Failure	404,409,500	{object}	apperror.AppError
// @Router		/brands/{id} [delete]
func (h *handler) deleteBrandHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.confirm(r.Context(), "this brand"); err != nil {
		return err
	}

	if err := service.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		brands
// @Param		id			path		int		true	"brand id"
// @Param		imageUrl	query		string	true	"public url of the image"
// @Success	200			{object}	BrandResponse
// @Router		/brands/{id}/image [delete]
func (h *handler) removeBrandImageHandler(w http.ResponseWriter, r *http.Request) error {
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

	render.JSON(w, r, BrandResponse{Brand: *updated})

	return nil
}
