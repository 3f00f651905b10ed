package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/catalog/product"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"github.com/xw1nchester/protech-admin/internal/lib/api/response"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproducthandler
type Service interface {
	FetchItems(ctx context.Context, o *listing.Override) error
	SetSearch(term string)
	Items() []product.Product
	Total() int
	Options() listing.Options
	Loading() bool
	FetchItemByID(ctx context.Context, id int) (*product.Detail, error)
	CreateItem(ctx context.Context, in product.CreateInput) (*product.Product, error)
	UpdateItem(ctx context.Context, in product.UpdateInput) (*product.Product, error)
	DeleteItem(ctx context.Context, id int) error
	RemoveItemImage(ctx context.Context, id int, imageURL string) error
	RemoveGalleryImage(ctx context.Context, id int, gallery []string, index int) ([]string, error)
}

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
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Use(h.authMiddleware)

		productRouter.Get("/", apperror.Middleware(h.getProductsHandler))
		productRouter.Post("/", apperror.Middleware(h.createProductHandler))
		productRouter.Put("/search", apperror.Middleware(h.searchProductsHandler))
		productRouter.Get("/{id}", apperror.Middleware(h.getProductHandler))
		productRouter.Put("/{id}", apperror.Middleware(h.updateProductHandler))
		productRouter.Delete("/{id}", apperror.Middleware(h.deleteProductHandler))
		productRouter.Delete("/{id}/image", apperror.Middleware(h.removeProductImageHandler))
		productRouter.Delete("/{id}/gallery/{index}", apperror.Middleware(h.removeGalleryImageHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		page			query		int		false	"page"
// @Param		itemsPerPage	query		int		false	"items per page"
// @Param		sortBy			query		string	false	"sort key"
// @Param		sortOrder		query		string	false	"asc or desc"
// @Param		search			query		string	false	"search term"
// @Success	200				{object}	response.Page[product.Product]
// @Router		/products [get]
func (h *handler) getProductsHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		products
// @Param		request	body		SearchRequest	true	"request body"
// @Success	202		{object}	response.Page[product.Product]
// @Router		/products/search [put]
func (h *handler) searchProductsHandler(w http.ResponseWriter, r *http.Request) error {
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
// @Tags		products
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	ProductDetailResponse
// @Failure	404	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getProductHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	detail, err := service.FetchItemByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductDetailResponse{Product: *detail})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Accept		multipart/form-data
// @Param		data			formData	string	true	"ProductRequest as JSON"
// @Param		image			formData	file	true	"main image"
// @Param		galleryImages	formData	file	false	"gallery images"
// @Success	201				{object}	ProductResponse
// @Failure	400,500			{object}	apperror.AppError
// @Router		/products [post]
func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	dto, err := h.decodeRequest(w, r)
	if err != nil {
		return err
	}

	image, closeImage, err := handlers.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	gallery, closeGallery, err := handlers.FormFiles(r, "galleryImages")
	if err != nil {
		return err
	}
	defer closeGallery()

	created, err := service.CreateItem(r.Context(), dto.ToCreateInput(image, gallery))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ProductResponse{Product: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Accept		multipart/form-data
// @Param		id				path		int		true	"product id"
// @Param		data			formData	string	true	"ProductRequest as JSON"
// @Param		image			formData	file	false	"replacement image"
// @Param		galleryImages	formData	file	false	"gallery images to append"
// @Success	200				{object}	ProductResponse
// @Router		/products/{id} [put]
func (h *handler) updateProductHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	dto, err := h.decodeRequest(w, r)
	if err != nil {
		return err
	}

	image, closeImage, err := handlers.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	gallery, closeGallery, err := handlers.FormFiles(r, "galleryImages")
	if err != nil {
		return err
	}
	defer closeGallery()

	updated, err := service.UpdateItem(r.Context(), dto.ToUpdateInput(id, image, gallery))
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductResponse{Product: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id	path	int	true	"product id"
// @Success	204
// @Router		/products/{id} [delete]
func (h *handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.confirm(r.Context(), "this product"); err != nil {
		return err
	}

	if err := service.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id			path	int		true	"product id"
// @Param		imageUrl	query	string	true	"public url of the image"
// @Success	204
// @Router		/products/{id}/image [delete]
func (h *handler) removeProductImageHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	if err := service.RemoveItemImage(r.Context(), id, r.URL.Query().Get("imageUrl")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id		path		int	true	"product id"
// @Param		index	path		int	true	"gallery position"
// @Success	200		{object}	GalleryResponse
// @Router		/products/{id}/gallery/{index} [delete]
func (h *handler) removeGalleryImageHandler(w http.ResponseWriter, r *http.Request) error {
	service, err := h.resolve(r.Context())
	if err != nil {
		return err
	}

	id, err := handlers.IntParam(r, "id")
	if err != nil {
		return err
	}

	index, err := handlers.IntParam(r, "index")
	if err != nil {
		return err
	}

	detail, err := service.FetchItemByID(r.Context(), id)
	if err != nil {
		return err
	}

	remaining, err := service.RemoveGalleryImage(r.Context(), id, detail.GalleryImages, index)
	if err != nil {
		return err
	}

	render.JSON(w, r, GalleryResponse{GalleryImages: remaining})

	return nil
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*ProductRequest, error) {
	var dto ProductRequest
	if err := handlers.DecodeForm(w, r, h.maxUploadSize, &dto); err != nil {
		return nil, err
	}

	if err := validate.Struct(dto); err != nil {
		return nil, apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return &dto, nil
}
