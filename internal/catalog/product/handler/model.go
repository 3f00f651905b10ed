package handler

import (
	"github.com/xw1nchester/protech-admin/internal/catalog/product"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/pkg/types"
)

type SpecificationRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

type ProductRequest struct {
	Name           string                 `json:"name" validate:"required"`
	PartNumber     string                 `json:"partNumber" validate:"required"`
	Description    string                 `json:"description"`
	Specifications []SpecificationRequest `json:"specifications" validate:"dive"`
	IsAvailable    bool                   `json:"isAvailable"`
	CategoryID     *types.ID              `json:"categoryId" validate:"omitempty,gt=0"`
	BrandID        *types.ID              `json:"brandId" validate:"omitempty,gt=0"`
	CurrentImage   *string                `json:"currentImage"`
	GalleryImages  []string               `json:"galleryImages"`
}

func (pr *ProductRequest) fields() product.Fields {
	specs := make([]product.Specification, 0, len(pr.Specifications))
	for _, s := range pr.Specifications {
		specs = append(specs, product.Specification{Label: s.Label, Value: s.Value})
	}

	return product.Fields{
		Name:           pr.Name,
		PartNumber:     pr.PartNumber,
		Description:    pr.Description,
		Specifications: specs,
		IsAvailable:    pr.IsAvailable,
		CategoryID:     pr.CategoryID.Ptr(),
		BrandID:        pr.BrandID.Ptr(),
	}
}

func (pr *ProductRequest) ToCreateInput(image *filemanager.File, gallery []filemanager.File) product.CreateInput {
	return product.CreateInput{
		Fields:       pr.fields(),
		ImageFile:    image,
		GalleryFiles: gallery,
	}
}

func (pr *ProductRequest) ToUpdateInput(id int, image *filemanager.File, gallery []filemanager.File) product.UpdateInput {
	return product.UpdateInput{
		Fields:         pr.fields(),
		ID:             id,
		CurrentImage:   pr.CurrentImage,
		CurrentGallery: pr.GalleryImages,
		ImageFile:      image,
		GalleryFiles:   gallery,
	}
}

type SearchRequest struct {
	Search string `json:"search"`
}

type ProductResponse struct {
	Product product.Product `json:"product"`
}

type ProductDetailResponse struct {
	Product product.Detail `json:"product"`
}

type GalleryResponse struct {
	GalleryImages []string `json:"gallery_images"`
}
