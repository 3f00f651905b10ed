package handler

import (
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/pkg/types"
)

type CategoryRequest struct {
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description"`
	BrandIDs     []types.ID `json:"brandIds" validate:"dive,gt=0"`
	CurrentImage *string    `json:"currentImage"`
}

func (cr *CategoryRequest) ToCreateInput(image *filemanager.File) category.CreateInput {
	return category.CreateInput{
		Name:        cr.Name,
		Description: cr.Description,
		BrandIDs:    types.Ints(cr.BrandIDs),
		ImageFile:   image,
	}
}

func (cr *CategoryRequest) ToUpdateInput(id int, image *filemanager.File) category.UpdateInput {
	return category.UpdateInput{
		ID:           id,
		Name:         cr.Name,
		Description:  cr.Description,
		BrandIDs:     types.Ints(cr.BrandIDs),
		CurrentImage: cr.CurrentImage,
		ImageFile:    image,
	}
}

type SearchRequest struct {
	Search string `json:"search"`
}

type CategoryResponse struct {
	Category category.Category `json:"category"`
}

type CategoriesSummaryResponse struct {
	Categories []category.Summary `json:"categories"`
}
