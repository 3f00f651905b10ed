package handler

import (
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
)

type BrandRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	CurrentImage *string `json:"currentImage"`
}

func (br *BrandRequest) ToCreateInput(image *filemanager.File) brand.CreateInput {
	return brand.CreateInput{
		Name:        br.Name,
		Description: br.Description,
		ImageFile:   image,
	}
}

func (br *BrandRequest) ToUpdateInput(id int, image *filemanager.File) brand.UpdateInput {
	return brand.UpdateInput{
		ID:           id,
		Name:         br.Name,
		Description:  br.Description,
		CurrentImage: br.CurrentImage,
		ImageFile:    image,
	}
}

type SearchRequest struct {
	Search string `json:"search"`
}

type BrandResponse struct {
	Brand brand.Brand `json:"brand"`
}

type BrandsSummaryResponse struct {
	Brands []brand.Summary `json:"brands"`
}
