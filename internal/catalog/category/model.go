package category

import (
	"time"

	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
)

type Category struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Image            *string         `json:"image"`
	CreatedAt        time.Time       `json:"created_at"`
	BrandIDs         []int           `json:"brand_ids"`
	AssociatedBrands []brand.Summary `json:"associated_brands"`
}

// WithBrands fills BrandIDs from AssociatedBrands.
func (c *Category) WithBrands(brands []brand.Summary) {
	c.AssociatedBrands = brands
	c.BrandIDs = make([]int, 0, len(brands))
	for _, b := range brands {
		c.BrandIDs = append(c.BrandIDs, b.ID)
	}
}

type BrandRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Summary is the autocomplete entry of a category.
type Summary struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Brands []BrandRef `json:"brands"`
}

type CreateInput struct {
	Name        string
	Description string
	BrandIDs    []int
	ImageFile   *filemanager.File
}

type UpdateInput struct {
	ID           int
	Name         string
	Description  string
	BrandIDs     []int
	CurrentImage *string
	ImageFile    *filemanager.File
}
