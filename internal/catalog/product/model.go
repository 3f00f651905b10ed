package product

import (
	"time"

	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
)

type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	PartNumber     string          `json:"part_number"`
	Description    string          `json:"description"`
	Specifications []Specification `json:"specifications"`
	IsAvailable    bool            `json:"is_available"`
	Image          *string         `json:"image"`
	GalleryImages  []string        `json:"gallery_images"`
	CategoryID     *int            `json:"category_id"`
	BrandID        *int            `json:"brand_id"`
	CategoryName   *string         `json:"category_name"`
	BrandName      *string         `json:"brand_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Images returns the main image followed by the gallery.
func (p *Product) Images() []string {
	images := make([]string, 0, len(p.GalleryImages)+1)
	if p.Image != nil && *p.Image != "" {
		images = append(images, *p.Image)
	}
	return append(images, p.GalleryImages...)
}

// Detail is a product with its category (and the category's brands) and brand.
type Detail struct {
	Product
	Category *category.Category `json:"category"`
	Brand    *brand.Brand       `json:"brand"`
}

type Fields struct {
	Name           string
	PartNumber     string
	Description    string
	Specifications []Specification
	IsAvailable    bool
	CategoryID     *int
	BrandID        *int
}

type CreateInput struct {
	Fields
	ImageFile    *filemanager.File
	GalleryFiles []filemanager.File
}

type UpdateInput struct {
	Fields
	ID             int
	CurrentImage   *string
	CurrentGallery []string
	ImageFile      *filemanager.File
	GalleryFiles   []filemanager.File
}
