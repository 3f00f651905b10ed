package brand

import (
	"time"

	"github.com/xw1nchester/protech-admin/internal/filemanager"
)

type Brand struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the picker entry of a brand.
type Summary struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type CreateInput struct {
	Name        string
	Description string
	ImageFile   *filemanager.File
}

type UpdateInput struct {
	ID           int
	Name         string
	Description  string
	CurrentImage *string
	ImageFile    *filemanager.File
}
