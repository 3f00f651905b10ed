package response

import "github.com/xw1nchester/protech-admin/internal/listing"

// Page is the state of one paginated collection as the table view renders it.
type Page[T any] struct {
	Items               []T                          `json:"items"`
	Total               int                          `json:"total"`
	Options             listing.Options              `json:"options"`
	ItemsPerPageOptions []listing.ItemsPerPageOption `json:"itemsPerPageOptions"`
	Loading             bool                         `json:"loading"`
}

type Collection interface {
	Total() int
	Options() listing.Options
	Loading() bool
}

func NewPage[T any](items []T, c Collection) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:               items,
		Total:               c.Total(),
		Options:             c.Options(),
		ItemsPerPageOptions: listing.ItemsPerPageOptions,
		Loading:             c.Loading(),
	}
}
