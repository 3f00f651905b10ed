// Package listing holds the paging, sorting and search options shared by every
// paginated collection, and renders them to SQL.
package listing

import "time"

const (
	DefaultPage         = 1
	DefaultItemsPerPage = 10
	DefaultSortKey      = "created_at"
	SearchDebounce      = 500 * time.Millisecond
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type SortBy struct {
	Key   string    `json:"key"`
	Order SortOrder `json:"order"`
}

type Options struct {
	Page         int      `json:"page"`
	ItemsPerPage int      `json:"itemsPerPage"`
	SortBy       []SortBy `json:"sortBy"`
	Search       string   `json:"search"`
}

// ItemsPerPageOption is one entry of the page size selector.
type ItemsPerPageOption struct {
	Value int    `json:"value"`
	Title string `json:"title"`
}

var ItemsPerPageOptions = []ItemsPerPageOption{
	{Value: 10, Title: "10"},
	{Value: 25, Title: "25"},
	{Value: 50, Title: "50"},
}

func DefaultOptions() Options {
	return Options{
		Page:         DefaultPage,
		ItemsPerPage: DefaultItemsPerPage,
		SortBy:       []SortBy{{Key: DefaultSortKey, Order: Desc}},
	}
}

// Override carries the fields a caller wants to change. Nil fields keep the
// persisted value; a non-nil empty SortBy clears the sort.
type Override struct {
	Page         *int
	ItemsPerPage *int
	SortBy       []SortBy
	Search       *string
}

func PageOverride(page int) *Override {
	return &Override{Page: &page}
}

func (o Options) Merge(ov *Override) Options {
	if ov == nil {
		return o
	}

	if ov.Page != nil {
		o.Page = *ov.Page
	}
	if ov.ItemsPerPage != nil {
		o.ItemsPerPage = *ov.ItemsPerPage
	}
	if ov.SortBy != nil {
		o.SortBy = append([]SortBy(nil), ov.SortBy...)
	}
	if ov.Search != nil {
		o.Search = *ov.Search
	}

	return o
}

// Query is the offset/limit window and filters derived from Options.
type Query struct {
	Offset int
	Limit  int
	Search string
	Sort   SortBy
}

func (o Options) Query() Query {
	page := o.Page
	if page < 1 {
		page = DefaultPage
	}

	perPage := o.ItemsPerPage
	if perPage < 1 {
		perPage = DefaultItemsPerPage
	}

	sort := SortBy{Key: DefaultSortKey, Order: Desc}
	if len(o.SortBy) > 0 && o.SortBy[0].Key != "" {
		sort = o.SortBy[0]
		if sort.Order != Asc {
			sort.Order = Desc
		}
	}

	return Query{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
		Search: o.Search,
		Sort:   sort,
	}
}
