package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Merge(t *testing.T) {
	page := 3
	search := "acme"

	o := DefaultOptions().Merge(&Override{Page: &page, Search: &search})

	assert.Equal(t, 3, o.Page)
	assert.Equal(t, DefaultItemsPerPage, o.ItemsPerPage)
	assert.Equal(t, "acme", o.Search)
	assert.Equal(t, []SortBy{{Key: "created_at", Order: Desc}}, o.SortBy)

	assert.Equal(t, o, o.Merge(nil))

	cleared := o.Merge(&Override{SortBy: []SortBy{}})
	assert.Empty(t, cleared.SortBy)
}

func TestOptions_Query(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    Query
	}{
		{
			name:    "defaults",
			options: DefaultOptions(),
			want:    Query{Offset: 0, Limit: 10, Sort: SortBy{Key: "created_at", Order: Desc}},
		},
		{
			name:    "third page of 25",
			options: Options{Page: 3, ItemsPerPage: 25, Search: "x"},
			want:    Query{Offset: 50, Limit: 25, Search: "x", Sort: SortBy{Key: "created_at", Order: Desc}},
		},
		{
			name: "first sort key only",
			options: Options{
				Page:         1,
				ItemsPerPage: 10,
				SortBy:       []SortBy{{Key: "name", Order: Asc}, {Key: "created_at", Order: Desc}},
			},
			want: Query{Offset: 0, Limit: 10, Sort: SortBy{Key: "name", Order: Asc}},
		},
		{
			name:    "invalid values",
			options: Options{Page: 0, ItemsPerPage: -1, SortBy: []SortBy{{Key: "name", Order: "sideways"}}},
			want:    Query{Offset: 0, Limit: 10, Sort: SortBy{Key: "name", Order: Desc}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.options.Query())
		})
	}
}
