package listing

import (
	"fmt"
	"strings"
)

// Columns describes how a table is searched and sorted.
type Columns struct {
	// Search columns are OR'd together with ILIKE.
	Search []string
	// Sortable maps a client sort key to a column expression.
	Sortable map[string]string
	// Default is the column expression used when the sort key is not sortable.
	Default string
	// Tiebreak keeps page boundaries stable between equal sort values.
	Tiebreak string
}

// Where renders the search predicate starting at placeholder $argPos.
// It returns an empty clause and no args when the search term is empty.
func (c Columns) Where(q Query, argPos int) (string, []any) {
	if q.Search == "" || len(c.Search) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(c.Search))
	for _, col := range c.Search {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, argPos))
	}

	return "WHERE (" + strings.Join(parts, " OR ") + ")", []any{"%" + q.Search + "%"}
}

func (c Columns) OrderBy(q Query) string {
	col, ok := c.Sortable[q.Sort.Key]
	direction := "DESC"
	if !ok {
		col = c.Default
	} else if q.Sort.Order == Asc {
		direction = "ASC"
	}

	clause := fmt.Sprintf("ORDER BY %s %s", col, direction)
	if c.Tiebreak != "" && c.Tiebreak != col {
		clause += fmt.Sprintf(", %s %s", c.Tiebreak, direction)
	}

	return clause
}

// Window renders LIMIT/OFFSET placeholders starting at $argPos.
func (c Columns) Window(q Query, argPos int) (string, []any) {
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", argPos, argPos+1), []any{q.Limit, q.Offset}
}
