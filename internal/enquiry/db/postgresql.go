package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/protech-admin/internal/enquiry"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

var columns = listing.Columns{
	Search: []string{"customer_name", "product_name"},
	Sortable: map[string]string{
		"customer_name": "customer_name",
		"product_name":  "product_name",
		"is_read":       "is_read",
		"created_at":    "created_at",
	},
	Default:  "created_at",
	Tiebreak: "id",
}

const enquiryColumns = `id, customer_name, product_name, product_id, message, is_read, created_at`

type repository struct {
	client pgtx.DBExecutor
	logger *zap.Logger
}

func New(client pgtx.DBExecutor, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetPage(ctx context.Context, q listing.Query) ([]enquiry.Enquiry, int, error) {
	where, args := columns.Where(q, 1)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM pro_tech_enquiry %s`, where)

	logging.LogSQLQuery(r.logger, countQuery)

	var total int
	if err := r.client.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	window, windowArgs := columns.Window(q, len(args)+1)

	query := fmt.Sprintf(`
		SELECT %s
		FROM pro_tech_enquiry
		%s
		%s
		%s
	`, enquiryColumns, where, columns.OrderBy(q), window)

	logging.LogSQLQuery(r.logger, query)

	enquiries, err := r.query(ctx, query, append(args, windowArgs...)...)
	if err != nil {
		return nil, 0, err
	}

	return enquiries, total, nil
}

func (r *repository) GetUnread(ctx context.Context) ([]enquiry.Enquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM pro_tech_enquiry
		WHERE is_read = false
		ORDER BY created_at DESC, id DESC
	`, enquiryColumns)

	logging.LogSQLQuery(r.logger, query)

	return r.query(ctx, query)
}

func (r *repository) SetRead(ctx context.Context, id int, read bool) error {
	query := `UPDATE pro_tech_enquiry SET is_read = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id, read)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]enquiry.Enquiry, error) {
	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (enquiry.Enquiry, error) {
		var e enquiry.Enquiry

		err := row.Scan(
			&e.ID,
			&e.CustomerName,
			&e.ProductName,
			&e.ProductID,
			&e.Message,
			&e.IsRead,
			&e.CreatedAt,
		)

		return e, err
	})
}
