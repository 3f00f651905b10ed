package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/catalog/category"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

var ErrCategoryNotFound = errors.New("category not found")

var columns = listing.Columns{
	Search:   []string{"c.name", "c.description"},
	Sortable: map[string]string{"name": "c.name", "created_at": "c.created_at"},
	Default:  "c.created_at",
	Tiebreak: "c.id",
}

const selectWithBrands = `
	SELECT
		c.id,
		c.name,
		c.description,
		c.image,
		c.created_at,
		COALESCE(
			json_agg(json_build_object('id', b.id, 'name', b.name, 'image', b.image) ORDER BY b.name)
				FILTER (WHERE b.id IS NOT NULL),
			'[]'
		)
	FROM pro_tech_category c
	LEFT JOIN pro_tech_category_brand cb ON cb.category_id = c.id
	LEFT JOIN pro_tech_brand b ON b.id = cb.brand_id
`

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

func scanCategory(row pgx.Row) (*category.Category, error) {
	var (
		c      category.Category
		brands []brand.Summary
	)

	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &brands); err != nil {
		return nil, err
	}

	c.WithBrands(brands)

	return &c, nil
}

func (r *repository) GetPage(ctx context.Context, q listing.Query) ([]category.Category, int, error) {
	exec := pgtx.GetExecutor(ctx, r.client)

	where, args := columns.Where(q, 1)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM pro_tech_category c %s`, where)

	logging.LogSQLQuery(r.logger, countQuery)

	var total int
	if err := exec.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	window, windowArgs := columns.Window(q, len(args)+1)

	query := fmt.Sprintf(`%s %s GROUP BY c.id %s %s`, selectWithBrands, where, columns.OrderBy(q), window)

	logging.LogSQLQuery(r.logger, query)

	rows, err := exec.Query(ctx, query, append(args, windowArgs...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]category.Category, 0, q.Limit)

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}

		categories = append(categories, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) GetAll(ctx context.Context) ([]category.Summary, error) {
	query := `
		SELECT
			c.id,
			c.name,
			COALESCE(
				json_agg(json_build_object('id', b.id, 'name', b.name) ORDER BY b.name)
					FILTER (WHERE b.id IS NOT NULL),
				'[]'
			)
		FROM pro_tech_category c
		LEFT JOIN pro_tech_category_brand cb ON cb.category_id = c.id
		LEFT JOIN pro_tech_brand b ON b.id = cb.brand_id
		GROUP BY c.id
		ORDER BY c.name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]category.Summary, 0)

	for rows.Next() {
		var c category.Summary

		if err := rows.Scan(&c.ID, &c.Name, &c.Brands); err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	query := selectWithBrands + ` WHERE c.id = $1 GROUP BY c.id`

	logging.LogSQLQuery(r.logger, query)

	c, err := scanCategory(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return c, nil
}

func (r *repository) Create(ctx context.Context, data category.Category) (int, error) {
	query := `
		INSERT INTO pro_tech_category (name, description, image)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.Description,
		data.Image,
	).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) Update(ctx context.Context, data category.Category) error {
	query := `
		UPDATE pro_tech_category
		SET name = $2, description = $3, image = $4
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, data.ID, data.Name, data.Description, data.Image)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *repository) SetImage(ctx context.Context, id int, image *string) error {
	query := `UPDATE pro_tech_category SET image = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id, image)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pro_tech_category WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ReplaceBrands makes brandIDs the complete brand set of the category.
func (r *repository) ReplaceBrands(ctx context.Context, categoryID int, brandIDs []int) error {
	exec := pgtx.GetExecutor(ctx, r.client)

	deleteQuery := `DELETE FROM pro_tech_category_brand WHERE category_id = $1`

	logging.LogSQLQuery(r.logger, deleteQuery)

	if _, err := exec.Exec(ctx, deleteQuery, categoryID); err != nil {
		return err
	}

	if len(brandIDs) == 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO pro_tech_category_brand (category_id, brand_id)
		SELECT $1, brand_id FROM unnest($2::bigint[]) AS brand_id
	`

	logging.LogSQLQuery(r.logger, insertQuery)

	_, err := exec.Exec(ctx, insertQuery, categoryID, brandIDs)

	return err
}
