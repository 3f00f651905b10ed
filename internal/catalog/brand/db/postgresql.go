package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

var ErrBrandNotFound = errors.New("brand not found")

var columns = listing.Columns{
	Search:   []string{"name", "description"},
	Sortable: map[string]string{"name": "name", "created_at": "created_at"},
	Default:  "created_at",
	Tiebreak: "id",
}

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

func (r *repository) GetPage(ctx context.Context, q listing.Query) ([]brand.Brand, int, error) {
	where, args := columns.Where(q, 1)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM pro_tech_brand %s`, where)

	logging.LogSQLQuery(r.logger, countQuery)

	var total int
	if err := r.client.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	window, windowArgs := columns.Window(q, len(args)+1)

	query := fmt.Sprintf(`
		SELECT id, name, description, image, created_at
		FROM pro_tech_brand
		%s
		%s
		%s
	`, where, columns.OrderBy(q), window)

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, append(args, windowArgs...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	brands := make([]brand.Brand, 0, q.Limit)

	for rows.Next() {
		var b brand.Brand

		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Image, &b.CreatedAt); err != nil {
			return nil, 0, err
		}

		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (r *repository) GetAll(ctx context.Context) ([]brand.Summary, error) {
	query := `SELECT id, name, image FROM pro_tech_brand ORDER BY name`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]brand.Summary, 0)

	for rows.Next() {
		var b brand.Summary

		if err := rows.Scan(&b.ID, &b.Name, &b.Image); err != nil {
			return nil, err
		}

		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (*brand.Brand, error) {
	query := `
		SELECT id, name, description, image, created_at
		FROM pro_tech_brand
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	var b brand.Brand

	if err := r.client.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Image,
		&b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *repository) Create(ctx context.Context, data brand.Brand) (*brand.Brand, error) {
	query := `
		INSERT INTO pro_tech_brand (name, description, image)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, image, created_at
	`

	logging.LogSQLQuery(r.logger, query)

	var b brand.Brand

	if err := r.client.QueryRow(ctx, query, data.Name, data.Description, data.Image).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Image,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Update(ctx context.Context, data brand.Brand) (*brand.Brand, error) {
	query := `
		UPDATE pro_tech_brand
		SET name = $2, description = $3, image = $4
		WHERE id = $1
		RETURNING id, name, description, image, created_at
	`

	logging.LogSQLQuery(r.logger, query)

	var b brand.Brand

	if err := r.client.QueryRow(ctx, query, data.ID, data.Name, data.Description, data.Image).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Image,
		&b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *repository) SetImage(ctx context.Context, id int, image *string) (*brand.Brand, error) {
	query := `
		UPDATE pro_tech_brand
		SET image = $2
		WHERE id = $1
		RETURNING id, name, description, image, created_at
	`

	logging.LogSQLQuery(r.logger, query)

	var b brand.Brand

	if err := r.client.QueryRow(ctx, query, id, image).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Image,
		&b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pro_tech_brand WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}
