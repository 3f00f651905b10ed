package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/protech-admin/internal/catalog/product"
	"github.com/xw1nchester/protech-admin/internal/listing"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

var columns = listing.Columns{
	Search: []string{"p.name", "p.part_number", "b.name", "c.name"},
	Sortable: map[string]string{
		"name":        "p.name",
		"part_number": "p.part_number",
		"created_at":  "p.created_at",
	},
	Default:  "p.created_at",
	Tiebreak: "p.id",
}

const (
	productColumns = `
		p.id,
		p.name,
		p.part_number,
		p.description,
		p.specifications,
		p.is_available,
		p.image,
		p.gallery_images,
		p.category_id,
		p.brand_id,
		c.name,
		b.name,
		p.created_at
	`
	productJoins = `
		FROM pro_tech_product p
		LEFT JOIN pro_tech_category c ON c.id = p.category_id
		LEFT JOIN pro_tech_brand b ON b.id = p.brand_id
	`
)

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

func scanProduct(row pgx.Row, extra ...any) (*product.Product, error) {
	var p product.Product

	dest := []any{
		&p.ID,
		&p.Name,
		&p.PartNumber,
		&p.Description,
		&p.Specifications,
		&p.IsAvailable,
		&p.Image,
		&p.GalleryImages,
		&p.CategoryID,
		&p.BrandID,
		&p.CategoryName,
		&p.BrandName,
		&p.CreatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetPage(ctx context.Context, q listing.Query) ([]product.Product, int, error) {
	where, args := columns.Where(q, 1)

	countQuery := fmt.Sprintf(`SELECT count(*) %s %s`, productJoins, where)

	logging.LogSQLQuery(r.logger, countQuery)

	var total int
	if err := r.client.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	window, windowArgs := columns.Window(q, len(args)+1)

	query := fmt.Sprintf(`SELECT %s %s %s %s %s`, productColumns, productJoins, where, columns.OrderBy(q), window)

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, append(args, windowArgs...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]product.Product, 0, q.Limit)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = $1`, productColumns, productJoins)

	logging.LogSQLQuery(r.logger, query)

	p, err := scanProduct(r.client.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return p, nil
}

func (r *repository) GetDetail(ctx context.Context, id int) (*product.Detail, error) {
	query := fmt.Sprintf(`
		SELECT
			%s,
			(
				SELECT json_build_object(
					'id', cd.id,
					'name', cd.name,
					'description', cd.description,
					'image', cd.image,
					'created_at', cd.created_at,
					'associated_brands', COALESCE(
						(
							SELECT json_agg(json_build_object('id', cbb.id, 'name', cbb.name, 'image', cbb.image) ORDER BY cbb.name)
							FROM pro_tech_category_brand cb
							JOIN pro_tech_brand cbb ON cbb.id = cb.brand_id
							WHERE cb.category_id = cd.id
						),
						'[]'
					)
				)
				FROM pro_tech_category cd
				WHERE cd.id = p.category_id
			),
			(SELECT row_to_json(bd) FROM pro_tech_brand bd WHERE bd.id = p.brand_id)
		%s
		WHERE p.id = $1
	`, productColumns, productJoins)

	logging.LogSQLQuery(r.logger, query)

	var d product.Detail

	p, err := scanProduct(r.client.QueryRow(ctx, query, id), &d.Category, &d.Brand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	d.Product = *p
	if d.Category != nil {
		d.Category.WithBrands(d.Category.AssociatedBrands)
	}

	return &d, nil
}

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	specs, err := json.Marshal(specifications(data.Specifications))
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO pro_tech_product (
			name, part_number, description, specifications, is_available,
			image, gallery_images, category_id, brand_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := r.client.QueryRow(
		ctx,
		query,
		data.Name,
		data.PartNumber,
		data.Description,
		specs,
		data.IsAvailable,
		data.Image,
		gallery(data.GalleryImages),
		data.CategoryID,
		data.BrandID,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data product.Product) (*product.Product, error) {
	specs, err := json.Marshal(specifications(data.Specifications))
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE pro_tech_product
		SET
			name = $2,
			part_number = $3,
			description = $4,
			specifications = $5,
			is_available = $6,
			image = $7,
			gallery_images = $8,
			category_id = $9,
			brand_id = $10
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(
		ctx,
		query,
		data.ID,
		data.Name,
		data.PartNumber,
		data.Description,
		specs,
		data.IsAvailable,
		data.Image,
		gallery(data.GalleryImages),
		data.CategoryID,
		data.BrandID,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) SetImage(ctx context.Context, id int, image *string) error {
	query := `UPDATE pro_tech_product SET image = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return r.exec(ctx, query, id, image)
}

func (r *repository) SetGallery(ctx context.Context, id int, images []string) error {
	query := `UPDATE pro_tech_product SET gallery_images = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return r.exec(ctx, query, id, gallery(images))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pro_tech_product WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return r.exec(ctx, query, id)
}

func (r *repository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.client.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func specifications(specs []product.Specification) []product.Specification {
	if specs == nil {
		return []product.Specification{}
	}
	return specs
}

func gallery(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
