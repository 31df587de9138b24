package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
	"github.com/jackc/pgx/v5"
)

const getProductByID = `
SELECT entity_id, sku, name, status, visibility
FROM catalog_product
WHERE entity_id = $1`

// ProductRepository implements domain.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db DBTX
}

var _ domain.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID loads a product by entity id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var (
		p          domain.Product
		status     int16
		visibility int16
	)

	err := r.db.QueryRow(ctx, getProductByID, id).Scan(&p.ID, &p.SKU, &p.Name, &status, &visibility)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("product.get", "product", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, "product.get", "failed to get product")
	}

	p.Status = domain.ProductStatus(status)
	p.Visibility = domain.ProductVisibility(visibility)
	return &p, nil
}
