package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getCategoryByID = `
SELECT entity_id, parent_id, name, is_active
FROM catalog_category
WHERE entity_id = $1`

// CategoryRepository implements domain.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	db DBTX
}

// Compile-time check that CategoryRepository implements domain.CategoryRepository.
var _ domain.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID loads a category by entity id.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var (
		c        domain.Category
		parentID pgtype.Int8
	)

	err := r.db.QueryRow(ctx, getCategoryByID, id).Scan(&c.ID, &parentID, &c.Name, &c.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("category.get", "category", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, "category.get", "failed to get category")
	}

	c.ParentID = parentID.Int64
	return &c, nil
}
