package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Store ids are aggregated in ascending order so the first element is stable.
const getPageByID = `
SELECT p.page_id, p.identifier, p.title, p.is_active,
       COALESCE(array_agg(s.store_id ORDER BY s.store_id) FILTER (WHERE s.store_id IS NOT NULL), '{}')::bigint[]
FROM cms_page p
LEFT JOIN cms_page_store s ON s.page_id = p.page_id
WHERE p.page_id = $1
GROUP BY p.page_id`

// PageRepository implements domain.PageRepository using PostgreSQL.
type PageRepository struct {
	db DBTX
}

var _ domain.PageRepository = (*PageRepository)(nil)

// NewPageRepository creates a new PostgreSQL-backed CMS page repository.
func NewPageRepository(db DBTX) *PageRepository {
	return &PageRepository{db: db}
}

// GetByID loads a CMS page and its store assignments.
func (r *PageRepository) GetByID(ctx context.Context, id int64) (*domain.Page, error) {
	var p domain.Page

	err := r.db.QueryRow(ctx, getPageByID, id).Scan(&p.ID, &p.Identifier, &p.Title, &p.IsActive, &p.StoreIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("page.get", "page", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, "page.get", "failed to get page")
	}

	return &p, nil
}
