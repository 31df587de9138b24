package postgres

import (
	"context"
	"errors"

	"github.com/dukerupert/previewbtn/internal/domain"
	"github.com/jackc/pgx/v5"
)

const getRequestPath = `
SELECT request_path
FROM url_rewrite
WHERE entity_id = $1::bigint AND entity_type = $2 AND store_id = $3::bigint
ORDER BY url_rewrite_id
LIMIT 1`

// RewriteRepository implements domain.RewriteRepository using PostgreSQL.
type RewriteRepository struct {
	db DBTX
}

var _ domain.RewriteRepository = (*RewriteRepository)(nil)

// NewRewriteRepository creates a new PostgreSQL-backed url_rewrite reader.
func NewRewriteRepository(db DBTX) *RewriteRepository {
	return &RewriteRepository{db: db}
}

// RequestPath returns the first request_path for the entity in the store,
// or "" when the store has no rewrite for it.
func (r *RewriteRepository) RequestPath(ctx context.Context, entityID int64, entityType domain.EntityType, storeID int64) (string, error) {
	var path string

	err := r.db.QueryRow(ctx, getRequestPath, entityID, string(entityType), storeID).Scan(&path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", domain.Internal(err, "rewrite.request_path", "failed to query url_rewrite")
	}

	return path, nil
}
