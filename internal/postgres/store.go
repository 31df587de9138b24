package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	getStoreByID = `
SELECT store_id, code, name, base_url, is_default
FROM store
WHERE store_id = $1::bigint`

	getDefaultStoreView = `
SELECT store_id, code, name, base_url, is_default
FROM store
WHERE is_default AND store_id <> 0
ORDER BY store_id
LIMIT 1`
)

// StoreRepository implements domain.StoreRepository using PostgreSQL.
type StoreRepository struct {
	db DBTX
}

var _ domain.StoreRepository = (*StoreRepository)(nil)

// NewStoreRepository creates a new PostgreSQL-backed store repository.
func NewStoreRepository(db DBTX) *StoreRepository {
	return &StoreRepository{db: db}
}

// GetByID loads a store view by id.
func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, getStoreByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("store.get", "store", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, "store.get", "failed to get store")
	}
	return s, nil
}

// DefaultStoreView loads the store view flagged as default.
func (r *StoreRepository) DefaultStoreView(ctx context.Context) (*domain.Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, getDefaultStoreView))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, domain.Internal(err, "store.default", "failed to get default store view")
	}
	return s, nil
}

func scanStore(row pgx.Row) (*domain.Store, error) {
	var (
		s       domain.Store
		baseURL pgtype.Text
	)
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &baseURL, &s.IsDefault); err != nil {
		return nil, err
	}
	s.BaseURL = baseURL.String
	return &s, nil
}
