package domain

import "context"

// EntityType is the entity_type literal stored in the url_rewrite table.
type EntityType string

const (
	EntityTypeCategory EntityType = "category"
	EntityTypeProduct  EntityType = "product"
)

// RewriteRepository resolves storefront request paths from the url_rewrite table.
type RewriteRepository interface {
	// RequestPath returns the first request_path for the entity in the store.
	// An empty string with a nil error means the entity has no rewrite there.
	RequestPath(ctx context.Context, entityID int64, entityType EntityType, storeID int64) (string, error)
}
