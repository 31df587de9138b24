package domain

import "context"

// AdminStoreID is the admin store. Content assigned to it is shared by all store views.
const AdminStoreID int64 = 0

// ErrStoreNotFound is returned when no store view has the requested id.
var ErrStoreNotFound = &Error{Code: ENOTFOUND, Message: "Store not found"}

// Store is a storefront store view.
type Store struct {
	ID        int64
	Code      string
	Name      string
	BaseURL   string // empty means the configured frontend base URL
	IsDefault bool
}

// StoreRepository reads store views.
type StoreRepository interface {
	// GetByID returns an ENOTFOUND error when no store has the id.
	GetByID(ctx context.Context, id int64) (*Store, error)

	// DefaultStoreView returns the store view flagged as default, or
	// ErrStoreNotFound when none is flagged.
	DefaultStoreView(ctx context.Context) (*Store, error)
}
