package preview

import (
	"context"

	"github.com/dukerupert/previewbtn/internal/domain"
)

// Scope picks the store view a button previews.
type Scope[T any] func(ctx context.Context, req Request, entity T) (int64, error)

// ScopeResolver resolves the store view of an admin request.
type ScopeResolver struct {
	stores domain.StoreRepository
}

// NewScopeResolver creates a resolver that falls back to the default store view.
func NewScopeResolver(stores domain.StoreRepository) *ScopeResolver {
	return &ScopeResolver{stores: stores}
}

// Resolve returns the "store" request parameter when it is set to a
// non-zero id, otherwise the id of the default store view. The store id
// is not checked for existence.
func (r *ScopeResolver) Resolve(ctx context.Context, req Request) (int64, error) {
	if id := IntParam(req.Param(ParamStore)); id != 0 {
		return id, nil
	}

	store, err := r.stores.DefaultStoreView(ctx)
	if err != nil {
		return 0, err
	}
	return store.ID, nil
}

// RequestScope adapts a ScopeResolver to any entity type.
func RequestScope[T any](r *ScopeResolver) Scope[T] {
	return func(ctx context.Context, req Request, _ T) (int64, error) {
		return r.Resolve(ctx, req)
	}
}

// PageStoreScope previews a CMS page in the first store view it is
// assigned to. Pages shared by all store views resolve to AdminStoreID,
// which builds an unscoped URL.
func PageStoreScope(_ context.Context, _ Request, p *domain.Page) (int64, error) {
	if len(p.StoreIDs) == 0 {
		return domain.AdminStoreID, nil
	}
	return p.StoreIDs[0], nil
}
