package preview

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
)

// Route is a storefront route path plus query parameters.
type Route struct {
	Path  string
	Query url.Values
}

// PathResolver resolves the storefront route of an entity in a store view.
type PathResolver[T any] interface {
	ResolvePath(ctx context.Context, entity T, storeID int64) (Route, error)
}

// RewritePath looks the canonical request path up in the url_rewrite table.
// An empty Route.Path means the entity has no rewrite in the store.
type RewritePath[T any] struct {
	Rewrites   domain.RewriteRepository
	EntityType domain.EntityType
	EntityID   func(T) int64
}

func (p RewritePath[T]) ResolvePath(ctx context.Context, entity T, storeID int64) (Route, error) {
	path, err := p.Rewrites.RequestPath(ctx, p.EntityID(entity), p.EntityType, storeID)
	if err != nil {
		return Route{}, err
	}
	return Route{Path: path}, nil
}

// StaticRoute always resolves to the same internal route, passing the
// entity id as a query parameter.
type StaticRoute[T any] struct {
	Path     string
	IDParam  string
	EntityID func(T) int64
}

func (p StaticRoute[T]) ResolvePath(_ context.Context, entity T, _ int64) (Route, error) {
	return Route{
		Path:  p.Path,
		Query: url.Values{p.IDParam: {strconv.FormatInt(p.EntityID(entity), 10)}},
	}, nil
}

// PageIdentifierPath uses the CMS page identifier as the path. The home
// page resolves to the empty path, i.e. the site root.
type PageIdentifierPath struct {
	HomeIdentifier string
}

func (p PageIdentifierPath) ResolvePath(_ context.Context, page *domain.Page, _ int64) (Route, error) {
	if page.Identifier == p.HomeIdentifier {
		return Route{}, nil
	}
	return Route{Path: page.Identifier}, nil
}

var (
	_ PathResolver[*domain.Category] = RewritePath[*domain.Category]{}
	_ PathResolver[*domain.Product]  = StaticRoute[*domain.Product]{}
	_ PathResolver[*domain.Page]     = PageIdentifierPath{}
)
