// Package preview decides whether the admin edit forms show a
// "Preview as customer" button and which storefront URL it opens.
//
// A single generic Provider covers every entity type. Each entity type
// plugs in how it is fetched, when it is visible, which store view it is
// previewed in and how its storefront path is resolved.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dukerupert/previewbtn/internal/domain"
)

// Entity names, used as route segments and metric labels.
const (
	EntityCategory     = "category"
	EntityPage         = "page"
	EntityProduct      = "product"
	EntityProductRoute = "product-route"
)

// ProductViewRoute is the internal storefront route of a product page.
const ProductViewRoute = "catalog/product/view"

// Labeler translates UI strings for the request locale.
type Labeler interface {
	Translate(ctx context.Context, key string) string
}

// ButtonProvider is implemented by every Provider regardless of entity type.
type ButtonProvider interface {
	Entity() string
	ButtonData(ctx context.Context, req Request) Decision
}

// Config parameterizes a Provider for one entity type.
type Config[T any] struct {
	Entity  string
	IDParam string
	Fetch   Fetcher[T]

	// Guard is an optional extra condition, e.g. excluding the default category.
	Guard   Policy[T]
	Visible Policy[T]

	Scope Scope[T]
	Path  PathResolver[T]

	// RequirePath hides the button when the path resolves to "".
	RequirePath bool

	URLs   *URLBuilder
	Labels Labeler
}

// Provider renders the preview button for one entity type.
// It holds no per-request state and is safe for concurrent use.
type Provider[T any] struct {
	cfg Config[T]
}

var _ ButtonProvider = (*Provider[*domain.Category])(nil)

// NewProvider validates cfg and creates a Provider.
func NewProvider[T any](cfg Config[T]) (*Provider[T], error) {
	var missing []string
	if cfg.Entity == "" {
		missing = append(missing, "Entity")
	}
	if cfg.IDParam == "" {
		missing = append(missing, "IDParam")
	}
	if cfg.Fetch == nil {
		missing = append(missing, "Fetch")
	}
	if cfg.Visible == nil {
		missing = append(missing, "Visible")
	}
	if cfg.Scope == nil {
		missing = append(missing, "Scope")
	}
	if cfg.Path == nil {
		missing = append(missing, "Path")
	}
	if cfg.URLs == nil {
		missing = append(missing, "URLs")
	}
	if cfg.Labels == nil {
		missing = append(missing, "Labels")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("preview provider %q: missing %s", cfg.Entity, strings.Join(missing, ", "))
	}
	return &Provider[T]{cfg: cfg}, nil
}

// Entity returns the entity name the provider serves.
func (p *Provider[T]) Entity() string {
	return p.cfg.Entity
}

// ButtonData evaluates the request. Every hidden outcome carries the
// reason; failures also carry the error.
func (p *Provider[T]) ButtonData(ctx context.Context, req Request) Decision {
	id := IntParam(req.Param(p.cfg.IDParam))

	lookup := Fetch(ctx, p.cfg.Fetch, id)
	switch lookup.Status {
	case LookupNotFound:
		return hide(ReasonNotFound, id, lookup.Err)
	case LookupFailed:
		return hide(ReasonLookupFailed, id, lookup.Err)
	}
	entity := lookup.Entity

	if req.ActionName() == ActionNew {
		return hide(ReasonNewAction, id, nil)
	}
	if p.cfg.Guard != nil && !p.cfg.Guard(entity) {
		return hide(ReasonExcluded, id, nil)
	}
	if !p.cfg.Visible(entity) {
		return hide(ReasonNotVisible, id, nil)
	}

	scope, err := p.cfg.Scope(ctx, req, entity)
	if err != nil {
		return hide(ReasonScopeFailed, id, err)
	}

	route, err := p.cfg.Path.ResolvePath(ctx, entity, scope)
	if err != nil {
		return hide(ReasonLookupFailed, id, err)
	}
	if route.Path == "" && p.cfg.RequirePath {
		return hide(ReasonNoPath, id, nil)
	}

	href, err := p.cfg.URLs.Build(ctx, route.Path, scope, route.Query)
	if err != nil {
		return hide(ReasonURLFailed, id, err)
	}

	return Decision{
		Reason: ReasonShown,
		ID:     id,
		Button: domain.ButtonDescriptor{
			Label:     p.cfg.Labels.Translate(ctx, domain.PreviewButtonLabel),
			OnClick:   OnClick(href),
			Class:     domain.PreviewButtonClass,
			SortOrder: domain.PreviewButtonSortOrder,
		},
	}
}

// OnClick returns the script opening href in a new window.
func OnClick(href string) string {
	return fmt.Sprintf("window.open('%s');", strings.ReplaceAll(href, "'", "%27"))
}

// Deps are the collaborators shared by the built-in providers.
type Deps struct {
	Categories domain.CategoryRepository
	Pages      domain.PageRepository
	Products   domain.ProductRepository
	Rewrites   domain.RewriteRepository
	Scopes     *ScopeResolver
	URLs       *URLBuilder
	Labels     Labeler

	// HomeIdentifier is the CMS page served at the site root.
	HomeIdentifier string
}

// NewCategoryProvider previews active categories other than the default
// category, at their url_rewrite path in the request store view.
func NewCategoryProvider(d Deps) (*Provider[*domain.Category], error) {
	if d.Categories == nil || d.Rewrites == nil || d.Scopes == nil {
		return nil, errors.New("category provider requires Categories, Rewrites and Scopes")
	}
	return NewProvider(Config[*domain.Category]{
		Entity:  EntityCategory,
		IDParam: ParamID,
		Fetch:   d.Categories.GetByID,
		Guard:   NotDefaultCategory,
		Visible: CategoryActive,
		Scope:   RequestScope[*domain.Category](d.Scopes),
		Path: RewritePath[*domain.Category]{
			Rewrites:   d.Rewrites,
			EntityType: domain.EntityTypeCategory,
			EntityID:   func(c *domain.Category) int64 { return c.ID },
		},
		RequirePath: true,
		URLs:        d.URLs,
		Labels:      d.Labels,
	})
}

// NewPageProvider previews active CMS pages at their identifier, in the
// first store view the page is assigned to.
func NewPageProvider(d Deps) (*Provider[*domain.Page], error) {
	if d.Pages == nil {
		return nil, errors.New("page provider requires Pages")
	}
	home := d.HomeIdentifier
	if home == "" {
		home = domain.HomePageIdentifier
	}
	return NewProvider(Config[*domain.Page]{
		Entity:  EntityPage,
		IDParam: ParamPageID,
		Fetch:   d.Pages.GetByID,
		Visible: PageActive,
		Scope:   PageStoreScope,
		Path:    PageIdentifierPath{HomeIdentifier: home},
		URLs:    d.URLs,
		Labels:  d.Labels,
	})
}

// NewProductProvider previews enabled products visible in the catalog at
// their url_rewrite path in the request store view.
func NewProductProvider(d Deps) (*Provider[*domain.Product], error) {
	if d.Products == nil || d.Rewrites == nil || d.Scopes == nil {
		return nil, errors.New("product provider requires Products, Rewrites and Scopes")
	}
	return NewProvider(Config[*domain.Product]{
		Entity:  EntityProduct,
		IDParam: ParamID,
		Fetch:   d.Products.GetByID,
		Visible: ProductEnabledInCatalog,
		Scope:   RequestScope[*domain.Product](d.Scopes),
		Path: RewritePath[*domain.Product]{
			Rewrites:   d.Rewrites,
			EntityType: domain.EntityTypeProduct,
			EntityID:   func(p *domain.Product) int64 { return p.ID },
		},
		RequirePath: true,
		URLs:        d.URLs,
		Labels:      d.Labels,
	})
}

// NewProductRouteProvider previews enabled products through the internal
// product view route. Unlike NewProductProvider it does not check visibility.
func NewProductRouteProvider(d Deps) (*Provider[*domain.Product], error) {
	if d.Products == nil || d.Scopes == nil {
		return nil, errors.New("product route provider requires Products and Scopes")
	}
	return NewProvider(Config[*domain.Product]{
		Entity:  EntityProductRoute,
		IDParam: ParamID,
		Fetch:   d.Products.GetByID,
		Visible: ProductEnabled,
		Scope:   RequestScope[*domain.Product](d.Scopes),
		Path: StaticRoute[*domain.Product]{
			Path:     ProductViewRoute,
			IDParam:  ParamID,
			EntityID: func(p *domain.Product) int64 { return p.ID },
		},
		URLs:   d.URLs,
		Labels: d.Labels,
	})
}
