package domain

import "context"

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// DefaultCategoryID is the "Default Category" created with every install.
// It is the parent of the storefront category tree and has no storefront page.
const DefaultCategoryID int64 = 2

// Category is a catalog category row.
type Category struct {
	ID       int64
	ParentID int64
	Name     string
	IsActive bool
}

// ProductStatus is the enabled/disabled attribute of a product.
type ProductStatus int16

const (
	ProductStatusEnabled  ProductStatus = 1
	ProductStatusDisabled ProductStatus = 2
)

// ProductVisibility controls where a product is listed on the storefront.
type ProductVisibility int16

const (
	VisibilityNotVisible ProductVisibility = 1 // Not visible individually
	VisibilityInCatalog  ProductVisibility = 2
	VisibilityInSearch   ProductVisibility = 3
	VisibilityBoth       ProductVisibility = 4 // Catalog, Search
)

// Product is a catalog product row.
type Product struct {
	ID         int64
	SKU        string
	Name       string
	Status     ProductStatus
	Visibility ProductVisibility
}

// IsEnabled reports whether the product status is enabled.
func (p *Product) IsEnabled() bool {
	return p.Status == ProductStatusEnabled
}

// IsVisibleInCatalog reports whether the product is listed in category pages.
func (p *Product) IsVisibleInCatalog() bool {
	return p.Visibility == VisibilityInCatalog || p.Visibility == VisibilityBoth
}

// CategoryRepository reads categories.
type CategoryRepository interface {
	// GetByID returns an ENOTFOUND error when no category has the id.
	GetByID(ctx context.Context, id int64) (*Category, error)
}

// ProductRepository reads products.
type ProductRepository interface {
	// GetByID returns an ENOTFOUND error when no product has the id.
	GetByID(ctx context.Context, id int64) (*Product, error)
}
