package preview

import "github.com/dukerupert/previewbtn/internal/domain"

// Policy decides whether an entity is visible on the storefront.
type Policy[T any] func(entity T) bool

// CategoryActive shows active categories.
func CategoryActive(c *domain.Category) bool {
	return c != nil && c.IsActive
}

// NotDefaultCategory excludes the default category, which has no storefront page.
func NotDefaultCategory(c *domain.Category) bool {
	return c != nil && c.ID != domain.DefaultCategoryID
}

// PageActive shows active CMS pages.
func PageActive(p *domain.Page) bool {
	return p != nil && p.IsActive
}

// ProductEnabled shows enabled products regardless of visibility.
func ProductEnabled(p *domain.Product) bool {
	return p != nil && p.IsEnabled()
}

// ProductEnabledInCatalog shows enabled products listed in the catalog
// ("Catalog" or "Catalog, Search" visibility).
func ProductEnabledInCatalog(p *domain.Product) bool {
	return ProductEnabled(p) && p.IsVisibleInCatalog()
}
