package domain

import "context"

// HomePageIdentifier is the identifier of the CMS page served at the site root.
const HomePageIdentifier = "home"

// Page represents a CMS content page.
type Page struct {
	ID         int64
	Identifier string // URL key, e.g. "about-us"
	Title      string
	IsActive   bool

	// StoreIDs lists the store views the page is assigned to, ascending.
	// AdminStoreID (0) means "all store views".
	StoreIDs []int64
}

// PageRepository reads CMS pages.
type PageRepository interface {
	// GetByID returns an ENOTFOUND error when no page has the id.
	GetByID(ctx context.Context, id int64) (*Page, error)
}
