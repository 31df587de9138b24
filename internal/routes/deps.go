package routes

import (
	"context"
	"net/http"

	"github.com/dukerupert/previewbtn/internal/handler/admin"
	"github.com/dukerupert/previewbtn/internal/middleware"
)

// AdminDeps contains dependencies for admin routes
type AdminDeps struct {
	PreviewHandler *admin.PreviewButtonHandler

	// Locales resolves the admin user's locale from Accept-Language.
	Locales middleware.LocaleMatcher

	// APIToken protects the admin API. Empty disables the check.
	APIToken string
}

// SystemDeps contains dependencies for operational routes
type SystemDeps struct {
	// Ping checks the database. Nil reports healthy without checking.
	Ping func(ctx context.Context) error

	MetricsHandler http.Handler
}
