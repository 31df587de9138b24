package routes

import (
	"net/http"

	"github.com/dukerupert/previewbtn/internal/middleware"
	"github.com/dukerupert/previewbtn/internal/router"
)

// PreviewButtonPattern is the admin route serving preview button data.
const PreviewButtonPattern = "/admin/{entity}/{action}/preview-button"

// RegisterAdminRoutes registers the admin API routes.
// All routes except CORS preflight require the admin API token.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(
		middleware.RequireAdminToken(deps.APIToken),
		middleware.Locale(deps.Locales),
	)

	admin.Get(PreviewButtonPattern, deps.PreviewHandler.ButtonData)

	// Preflight requests carry no credentials.
	r.Options(PreviewButtonPattern, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
