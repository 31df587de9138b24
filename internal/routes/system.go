package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/dukerupert/previewbtn/internal/handler"
	"github.com/dukerupert/previewbtn/internal/router"
)

const healthTimeout = 2 * time.Second

// RegisterSystemRoutes registers /health and /metrics.
func RegisterSystemRoutes(r *router.Router, deps SystemDeps) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
			defer cancel()

			if err := deps.Ping(ctx); err != nil {
				handler.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		handler.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.MetricsHandler != nil {
		r.Handle("GET", "/metrics", deps.MetricsHandler)
	}
}
