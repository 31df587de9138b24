package admin

import (
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/previewbtn/internal/handler"
	"github.com/dukerupert/previewbtn/internal/middleware"
	"github.com/dukerupert/previewbtn/internal/preview"
	"github.com/dukerupert/previewbtn/internal/telemetry"
)

// PreviewButtonHandler serves the "Preview as customer" button data for
// admin edit forms.
type PreviewButtonHandler struct {
	providers map[string]preview.ButtonProvider
	metrics   *telemetry.PreviewMetrics
}

// NewPreviewButtonHandler creates a handler routing on each provider's entity name.
// metrics may be nil.
func NewPreviewButtonHandler(metrics *telemetry.PreviewMetrics, providers ...preview.ButtonProvider) *PreviewButtonHandler {
	byEntity := make(map[string]preview.ButtonProvider, len(providers))
	for _, p := range providers {
		byEntity[p.Entity()] = p
	}
	return &PreviewButtonHandler{providers: byEntity, metrics: metrics}
}

// ButtonData handles GET /admin/{entity}/{action}/preview-button
//
// The body is the button descriptor, or an empty JSON array when no
// button should be rendered.
func (h *PreviewButtonHandler) ButtonData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entity := r.PathValue("entity")

	provider, ok := h.providers[entity]
	if !ok {
		handler.NotFoundResponse(w, r)
		return
	}

	start := time.Now()
	decision := provider.ButtonData(ctx, newRequest(r))
	h.metrics.Observe(entity, string(decision.Reason), time.Since(start))

	logger := middleware.GetLogger(ctx)
	if decision.Failed() {
		logger.Warn("preview button hidden after failure",
			"entity", entity,
			"id", decision.ID,
			"reason", decision.Reason,
			"error", decision.Err,
		)
		telemetry.CaptureErrorFromContext(ctx, decision.Err,
			map[string]string{"entity": entity, "reason": string(decision.Reason)},
			map[string]any{"entity_id": decision.ID, "request_id": middleware.GetRequestID(ctx)},
		)
	} else {
		logger.Debug("preview button resolved", "entity", entity, "id", decision.ID, "reason", decision.Reason)
	}

	if !decision.Shown() {
		handler.JSON(w, http.StatusOK, []struct{}{})
		return
	}
	handler.JSON(w, http.StatusOK, decision.Button)
}

// request exposes an admin HTTP request to the preview providers.
type request struct {
	query  url.Values
	action string
}

func newRequest(r *http.Request) request {
	return request{query: r.URL.Query(), action: r.PathValue("action")}
}

func (r request) Param(name string) string { return r.query.Get(name) }

func (r request) ActionName() string { return r.action }
