package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dukerupert/previewbtn/internal/i18n"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestRequestID(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var seen string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		RequestID(okHandler).ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestGetLogger_Fallbacks(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.Same(t, slog.Default(), GetLogger(context.Background()))
}

func TestWithRequestLogger(t *testing.T) {
	var buf strings.Builder
	base := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestID(WithRequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("resolved")
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/page/edit/preview-button", nil)
	req.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "path=/admin/page/edit/preview-button")
}

func TestRequireAdminToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		header   string
		value    string
		expected int
	}{
		{name: "disabled when token empty", token: "", expected: http.StatusOK},
		{name: "missing credentials", token: "s3cret", expected: http.StatusUnauthorized},
		{name: "valid bearer", token: "s3cret", header: "Authorization", value: "Bearer s3cret", expected: http.StatusOK},
		{name: "wrong bearer", token: "s3cret", header: "Authorization", value: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "non bearer scheme", token: "s3cret", header: "Authorization", value: "Basic s3cret", expected: http.StatusUnauthorized},
		{name: "admin token header", token: "s3cret", header: AdminTokenHeader, value: "s3cret", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/product/edit/preview-button", nil)
			req.Header.Set("Accept", "application/json")
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			RequireAdminToken(tt.token)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}

type fixedMatcher struct{ tag language.Tag }

func (m fixedMatcher) Match(string) language.Tag { return m.tag }

func TestLocale(t *testing.T) {
	var got language.Tag
	h := Locale(fixedMatcher{language.German})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = i18n.LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, language.German, got)
	assert.Equal(t, "de", rec.Header().Get("Content-Language"))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/admin/product/edit/preview-button", "/admin/:entity/:action/preview-button"},
		{"/admin/page/new/preview-button", "/admin/:entity/:action/preview-button"},
		{"/admin/product-route/edit/preview-button", "/admin/:entity/:action/preview-button"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/admin/product/42", "/other"},
		{"/wp-login.php", "/other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizePath(tt.path), tt.path)
	}
}

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)
	h := m.Middleware(okHandler)

	for _, entity := range []string{"product", "category"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/"+entity+"/edit/preview-button", nil))
	}

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/admin/:entity/:action/preview-button", "200"))
	assert.Equal(t, 2.0, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
}
