package middleware

import (
	"net/http"

	"github.com/dukerupert/previewbtn/internal/i18n"
	"golang.org/x/text/language"
)

// LocaleMatcher picks a supported locale for an Accept-Language value.
type LocaleMatcher interface {
	Match(acceptLanguage string) language.Tag
}

// Locale stores the admin user's preferred locale in the request context.
func Locale(m LocaleMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := m.Match(r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), tag)))
		})
	}
}
