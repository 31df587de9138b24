package preview

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dukerupert/previewbtn/internal/domain"
)

const (
	// StoreParam carries the target store code on storefront URLs.
	StoreParam = "___store"

	// SessionIDParam is the session id query parameter. Preview links never carry it.
	SessionIDParam = "SID"
)

// URLBuilder builds absolute storefront URLs for admin-generated links.
// It never reads the current request, so no admin state leaks into a URL.
type URLBuilder struct {
	base   *url.URL
	stores domain.StoreRepository
}

// NewURLBuilder creates a builder for the given storefront base URL.
// Store views with their own base_url override it.
func NewURLBuilder(baseURL string, stores domain.StoreRepository) (*URLBuilder, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &URLBuilder{base: base, stores: stores}, nil
}

// Build composes base URL, route path and query parameters. A non-zero
// scope selects that store view and adds StoreParam; caller params are
// applied first so the fixed parameters win on collision. Store ids
// that do not exist are passed through as-is.
func (b *URLBuilder) Build(ctx context.Context, routePath string, scope int64, params url.Values) (string, error) {
	base := b.base

	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}

	if scope != domain.AdminStoreID {
		code := strconv.FormatInt(scope, 10)

		store, err := b.stores.GetByID(ctx, scope)
		switch {
		case err == nil:
			code = store.Code
			if store.BaseURL != "" {
				if u, err := parseBaseURL(store.BaseURL); err == nil {
					base = u
				}
			}
		case domain.IsCode(err, domain.ENOTFOUND):
			// keep the raw id
		default:
			return "", err
		}

		query.Set(StoreParam, code)
	}
	query.Del(SessionIDParam)

	u := *base
	u.Path = base.Path + strings.TrimLeft(routePath, "/")
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
