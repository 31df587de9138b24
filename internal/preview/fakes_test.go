package preview

import (
	"context"
	"strconv"

	"github.com/dukerupert/previewbtn/internal/domain"
)

type fakeCategories struct {
	byID map[int64]*domain.Category
	err  error
}

func (f *fakeCategories) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.NotFound("category.get", "category", strconv.FormatInt(id, 10))
}

type fakePages struct {
	byID map[int64]*domain.Page
}

func (f *fakePages) GetByID(ctx context.Context, id int64) (*domain.Page, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.NotFound("page.get", "page", strconv.FormatInt(id, 10))
}

type fakeProducts struct {
	byID map[int64]*domain.Product
	err  error
}

func (f *fakeProducts) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.NotFound("product.get", "product", strconv.FormatInt(id, 10))
}

type fakeStores struct {
	byID       map[int64]*domain.Store
	defaultErr error
	getErr     error
}

func (f *fakeStores) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.NotFound("store.get", "store", strconv.FormatInt(id, 10))
}

func (f *fakeStores) DefaultStoreView(ctx context.Context) (*domain.Store, error) {
	if f.defaultErr != nil {
		return nil, f.defaultErr
	}
	for _, s := range f.byID {
		if s.IsDefault {
			return s, nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

type rewriteKey struct {
	entityID   int64
	entityType domain.EntityType
	storeID    int64
}

type fakeRewrites struct {
	paths map[rewriteKey]string
	err   error
	calls int
}

func (f *fakeRewrites) RequestPath(ctx context.Context, entityID int64, entityType domain.EntityType, storeID int64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.paths[rewriteKey{entityID, entityType, storeID}], nil
}

type echoLabels struct{}

func (echoLabels) Translate(ctx context.Context, key string) string { return key }

func testStores() *fakeStores {
	return &fakeStores{byID: map[int64]*domain.Store{
		0: {ID: 0, Code: "admin", Name: "Admin"},
		1: {ID: 1, Code: "default", Name: "Default Store View", IsDefault: true},
		5: {ID: 5, Code: "fr", Name: "French", BaseURL: "https://fr.shop.test/"},
	}}
}
