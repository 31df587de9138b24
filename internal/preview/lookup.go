package preview

import (
	"context"

	"github.com/dukerupert/previewbtn/internal/domain"
)

// LookupStatus tells a missing entity apart from a failed fetch.
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Fetcher loads an entity by id.
type Fetcher[T any] func(ctx context.Context, id int64) (T, error)

// Lookup is the outcome of fetching an entity.
type Lookup[T any] struct {
	Entity T
	Status LookupStatus
	Err    error // set for LookupNotFound and LookupFailed
}

// Fetch runs fetch and classifies the result. ENOTFOUND errors become
// LookupNotFound; every other error is LookupFailed.
func Fetch[T any](ctx context.Context, fetch Fetcher[T], id int64) Lookup[T] {
	entity, err := fetch(ctx, id)
	switch {
	case err == nil:
		return Lookup[T]{Entity: entity, Status: LookupFound}
	case domain.IsCode(err, domain.ENOTFOUND):
		return Lookup[T]{Status: LookupNotFound, Err: err}
	default:
		return Lookup[T]{Status: LookupFailed, Err: err}
	}
}
