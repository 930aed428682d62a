package storage

import (
	"context"

	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
)

// Key addresses one cached rate card read.
type Key struct {
	CityCode string // lower-cased city code
	Currency string // upper-cased currency code
}

// FetchFunc produces a fresh rate card document for a key.
type FetchFunc func(ctx context.Context) (*ratecard.Value, error)

// Cache interface describes the time-boxed memo of raw rate
// card documents sitting in front of the upstream API.
type Cache interface {
	// GetOrFetch returns the cached document for key while it is
	// still fresh, otherwise invokes fetch exactly once and
	// stores the result on success. Failures are never cached.
	// Concurrent calls for the same key are not coalesced here;
	// single-flight belongs to the recompute controller.
	GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (*ratecard.Value, error)

	// Invalidate drops the entry for key, if any.
	Invalidate(key Key)
}

// CatalogStore interface describes persistence for the
// quick-order form catalog.
type CatalogStore interface {
	// Load returns the persisted catalog of products, cities
	// and currencies.
	Load(ctx context.Context) (model.Catalog, error)
}
