package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultTTL is how long a fetched rate card stays fresh.
	DefaultTTL = 2 * time.Minute

	warmConcurrency = 4
)

// RateCache is a plain key to entry memo of raw rate card
// documents. It never deduplicates concurrent fetches for the
// same key; it only answers "is the last successful document
// for this key still fresh".
type RateCache struct {
	lock    sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[storage.Key]entry
}

type entry struct {
	doc       *ratecard.Value
	fetchedAt time.Time
}

func New(ttl time.Duration) *RateCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock takes the clock as a dependency so tests can
// drive TTL expiry without sleeping.
func NewWithClock(ttl time.Duration, now func() time.Time) *RateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RateCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[storage.Key]entry),
	}
}

// GetOrFetch implements storage.Cache.
func (c *RateCache) GetOrFetch(ctx context.Context, key storage.Key, fetch storage.FetchFunc) (*ratecard.Value, error) {
	key = normalize(key)

	c.lock.RLock()
	e, ok := c.entries[key]
	c.lock.RUnlock()

	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		log.Debug().Str("city", key.CityCode).Str("currency", key.Currency).Msg("rate card cache hit")
		return e.doc, nil
	}

	doc, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.lock.Lock()
	c.entries[key] = entry{doc: doc, fetchedAt: c.now()}
	c.lock.Unlock()

	log.Debug().Str("city", key.CityCode).Str("currency", key.Currency).Msg("rate card cached")
	return doc, nil
}

// Invalidate implements storage.Cache.
func (c *RateCache) Invalidate(key storage.Key) {
	key = normalize(key)

	c.lock.Lock()
	delete(c.entries, key)
	c.lock.Unlock()
}

// Warm prefetches rate cards for the given keys with bounded
// concurrency. Individual failures are logged and skipped; a
// cold cache entry just means the first user request fetches.
func (c *RateCache) Warm(ctx context.Context, keys []storage.Key, fetch func(ctx context.Context, key storage.Key) (*ratecard.Value, error)) {
	sem := semaphore.NewWeighted(warmConcurrency)
	wg := sync.WaitGroup{}

	for _, key := range keys {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("cache warm-up interrupted")
			break
		}

		wg.Add(1)
		go func(k storage.Key) {
			defer wg.Done()
			defer sem.Release(1)

			_, err := c.GetOrFetch(ctx, k, func(ctx context.Context) (*ratecard.Value, error) {
				return fetch(ctx, k)
			})
			if err != nil {
				log.Error().Err(err).Str("city", k.CityCode).Msg("unable to warm rate card cache")
			}
		}(key)
	}

	wg.Wait()
}

func normalize(key storage.Key) storage.Key {
	return storage.Key{
		CityCode: strings.ToLower(strings.TrimSpace(key.CityCode)),
		Currency: strings.ToUpper(strings.TrimSpace(key.Currency)),
	}
}
