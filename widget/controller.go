package widget

import (
	"context"
	"sync"
	"time"

	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/service"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultDebounce is the quiet interval after the last edit
	// before a fetch is issued.
	DefaultDebounce = 350 * time.Millisecond

	// DefaultFetchTimeout bounds one upstream round trip so a
	// hung request cannot leave the controller in Fetching.
	DefaultFetchTimeout = 10 * time.Second
)

// Listener receives every published state snapshot.
type Listener func(State)

// Options tune one controller instance. Zero values fall back
// to the defaults above, buy-side preference and the standard
// fallback delivery wording.
type Options struct {
	Debounce     time.Duration
	FetchTimeout time.Duration
	Prefer       model.RateSide // which quote side drives the payable amount
	FallbackSLA  string         // shown when the rate card has no delivery estimate
}

// Controller owns the recompute cycle of one widget instance.
// Create with New, drive with Trigger, observe with
// OnStateChange, tear down with Close.
type Controller struct {
	source service.RateSource
	cache  storage.Cache

	debounce     time.Duration
	fetchTimeout time.Duration
	prefer       model.RateSide
	fallbackSLA  string

	mu        sync.Mutex
	state     State
	listeners []Listener
	pending   model.RateQuery
	timer     *time.Timer
	timerGen  uint64 // invalidates stale debounce firings
	inFlight  bool
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc
}

func New(source service.RateSource, cache storage.Cache, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}

	if opts.Prefer == "" {
		opts.Prefer = model.Buy
	}

	if opts.FallbackSLA == "" {
		opts.FallbackSLA = model.FallbackDeliverySLA
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		source:       source,
		cache:        cache,
		debounce:     opts.Debounce,
		fetchTimeout: opts.FetchTimeout,
		prefer:       opts.Prefer,
		fallbackSLA:  opts.FallbackSLA,
		state:        State{Phase: Idle},
		ctx:          ctx,
		cancel:       cancel,
	}
}

// OnStateChange registers a listener for published snapshots.
// Listeners run outside the controller's lock and may call
// Trigger again. Snapshots produced by concurrent goroutines
// may reach a listener out of order; State always returns the
// authoritative latest snapshot.
func (c *Controller) OnStateChange(fn Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// State returns the last published snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Trigger feeds one user-input event into the state machine.
// Edits restart the debounce timer with the latest query;
// explicit changes fetch immediately. Anything arriving while
// a fetch is in flight is dropped, not queued: at most one
// round trip is ever outstanding per controller.
func (c *Controller) Trigger(query model.RateQuery, reason Reason) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if c.inFlight {
		c.mu.Unlock()
		log.Debug().Str("city", query.CityCode).Str("currency", query.Currency).Msg("trigger dropped, fetch in flight")
		return
	}

	if err := query.Validate(); err != nil {
		// no network, no cache: publish the validation failure
		// right away so the renderer can disable the CTA
		c.stopTimerLocked()
		c.publish(State{Phase: Failed, Query: query, Err: err})
		return
	}

	if reason == ExplicitChange {
		c.stopTimerLocked()
		c.startFetch(query)
		return
	}

	c.pending = query
	c.resetTimerLocked()
	c.publish(State{Phase: Debouncing, Query: query})
}

// Close tears the controller down: the debounce timer stops and
// any in-flight fetch is aborted so nothing outlives the widget.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.closed = true
	c.stopTimerLocked()
	c.mu.Unlock()

	c.cancel()
}

func (c *Controller) resetTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}

	c.timerGen++
	gen := c.timerGen
	c.timer = time.AfterFunc(c.debounce, func() { c.onDebounce(gen) })
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.timerGen++
}

func (c *Controller) onDebounce(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.timerGen || c.state.Phase != Debouncing {
		c.mu.Unlock()
		return
	}

	// a fetch issued elsewhere wins; the pending edit is dropped
	if c.inFlight {
		c.mu.Unlock()
		return
	}

	c.startFetch(c.pending)
}

// startFetch enters Fetching and runs the round trip on its own
// goroutine. Callers must hold mu; publish releases it.
func (c *Controller) startFetch(query model.RateQuery) {
	c.inFlight = true
	c.publish(State{Phase: Fetching, Query: query})

	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
		defer cancel()

		key := storage.Key{CityCode: query.CityCode, Currency: query.Currency}
		doc, err := c.cache.GetOrFetch(ctx, key, func(ctx context.Context) (*ratecard.Value, error) {
			return c.source.FetchRateCard(ctx, query.CityCode)
		})

		var quote model.Quote
		if err == nil {
			quote, err = ratecard.Extract(doc, query.Currency)
		}

		c.mu.Lock()
		c.inFlight = false
		if c.closed {
			c.mu.Unlock()
			return
		}

		if err != nil {
			log.Debug().Err(err).Str("city", query.CityCode).Str("currency", query.Currency).Msg("recompute failed")
			// previously settled quote is cleared: an error next
			// to a stale total would read as a live price
			c.publish(State{Phase: Failed, Query: query, Err: err, DeliverySLA: c.fallbackSLA})
			return
		}

		st := State{Phase: Settled, Query: query, Quote: quote, DeliverySLA: quote.DeliverySLA}
		if st.DeliverySLA == "" {
			st.DeliverySLA = c.fallbackSLA
		}

		if payable, ok := quote.Payable(query.Amount, c.prefer); ok {
			st.Payable = payable
		}

		c.publish(st)
	}()
}

// publish stores st as the current state and notifies
// listeners. Callers must hold mu; publish releases it before
// invoking listeners so they can re-enter the controller.
// Because delivery happens outside the lock, callbacks racing
// across goroutines carry no ordering guarantee; c.state does.
func (c *Controller) publish(st State) {
	c.state = st
	ls := make([]Listener, len(c.listeners))
	copy(ls, c.listeners)
	c.mu.Unlock()

	for _, fn := range ls {
		fn(st)
	}
}
