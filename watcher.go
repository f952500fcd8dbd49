package cartera

import (
	"context"
	"log"
	"time"
)

// DefaultPollInterval is the time between two price refreshes.
const DefaultPollInterval = 60 * time.Second

// Watcher periodically refreshes the market price of one tracked asset
// and applies it to the session: the ledger records learn the new
// current price and the history gains one valuation point per cycle.
//
// One goroutine runs the whole cycle, so the callback never races with
// the poll loop.
type Watcher struct {
	feed     Feed
	session  *Session
	interval time.Duration

	// OnQuote, when set, is called after every cycle with the quote
	// that was applied, fresh or stale.
	OnQuote func(Quote)

	track chan string
	last  map[string]Quote
}

// NewWatcher creates a watcher polling the feed for asset. A zero
// interval means DefaultPollInterval.
func NewWatcher(feed Feed, session *Session, asset string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	w := &Watcher{
		feed:     feed,
		session:  session,
		interval: interval,
		track:    make(chan string, 1),
		last:     make(map[string]Quote),
	}
	w.track <- asset
	return w
}

// Track switches the watcher to a new asset. The switch triggers an
// immediate fetch and restarts the polling interval from there.
func (w *Watcher) Track(asset string) {
	// Collapse onto the latest request if the loop has not caught up.
	select {
	case <-w.track:
	default:
	}
	w.track <- asset
}

// Run polls until ctx is cancelled, fetching immediately on start and
// on every tracked asset change, then once per interval. It returns
// the ctx error on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	asset := <-w.track
	w.cycle(ctx, asset)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case asset = <-w.track:
			ticker.Reset(w.interval)
			w.cycle(ctx, asset)
		case <-ticker.C:
			w.cycle(ctx, asset)
		}
	}
}

// cycle runs one fetch-apply-observe round.
func (w *Watcher) cycle(ctx context.Context, asset string) {
	fctx, cancel := context.WithTimeout(ctx, w.interval)
	price, err := w.feed.FetchPrice(fctx, asset)
	cancel()
	if ctx.Err() != nil {
		return
	}

	q := Quote{Asset: asset, Price: price, Time: time.Now()}
	if err != nil {
		last, ok := w.last[asset]
		if !ok {
			// Nothing to fall back on, skip the cycle entirely.
			log.Printf("price feed: %v", err)
			return
		}
		log.Printf("price feed: %v (keeping last price %s)", err, last.Price)
		q.Price = last.Price
		q.Stale = true
	}
	w.last[asset] = q

	if err := w.session.Ledger.SetCurrentPrice(asset, q.Price); err != nil {
		log.Printf("price feed: %v", err)
		return
	}
	w.session.Observe()
	if w.OnQuote != nil {
		w.OnQuote(q)
	}
}
