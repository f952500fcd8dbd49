package cartera

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCurrency is the session currency used when none is configured.
const DefaultCurrency = "EUR"

// ValidationError reports why a movement was rejected. A rejected
// movement leaves the ledger strictly unchanged: no partial record is
// ever created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid movement: %s %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Ledger is the authoritative, insertion-ordered collection of
// movement records for one session.
//
// It keeps two views of the same history: the open position records
// (buys, with quantities reduced by later sells, FIFO) and the journal
// of every accepted movement. Records are owned exclusively by the
// ledger; accessors return copies.
//
// The mutex covers the one asynchronous writer, the price feed
// watcher. Everything else runs to completion on the caller.
type Ledger struct {
	mu        sync.Mutex
	currency  string
	nextID    uint64
	records   []Movement // open buy records, oldest first
	journal   []Movement // every accepted movement, oldest first
	lastPrice map[string]Money
}

// NewLedger creates an empty ledger. An empty currency defaults to
// DefaultCurrency.
func NewLedger(currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Ledger{
		currency:  currency,
		lastPrice: make(map[string]Money),
	}
}

// Currency returns the session currency of the ledger.
func (l *Ledger) Currency() string { return l.currency }

// Record validates and applies a movement.
//
// A Buy appends a new position record and returns its freshly assigned
// identifier. A Sell reduces existing records of the same asset, first
// in first out by registration time, and returns no new position
// identifier; a sell exceeding the net held quantity is rejected, the
// ledger never materializes a negative quantity.
//
// On validation failure the returned error is a *ValidationError and
// the ledger is left unchanged.
func (l *Ledger) Record(mv Movement) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	mv.Asset = strings.TrimSpace(mv.Asset)
	if mv.Asset == "" {
		return 0, invalid("asset", "symbol is missing")
	}
	if mv.Type == "" {
		mv.Type = Buy
	}
	if mv.Type != Buy && mv.Type != Sell {
		return 0, invalid("type", "must be %q or %q, got %q", Buy, Sell, mv.Type)
	}
	if !mv.Quantity.IsPositive() {
		return 0, invalid("quantity", "must be positive, got %s", mv.Quantity)
	}
	if mv.PurchasePrice.IsNegative() {
		return 0, invalid("purchase price", "must not be negative, got %s", mv.PurchasePrice.Amount())
	}
	if mv.CurrentPrice.IsNegative() {
		return 0, invalid("current price", "must not be negative, got %s", mv.CurrentPrice.Amount())
	}

	// Resolve amounts entered without a currency against the session one.
	mv.PurchasePrice = mv.PurchasePrice.in(l.currency)
	mv.CurrentPrice = mv.CurrentPrice.in(l.currency)
	if mv.PurchasePrice.Currency() != l.currency {
		return 0, invalid("purchase price", "currency %s does not match session currency %s", mv.PurchasePrice.Currency(), l.currency)
	}
	if mv.CurrentPrice.Currency() != l.currency {
		return 0, invalid("current price", "currency %s does not match session currency %s", mv.CurrentPrice.Currency(), l.currency)
	}

	// An absent current price falls back to the last observed one for
	// the asset, typically supplied by the price feed.
	if mv.CurrentPrice.IsZero() {
		if last, ok := l.lastPrice[mv.Asset]; ok {
			mv.CurrentPrice = last
		}
	}

	if mv.Type == Sell {
		held := l.netQuantity(mv.Asset)
		if held.LessThan(mv.Quantity) {
			return 0, invalid("quantity", "cannot sell %s of %s, position is only %s", mv.Quantity, mv.Asset, held)
		}
	}

	if mv.Time.IsZero() {
		mv.Time = time.Now()
	}
	l.nextID++
	mv.ID = l.nextID

	switch mv.Type {
	case Buy:
		l.records = append(l.records, mv)
		if !mv.CurrentPrice.IsZero() {
			l.lastPrice[mv.Asset] = mv.CurrentPrice
		}
		l.journal = append(l.journal, mv)
		return mv.ID, nil
	default: // Sell
		// The journal keeps the realized cost basis of the sold units,
		// per unit, so gains survive the record reduction below.
		cost := l.openLots(mv.Asset).fifoCostOfSelling(mv.Quantity)
		mv.PurchasePrice = cost.Div(mv.Quantity)
		l.reduce(mv.Asset, mv.Quantity)
		if !mv.CurrentPrice.IsZero() {
			l.lastPrice[mv.Asset] = mv.CurrentPrice
		}
		l.journal = append(l.journal, mv)
		// A sell opens no position, so there is no new record id.
		return 0, nil
	}
}

// reduce consumes open records of the asset, oldest first. The caller
// has already checked the net position covers the quantity.
func (l *Ledger) reduce(asset string, quantity Quantity) {
	out := l.records[:0]
	for _, r := range l.records {
		if r.Asset != asset || quantity.IsZero() {
			out = append(out, r)
			continue
		}
		if r.Quantity.GreaterThan(quantity) {
			r.Quantity = r.Quantity.Sub(quantity)
			quantity = Q(0)
			out = append(out, r)
			continue
		}
		// Record fully consumed: it leaves the open positions, the
		// journal keeps its history.
		quantity = quantity.Sub(r.Quantity)
	}
	l.records = out
}

// openLots views the open records of an asset as cost basis lots,
// oldest first.
func (l *Ledger) openLots(asset string) lots {
	var open lots
	for _, r := range l.records {
		if r.Asset == asset {
			open = append(open, lot{Quantity: r.Quantity, Price: r.PurchasePrice})
		}
	}
	return open
}

func (l *Ledger) netQuantity(asset string) Quantity {
	var held Quantity
	for _, r := range l.records {
		if r.Asset == asset {
			held = held.Add(r.Quantity)
		}
	}
	return held
}

// NetQuantity returns the net held quantity of an asset.
func (l *Ledger) NetQuantity(asset string) Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.netQuantity(asset)
}

// Positions returns a snapshot of the open position records, most
// recently registered first.
func (l *Ledger) Positions() []Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Movement, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

// Movements returns a snapshot of the full movement journal, most
// recent first.
func (l *Ledger) Movements() []Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Movement, len(l.journal))
	for i, r := range l.journal {
		out[len(l.journal)-1-i] = r
	}
	return out
}

// Assets returns the assets with an open position, in order of first
// registration.
func (l *Ledger) Assets() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var assets []string
	seen := make(map[string]struct{})
	for _, r := range l.records {
		if _, ok := seen[r.Asset]; ok {
			continue
		}
		seen[r.Asset] = struct{}{}
		assets = append(assets, r.Asset)
	}
	return assets
}

// SetCurrentPrice applies a price observation to every open record of
// the asset and remembers it as the last known price for subsequent
// movements.
func (l *Ledger) SetCurrentPrice(asset string, price Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if price.IsNegative() {
		return invalid("current price", "must not be negative, got %s", price.Amount())
	}
	price = price.in(l.currency)
	if price.Currency() != l.currency {
		return invalid("current price", "currency %s does not match session currency %s", price.Currency(), l.currency)
	}

	l.lastPrice[asset] = price
	for i := range l.records {
		if l.records[i].Asset == asset {
			l.records[i].CurrentPrice = price
		}
	}
	return nil
}

// LastPrice returns the last known price for an asset, if any was
// observed in this session.
func (l *Ledger) LastPrice(asset string) (Money, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.lastPrice[asset]
	return p, ok
}
