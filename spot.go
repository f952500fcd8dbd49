package cartera

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// SpotFeed fetches spot prices from a JSON HTTP endpoint. The endpoint
// URL and the location of the price inside the payload are both
// templates over the asset symbol, so one feed serves any asset the
// provider knows.
type SpotFeed struct {
	// base is the endpoint URL with one %s verb for the symbol.
	base string
	// path is the jsonpath of the price with one %s verb for the symbol.
	path string

	currency string
	client   *http.Client
}

// NewSpotFeed creates a feed for an arbitrary JSON price endpoint.
func NewSpotFeed(base, path, currency string) *SpotFeed {
	return &SpotFeed{
		base:     base,
		path:     path,
		currency: currency,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// CoinGecko creates a feed over the public CoinGecko simple price API.
// Symbols are CoinGecko asset ids, like "bitcoin" or "ethereum".
func CoinGecko(currency string) *SpotFeed {
	cur := strings.ToLower(currency)
	return NewSpotFeed(
		"https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies="+cur,
		"$.%s."+cur,
		currency,
	)
}

// FetchPrice implements the Feed interface.
func (f *SpotFeed) FetchPrice(ctx context.Context, asset string) (Money, error) {
	symbol := strings.ToLower(strings.TrimSpace(asset))
	if symbol == "" {
		return Money{}, fmt.Errorf("fetch price: empty symbol")
	}

	doc, err := jwget(ctx, f.client, fmt.Sprintf(f.base, url.QueryEscape(symbol)))
	if err != nil {
		return Money{}, fmt.Errorf("fetch price for %s: %w", asset, err)
	}

	expr := fmt.Sprintf(f.path, symbol)
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return Money{}, fmt.Errorf("fetch price for %s: no price at %s: %w", asset, expr, err)
	}
	// Filter expressions yield a list, usually of one value.
	if list, ok := v.([]interface{}); ok && len(list) == 1 {
		v = list[0]
	}

	switch n := v.(type) {
	case float64:
		return M(n, f.currency), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return Money{}, fmt.Errorf("fetch price for %s: %q is not a number", asset, n)
		}
		return M(d, f.currency), nil
	default:
		return Money{}, fmt.Errorf("fetch price for %s: unexpected value %v at %s", asset, v, expr)
	}
}
