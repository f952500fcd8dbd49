package cartera

import (
	"context"
	"time"
)

// Quote is one market price observation for an asset.
type Quote struct {
	Asset string
	Price Money
	Time  time.Time
	// Stale marks a quote that repeats the last known price because a
	// fresh one could not be fetched.
	Stale bool
}

// Feed provides market prices for assets.
type Feed interface {
	// FetchPrice returns the current market price of the asset, in the
	// feed's currency. It honors ctx cancellation.
	FetchPrice(ctx context.Context, asset string) (Money, error)
}
