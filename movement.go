package cartera

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType identifies the direction of a movement.
type MovementType string

const (
	// Buy opens or extends a position in an asset.
	Buy MovementType = "buy"
	// Sell reduces existing positions of the same asset.
	Sell MovementType = "sell"
)

func (t MovementType) String() string { return string(t) }

// IsSell reports whether the movement reduces a position.
func (t MovementType) IsSell() bool { return t == Sell }

// ParseMovementType parses a string into a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown movement type: %q", s)
	}
}

// Movement is the atomic ledger entity: a user-submitted buy or sell of
// an asset, and, once accepted, the stored position record it creates.
//
// ID and Time are assigned by the ledger at registration and are
// immutable afterwards. Quantity of a stored Buy record is the only
// field the ledger ever mutates in place, when later Sell movements
// consume it.
type Movement struct {
	ID            uint64
	Type          MovementType
	Asset         string
	Quantity      Quantity
	PurchasePrice Money // price per unit at entry time
	CurrentPrice  Money // last known market price per unit, possibly stale
	Time          time.Time
}

// NewBuy creates a buy movement ready to be registered.
func NewBuy(asset string, quantity Quantity, purchase, current Money) Movement {
	return Movement{Type: Buy, Asset: asset, Quantity: quantity, PurchasePrice: purchase, CurrentPrice: current}
}

// NewSell creates a sell movement ready to be registered. The price is
// the per-unit price obtained for the sale.
func NewSell(asset string, quantity Quantity, price Money) Movement {
	return Movement{Type: Sell, Asset: asset, Quantity: quantity, CurrentPrice: price}
}

// Invested is the cost of this record: quantity times purchase price.
func (m Movement) Invested() Money { return m.PurchasePrice.Mul(m.Quantity) }

// CurrentValue is the market value of this record: quantity times
// current price.
func (m Movement) CurrentValue() Money { return m.CurrentPrice.Mul(m.Quantity) }

// Gain is the unrealized gain of this record: current value minus cost.
func (m Movement) Gain() Money { return m.CurrentValue().Sub(m.Invested()) }

// jmovement is the wire shape of a movement in the JSONL session format.
// Prices are plain decimals in the session currency.
type jmovement struct {
	ID       uint64          `json:"id,omitempty"`
	Type     MovementType    `json:"type"`
	Asset    string          `json:"asset"`
	Quantity Quantity        `json:"quantity"`
	Purchase decimal.Decimal `json:"purchase"`
	Current  decimal.Decimal `json:"current"`
	Time     *time.Time      `json:"time,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Movement.
func (m Movement) MarshalJSON() ([]byte, error) {
	j := jmovement{
		ID:       m.ID,
		Type:     m.Type,
		Asset:    m.Asset,
		Quantity: m.Quantity,
		Purchase: m.PurchasePrice.Amount(),
		Current:  m.CurrentPrice.Amount(),
	}
	if !m.Time.IsZero() {
		t := m.Time
		j.Time = &t
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Movement.
// A missing type defaults to a buy.
func (m *Movement) UnmarshalJSON(data []byte) error {
	var j jmovement
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Type == "" {
		j.Type = Buy
	}
	if _, err := ParseMovementType(string(j.Type)); err != nil {
		return err
	}
	m.ID = j.ID
	m.Type = j.Type
	m.Asset = j.Asset
	m.Quantity = j.Quantity
	m.PurchasePrice = M(j.Purchase, "")
	m.CurrentPrice = M(j.Current, "")
	if j.Time != nil {
		m.Time = *j.Time
	}
	return nil
}
