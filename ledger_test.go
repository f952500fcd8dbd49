package cartera

import (
	"errors"
	"testing"
)

func TestLedgerRecordRejections(t *testing.T) {
	testCases := []struct {
		name     string
		movement Movement
		field    string
	}{
		{
			name:     "missing asset",
			movement: NewBuy("", Q(1), eur(10), eur(10)),
			field:    "asset",
		},
		{
			name:     "blank asset",
			movement: NewBuy("   ", Q(1), eur(10), eur(10)),
			field:    "asset",
		},
		{
			name:     "zero quantity",
			movement: NewBuy("btc", Q(0), eur(10), eur(10)),
			field:    "quantity",
		},
		{
			name:     "negative quantity",
			movement: NewBuy("btc", Q(-2), eur(10), eur(10)),
			field:    "quantity",
		},
		{
			name:     "negative purchase price",
			movement: NewBuy("btc", Q(1), eur(-10), eur(10)),
			field:    "purchase price",
		},
		{
			name:     "negative current price",
			movement: NewBuy("btc", Q(1), eur(10), eur(-10)),
			field:    "current price",
		},
		{
			name:     "foreign currency",
			movement: NewBuy("btc", Q(1), M(10, "USD"), eur(10)),
			field:    "purchase price",
		},
		{
			name:     "unknown type",
			movement: Movement{Type: "short", Asset: "btc", Quantity: Q(1)},
			field:    "type",
		},
		{
			name:     "sell without position",
			movement: NewSell("btc", Q(1), eur(10)),
			field:    "quantity",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger("EUR")
			_, err := l.Record(tc.movement)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Record() error = %v, want a *ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("rejected field = %q, want %q", verr.Field, tc.field)
			}
			// A rejected movement leaves the ledger unchanged.
			if got := len(l.Movements()); got != 0 {
				t.Errorf("journal has %d movements after rejection, want 0", got)
			}
		})
	}
}

func TestLedgerRecordBuy(t *testing.T) {
	l := NewLedger("EUR")

	id1 := mustRecord(t, l, NewBuy("btc", Q(2), eur(100), eur(120)))
	id2 := mustRecord(t, l, NewBuy("eth", Q(10), eur(20), eur(18)))

	if id1 != 1 || id2 != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", id1, id2)
	}

	positions := l.Positions()
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(positions))
	}
	// Most recent first.
	if positions[0].Asset != "eth" || positions[1].Asset != "btc" {
		t.Errorf("positions order = %s, %s, want eth, btc", positions[0].Asset, positions[1].Asset)
	}

	if got := l.NetQuantity("btc"); !got.Equal(Q(2)) {
		t.Errorf("NetQuantity(btc) = %s, want 2", got)
	}
}

func TestLedgerRecordTrimsAsset(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("  btc  ", Q(1), eur(100), eur(100)))
	if got := l.Positions()[0].Asset; got != "btc" {
		t.Errorf("asset = %q, want %q", got, "btc")
	}
}

func TestLedgerSellFifo(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(100), eur(150), eur(150)))
	mustRecord(t, l, NewBuy("eth", Q(5), eur(20), eur(20)))
	mustRecord(t, l, NewBuy("btc", Q(50), eur(160), eur(160)))

	id, err := l.Record(NewSell("btc", Q(120), eur(170)))
	if err != nil {
		t.Fatalf("Record(sell) failed: %v", err)
	}
	// A sell opens no position.
	if id != 0 {
		t.Errorf("sell id = %d, want 0", id)
	}

	if got := l.NetQuantity("btc"); !got.Equal(Q(30)) {
		t.Errorf("NetQuantity(btc) = %s, want 30", got)
	}

	positions := l.Positions()
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(positions))
	}
	// The oldest btc record is consumed entirely, the newest keeps
	// the remainder at its own purchase price. eth is untouched.
	if !positions[0].Quantity.Equal(Q(30)) || !positions[0].PurchasePrice.Equal(eur(160)) {
		t.Errorf("remaining btc = %s @ %s, want 30 @ %s", positions[0].Quantity, positions[0].PurchasePrice, eur(160))
	}
	if positions[1].Asset != "eth" || !positions[1].Quantity.Equal(Q(5)) {
		t.Errorf("eth position = %s %s, want eth 5", positions[1].Asset, positions[1].Quantity)
	}
}

func TestLedgerOversellRejected(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(2), eur(100), eur(100)))

	_, err := l.Record(NewSell("btc", Q(3), eur(110)))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("overselling: error = %v, want a *ValidationError", err)
	}
	// The position is intact.
	if got := l.NetQuantity("btc"); !got.Equal(Q(2)) {
		t.Errorf("NetQuantity(btc) = %s, want 2", got)
	}
	if got := len(l.Movements()); got != 1 {
		t.Errorf("journal has %d movements, want 1", got)
	}
}

func TestLedgerSellKeepsCostBasis(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(100), eur(150), eur(150)))
	mustRecord(t, l, NewBuy("btc", Q(50), eur(160), eur(160)))
	mustRecord(t, l, NewSell("btc", Q(120), eur(170)))

	// Most recent first: the sell is the first journal entry.
	sell := l.Movements()[0]
	if sell.Type != Sell {
		t.Fatalf("journal head is %s, want sell", sell.Type)
	}
	// FIFO cost: 100@150 + 20@160 over 120 units.
	want := eur(100*150 + 20*160).Div(Q(120))
	if !sell.PurchasePrice.Equal(want) {
		t.Errorf("sell cost basis = %s, want %s", sell.PurchasePrice, want)
	}
}

func TestLedgerSetCurrentPrice(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(1), eur(100), eur(100)))
	mustRecord(t, l, NewBuy("btc", Q(2), eur(110), eur(110)))
	mustRecord(t, l, NewBuy("eth", Q(5), eur(20), eur(20)))

	if err := l.SetCurrentPrice("btc", eur(130)); err != nil {
		t.Fatalf("SetCurrentPrice failed: %v", err)
	}

	for _, p := range l.Positions() {
		switch p.Asset {
		case "btc":
			if !p.CurrentPrice.Equal(eur(130)) {
				t.Errorf("btc current price = %s, want %s", p.CurrentPrice, eur(130))
			}
		case "eth":
			if !p.CurrentPrice.Equal(eur(20)) {
				t.Errorf("eth current price = %s, want %s", p.CurrentPrice, eur(20))
			}
		}
	}

	if last, ok := l.LastPrice("btc"); !ok || !last.Equal(eur(130)) {
		t.Errorf("LastPrice(btc) = %s, %v, want %s, true", last, ok, eur(130))
	}

	if err := l.SetCurrentPrice("btc", eur(-1)); err == nil {
		t.Error("SetCurrentPrice(-1) succeeded, want a rejection")
	}
}

func TestLedgerBuyAdoptsLastPrice(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(1), eur(100), eur(100)))
	if err := l.SetCurrentPrice("btc", eur(125)); err != nil {
		t.Fatal(err)
	}

	// A buy entered without a current price adopts the last known one.
	mustRecord(t, l, NewBuy("btc", Q(1), eur(120), Money{}))
	if got := l.Positions()[0].CurrentPrice; !got.Equal(eur(125)) {
		t.Errorf("current price = %s, want %s", got, eur(125))
	}

	// But stays zero for an asset never priced.
	mustRecord(t, l, NewBuy("doge", Q(10), eur(1), Money{}))
	if got := l.Positions()[0].CurrentPrice; !got.IsZero() {
		t.Errorf("doge current price = %s, want zero", got)
	}
}

func TestLedgerAssets(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(1), eur(100), eur(100)))
	mustRecord(t, l, NewBuy("eth", Q(1), eur(20), eur(20)))
	mustRecord(t, l, NewBuy("btc", Q(1), eur(105), eur(105)))

	got := l.Assets()
	want := []string{"btc", "eth"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Assets() = %v, want %v", got, want)
	}
}

func TestLedgerMovementsOrder(t *testing.T) {
	l := NewLedger("EUR")
	mustRecord(t, l, NewBuy("btc", Q(1), eur(100), eur(100)))
	mustRecord(t, l, NewBuy("eth", Q(1), eur(20), eur(20)))
	mustRecord(t, l, Movement{Type: Sell, Asset: "btc", Quantity: Q(1), CurrentPrice: eur(110)})

	movements := l.Movements()
	if len(movements) != 3 {
		t.Fatalf("got %d movements, want 3", len(movements))
	}
	if movements[0].Type != Sell || movements[1].Asset != "eth" || movements[2].Asset != "btc" {
		t.Errorf("order = %s %s, %s %s, %s %s, want most recent first",
			movements[0].Type, movements[0].Asset,
			movements[1].Type, movements[1].Asset,
			movements[2].Type, movements[2].Asset)
	}
}
