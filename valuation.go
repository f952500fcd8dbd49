package cartera

import "time"

// AssetValue is the valuation of one asset position.
type AssetValue struct {
	Asset    string
	Quantity Quantity
	Invested Money
	Value    Money
	Gain     Money
	GainPct  Percent // gain relative to the invested amount
	Weight   Percent // share of the total current value
}

// Valuation is the full portfolio valuation at a point in time.
//
// It is a pure computation over a snapshot of the ledger: building one
// never mutates the ledger, and two valuations over the same records
// are identical.
type Valuation struct {
	Time     time.Time
	Currency string
	Invested Money
	Value    Money
	Gain     Money
	GainPct  Percent
	Assets   []AssetValue // order of first registration
}

// Valuation computes the current portfolio valuation.
//
// Invested sums quantity times purchase price over the open records,
// Value sums quantity times current price, Gain is their difference.
// Assets aggregates records per asset. All ratios are zero when their
// denominator is zero, an empty ledger values to all zeroes.
func (l *Ledger) Valuation() *Valuation {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := &Valuation{
		Time:     time.Now(),
		Currency: l.currency,
		Invested: M(0, l.currency),
		Value:    M(0, l.currency),
	}

	index := make(map[string]int)
	for _, r := range l.records {
		i, ok := index[r.Asset]
		if !ok {
			i = len(v.Assets)
			index[r.Asset] = i
			v.Assets = append(v.Assets, AssetValue{
				Asset:    r.Asset,
				Invested: M(0, l.currency),
				Value:    M(0, l.currency),
			})
		}
		a := &v.Assets[i]
		a.Quantity = a.Quantity.Add(r.Quantity)
		a.Invested = a.Invested.Add(r.Invested())
		a.Value = a.Value.Add(r.CurrentValue())
	}

	for i := range v.Assets {
		a := &v.Assets[i]
		a.Gain = a.Value.Sub(a.Invested)
		a.GainPct = Share(a.Gain.Amount(), a.Invested.Amount())
		v.Invested = v.Invested.Add(a.Invested)
		v.Value = v.Value.Add(a.Value)
	}
	v.Gain = v.Value.Sub(v.Invested)
	v.GainPct = Share(v.Gain.Amount(), v.Invested.Amount())
	for i := range v.Assets {
		a := &v.Assets[i]
		a.Weight = Share(a.Value.Amount(), v.Value.Amount())
	}
	return v
}
