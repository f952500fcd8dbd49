package cartera

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a share or return expressed in percent (60.0 means 60%).
type Percent float64

// Share returns part/total as a Percent. A zero total yields 0 by
// convention, never a NaN.
func Share(part, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(part.Div(total).InexactFloat64() * 100)
}

func (p Percent) Equal(q Percent) bool {
	// compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
