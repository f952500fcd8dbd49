package cartera

import "testing"

func TestLotsFifoCostOfSelling(t *testing.T) {
	held := lots{
		{Quantity: Q(100), Price: eur(150)},
		{Quantity: Q(50), Price: eur(160)},
	}

	testCases := []struct {
		name string
		sell Quantity
		want Money
	}{
		{name: "within first lot", sell: Q(25), want: eur(25 * 150)},
		{name: "exactly first lot", sell: Q(100), want: eur(100 * 150)},
		{name: "spanning both lots", sell: Q(120), want: eur(100*150 + 20*160)},
		{name: "everything", sell: Q(150), want: eur(100*150 + 50*160)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := held.fifoCostOfSelling(tc.sell)
			if !got.Equal(tc.want) {
				t.Errorf("fifoCostOfSelling(%s) = %s, want %s", tc.sell, got, tc.want)
			}
		})
	}
}
