package pricing

import "testing"

func TestVATRoundTrip(t *testing.T) {
	rate := DefaultConfig().VATRate

	for _, amount := range []float64{0, 0.01, 99.99, 550, 925.5, 12345.67} {
		inclusive := ToInclusive(amount, rate)
		nearlyEqual(t, "round trip", ToExclusive(inclusive, rate), amount)
	}
}

func TestToExclusive(t *testing.T) {
	nearlyEqual(t, "115 incl at 15%", ToExclusive(115, 0.15), 100)
}

func TestToInclusive(t *testing.T) {
	nearlyEqual(t, "100 excl at 15%", ToInclusive(100, 0.15), 115)
}
