package pricing

// ToExclusive converts a VAT-inclusive amount to the stored tax-exclusive
// value. The division is exact; rounding happens only at render time.
func ToExclusive(amount, rate float64) float64 {
	return amount / (1 + rate)
}

// ToInclusive converts a stored tax-exclusive amount for VAT-inclusive
// display.
func ToInclusive(amount, rate float64) float64 {
	return amount * (1 + rate)
}
