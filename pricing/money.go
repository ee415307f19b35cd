package pricing

import "math"

// TaxRate is the flat sales tax applied to every order subtotal
const TaxRate = 0.05

// Round2 rounds a monetary amount to cents. Applied at every boundary that
// persists or compares money so float noise never reaches a stored total.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
