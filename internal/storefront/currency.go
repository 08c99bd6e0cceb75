package storefront

import "strconv"

// Currency is a display currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyEGP Currency = "EGP"
)

// Demo conversion rate from the base (USD) price to Egyptian pounds
const egpRate = 50

// FormatPrice renders a base price as a display string in the target
// currency. Non-EGP currencies display the base amount with a dollar
// sign, matching the storefront's demo behavior.
func FormatPrice(amount float64, currency Currency) string {
	if currency == CurrencyEGP {
		return formatAmount(amount*egpRate) + " EGP"
	}
	return "$" + formatAmount(amount)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
