package utils

import (
	"github.com/shopspring/decimal"
)

// FormatPrice formats a price as "$29.99", or "Free" when it is zero.
func FormatPrice(price decimal.Decimal) string {
	if price.IsZero() {
		return "Free"
	}
	if price.IsNegative() {
		return "-$" + price.Neg().StringFixed(2)
	}
	return "$" + price.StringFixed(2)
}

// FormatAmount always formats with the currency sign, "$0.00" included.
// Used for totals where "Free" would read oddly.
func FormatAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
