// Package currency renders prices the way the storefront displays them:
// a rupee symbol followed by en-IN digit grouping (lakh/crore style),
// with no forced decimal places.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const Symbol = "₹"

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// Format returns the display string for a non-negative amount.
// Whole amounts carry no decimals (3500 -> "₹3,500"); fractional amounts
// keep their own precision (99.5 -> "₹99.5"). Grouping follows the en-IN
// pattern, so 125000 -> "₹1,25,000".
func Format(amount float64) string {
	return Symbol + enIN.Sprint(number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(9)))
}
