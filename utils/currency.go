package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as whole dollars with thousands separators,
// e.g. 110000 -> "$110,000". Halves round to even.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%d", int64(math.RoundToEven(amount)))
}
