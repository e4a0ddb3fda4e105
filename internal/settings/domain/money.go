package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupingPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display: symbol prefix, rounded to the
// nearest whole unit, thousands grouped with commas. 1234.56 in GBP becomes
// "£1,235".
func FormatAmount(c Currency, amount float64) string {
	return c.Symbol() + groupingPrinter.Sprintf("%d", int64(math.Round(amount)))
}
