package view

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ringgit = currency.MustParseISO("MYR")
	printer = message.NewPrinter(language.MustParse("en-MY"))
)

// Currency formats a whole-ringgit amount for display.
func Currency(amount int) string {
	return printer.Sprint(currency.Symbol(ringgit.Amount(float64(amount))))
}

// Price formats a feed price, which may carry cents.
func Price(amount float64) string {
	return printer.Sprint(currency.Symbol(ringgit.Amount(amount)))
}
