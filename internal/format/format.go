// Package format renders listing values for people: prices, areas and
// truncated text.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Number formats n with thousands separators, e.g. 1,200.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Price formats a whole-dollar amount, e.g. $450,000.
func Price(dollars int64) string {
	if dollars < 0 {
		return "-$" + Number(-dollars)
	}
	return "$" + Number(dollars)
}

// Sqft formats a floor area, e.g. 1,200 sqft.
func Sqft(n int64) string {
	return Number(n) + " sqft"
}

// Truncate shortens a string to maxLen runes, adding "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
