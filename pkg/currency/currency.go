package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way Indonesian users write it, for
// example "Rp 1.500.000".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-Rp %d", -amount)
	}
	return printer.Sprintf("Rp %d", amount)
}

// FormatNumber groups digits with dots and no currency sign.
func FormatNumber(amount int64) string {
	return printer.Sprintf("%d", amount)
}
