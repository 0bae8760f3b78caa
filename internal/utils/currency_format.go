package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as US dollars with grouping and two decimals.
// Example: 1234.5 returns "$1,234.50"; -75 returns "-$75.00".
// The digits come from the decimal itself, so large amounts print exactly.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := FormatWithPrecision(amount.Abs(), 2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if fixed != "0.00" && amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(intPart) + "." + frac
}

// FormatWithPrecision formats an amount with the given precision, padding
// with zeros: 12.3 at precision 2 is "12.30".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// groupThousands inserts US digit grouping into a string of digits.
func groupThousands(digits string) string {
	n, err := decimal.NewFromString(digits)
	if err == nil && n.BigInt().IsInt64() {
		return usPrinter.Sprintf("%d", n.IntPart())
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
