package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the single currency the workspace renders.
const displayCurrency = money.USD

// FormatCurrency renders v in whole dollars, e.g. "$1,250,000".
func FormatCurrency(v float64) string {
	cur := money.GetCurrency(displayCurrency)
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// FormatPercent renders n with the given number of decimals, e.g. "10.5%".
func FormatPercent(n float64, decimals int) string {
	return decimal.NewFromFloat(n).StringFixed(int32(decimals)) + "%"
}

// FormatMultiple renders a purchase multiple, e.g. "4x" or "3.5x".
func FormatMultiple(m float64) string {
	return decimal.NewFromFloat(m).String() + "x"
}

// FormatDSCR renders a coverage ratio with two decimals.
func FormatDSCR(dscr float64) string {
	return decimal.NewFromFloat(dscr).StringFixed(2)
}
