package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultReportCurrency is used when no report currency is configured.
const DefaultReportCurrency = "INR"

// FormatAmount renders amount with the grapheme, grouping and fraction of an ISO
// currency code, e.g. 1300000 INR -> "₹1,300,000.00". Unknown codes fall back to
// DefaultReportCurrency.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		cur = money.GetCurrency(DefaultReportCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
