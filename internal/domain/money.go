package domain

import "github.com/shopspring/decimal"

// TopUpPence is the fixed amount added by a single add-money action (£10).
const TopUpPence int64 = 1000

// FormatGBP renders an amount in pounds with exactly two decimal places.
func FormatGBP(d decimal.Decimal) string {
	return "£" + d.StringFixed(2)
}

// PenceToPounds converts minor units to a major-unit amount.
func PenceToPounds(pence int64) decimal.Decimal {
	return decimal.New(pence, -2)
}
