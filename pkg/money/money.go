// Package money formats decimal amounts the way the register prints them:
// a currency prefix and exactly two decimal places, e.g. "RM 7.00".
package money

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/config"
)

// Format renders amount with the configured currency prefix and two-decimal
// fixed-point notation.
func Format(amount decimal.Decimal) string {
	return config.CurrencyPrefix() + " " + amount.StringFixed(2)
}
