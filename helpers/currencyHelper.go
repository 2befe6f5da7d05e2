package helpers

import (
	"os"

	"github.com/shopspring/decimal"
)

const defaultCurrencyPrefix = "S/ "

// FormatAmount renders a monetary value with exactly two decimals and the
// configured currency prefix, e.g. "S/ 35.00".
func FormatAmount(amount decimal.Decimal) string {
	prefix := os.Getenv("CURRENCY_PREFIX")
	if prefix == "" {
		prefix = defaultCurrencyPrefix
	}
	return prefix + amount.StringFixed(2)
}
