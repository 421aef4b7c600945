package utils

import (
	"fmt"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatUSD renders an amount the way the storefront displays prices.
func FormatUSD(amount float64) string {
	return "$" + FormatMoney(amount)
}
