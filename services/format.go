package services

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatUSD formats an amount as US dollars with thousands separators and
// exactly 2 decimal places (e.g., $12,345.60).
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	result := "$" + humanize.FormatFloat("#,###.##", roundCents(amount))
	if negative && amount >= 0.005 {
		result = "-" + result
	}
	return result
}

// FormatPercent formats a fraction (0.15) as a whole percentage ("15%").
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(fraction*100))
}

// formatQty renders a unit count for tables and exports.
func formatQty(qty int) string {
	return humanize.Comma(int64(qty))
}
