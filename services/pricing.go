// Package services provides catalog tables and pricing calculation functions
// for cabinet refacing quotes.
package services

import "math"

// CalcSubtotal prices a project from the number of selection records in each
// category. Each record is charged the category's flat base price once,
// regardless of the per-width quantities it carries. Unknown keys are ignored.
func CalcSubtotal(recordCounts map[CategoryKey]int) float64 {
	var subtotal float64
	for _, c := range CabinetCategories {
		subtotal += float64(recordCounts[c.Key]) * c.BasePrice
	}
	return subtotal
}

// CalcGrandTotal applies the discount and referral fractions to the subtotal.
// The result is rounded to cents and never negative.
func CalcGrandTotal(subtotal, discount, referral float64) float64 {
	total := subtotal * (1 - discount - referral)
	if total <= 0 {
		return 0
	}
	return roundCents(total)
}

// PricingBreakdown holds the lines shown in the pricing summary and exports.
type PricingBreakdown struct {
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	ReferralPercent float64
	ReferralAmount  float64
	TotalSavings    float64
	GrandTotal      float64
}

// CalcBreakdown computes the individual savings lines for a subtotal. Total
// savings is the difference to the grand total, so it never exceeds the
// subtotal even when the combined fractions do.
func CalcBreakdown(subtotal, discount, referral float64) PricingBreakdown {
	grand := CalcGrandTotal(subtotal, discount, referral)
	return PricingBreakdown{
		Subtotal:        subtotal,
		DiscountPercent: discount * 100,
		DiscountAmount:  roundCents(subtotal * discount),
		ReferralPercent: referral * 100,
		ReferralAmount:  roundCents(subtotal * referral),
		TotalSavings:    roundCents(subtotal - grand),
		GrandTotal:      grand,
	}
}

// HasSavings reports whether any discount or referral applies.
func (b PricingBreakdown) HasSavings() bool {
	return b.DiscountPercent > 0 || b.ReferralPercent > 0
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
