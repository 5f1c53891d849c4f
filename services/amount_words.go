package services

import (
	"fmt"
	"math"
	"strings"
)

// AmountToWords converts a dollar amount to the wording used on the signed
// agreement, with cents written as a fraction.
// Example: 212.50 → "Two Hundred Twelve Dollars and 50/100"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	totalCents := int64(math.Round(amount * 100))
	dollars := totalCents / 100
	cents := totalCents % 100

	words := "Zero"
	if dollars > 0 {
		words = convertToWords(dollars)
	}

	unit := "Dollars"
	if dollars == 1 {
		unit = "Dollar"
	}
	return fmt.Sprintf("%s %s and %02d/100", words, unit, cents)
}

// convertToWords spells out n using short-scale groups of three digits.
func convertToWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	scales := []struct {
		value int64
		name  string
	}{
		{1_000_000_000, "Billion"},
		{1_000_000, "Million"},
		{1_000, "Thousand"},
	}
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, convertUnder1000(n/s.value)+" "+s.name)
			n %= s.value
		}
	}

	if n > 0 {
		parts = append(parts, convertUnder1000(n))
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, convertUnder100(n))
	}
	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += "-" + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
