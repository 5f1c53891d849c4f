package services

import (
	"fmt"
	"strings"
)

// QuoteLine represents a single cabinet selection row in the quote exports.
type QuoteLine struct {
	Index     string // "1", "2" etc, numbered across categories
	Category  string
	Height    string
	Widths    string // non-zero width quantities, e.g. `Up to 14" x 2, 15"-21" x 1`
	Units     int
	LinePrice float64 // the category base price; each selection is priced once
}

// QuoteExportData holds all data needed for the quote and agreement exports.
type QuoteExportData struct {
	QuoteNumber string
	JobName     string
	CreatedDate string
	DoorStyle   string
	Finish      string

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string // multi-line

	Lines        []QuoteLine
	TotalUnits   int
	Pricing      PricingBreakdown
	DiscountCode string
	ReferralCode string

	AmountInWords     string
	CustomerSignature string
	SalesRepSignature string
	SalesRepName      string
	AgreementSigned   bool
}

// Title returns the document title, falling back to a generic one when the
// job has no name yet.
func (d QuoteExportData) Title() string {
	if strings.TrimSpace(d.JobName) == "" {
		return "Cabinet Refacing Quote"
	}
	return d.JobName
}

// NewQuoteLine builds an export row for one selection of category c.
func NewQuoteLine(c CabinetCategory, index int, height string, quantities map[string]int) QuoteLine {
	var parts []string
	units := 0
	for _, w := range c.Widths {
		n := quantities[w]
		if n <= 0 {
			continue
		}
		units += n
		parts = append(parts, fmt.Sprintf("%s x %s", w, formatQty(n)))
	}

	widths := strings.Join(parts, ", ")
	if widths == "" {
		widths = "none"
	}

	return QuoteLine{
		Index:     fmt.Sprintf("%d", index),
		Category:  c.Title,
		Height:    height,
		Widths:    widths,
		Units:     units,
		LinePrice: c.BasePrice,
	}
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// fmtField returns "Label: value", or "" when value is empty.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}
