package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const maxQuoteSlugLen = 20

// quoteSlug reduces a job name to upper-case alphanumeric runs joined by "-".
// "Smith Kitchen #2" → "SMITH-KITCHEN-2"
func quoteSlug(jobName string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToUpper(jobName) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if len(slug) > maxQuoteSlugLen {
		slug = strings.TrimRight(slug[:maxQuoteSlugLen], "-")
	}
	if slug == "" {
		slug = "QUOTE"
	}
	return slug
}

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(slug string, date time.Time) string {
	return fmt.Sprintf("CRP-%s-%s", date.Format("20060102"), slug)
}

// QuoteNumber derives the reference printed on quote and agreement exports.
// Format: CRP-{yyyymmdd}-{job slug}
func QuoteNumber(jobName string, now time.Time) string {
	return formatQuoteNumber(quoteSlug(jobName), now)
}
