package services

import "strings"

// CodeKind distinguishes discount codes from referral codes.
type CodeKind string

const (
	CodeKindDiscount CodeKind = "discount"
	CodeKindReferral CodeKind = "referral"
)

// PromoCode is one entry of the static code table.
type PromoCode struct {
	Code        string
	Kind        CodeKind
	Discount    float64 // fraction of the subtotal, 0-1
	Description string
}

// DiscountCodes and ReferralCodes are the only codes the wizard accepts. Both
// the validation feedback and the store's application of a code read from
// these tables.
var (
	DiscountCodes = []PromoCode{
		{Code: "SAVE10", Kind: CodeKindDiscount, Discount: 0.10, Description: "10% off your total order"},
		{Code: "WELCOME15", Kind: CodeKindDiscount, Discount: 0.15, Description: "15% off for new customers"},
		{Code: "SPRING2024", Kind: CodeKindDiscount, Discount: 0.20, Description: "20% spring special discount"},
		{Code: "LOYALTY", Kind: CodeKindDiscount, Discount: 0.12, Description: "12% loyalty member discount"},
	}
	ReferralCodes = []PromoCode{
		{Code: "REF2024", Kind: CodeKindReferral, Discount: 0.05, Description: "5% referral bonus"},
		{Code: "FRIEND", Kind: CodeKindReferral, Discount: 0.07, Description: "7% friend referral discount"},
		{Code: "FAMILY", Kind: CodeKindReferral, Discount: 0.08, Description: "8% family member discount"},
	}
)

// CodeValidation is the outcome of looking up a code. An unknown code is a
// normal result with Valid false and Discount 0.
type CodeValidation struct {
	Valid       bool
	Code        string // normalized input
	Discount    float64
	Description string
}

// NormalizeCode trims and upper-cases a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateDiscountCode looks up code (case-insensitive) in DiscountCodes.
func ValidateDiscountCode(code string) CodeValidation {
	return lookupCode(DiscountCodes, code)
}

// ValidateReferralCode looks up code (case-insensitive) in ReferralCodes.
func ValidateReferralCode(code string) CodeValidation {
	return lookupCode(ReferralCodes, code)
}

// CodeNames lists the codes of a table, for the sample codes panel.
func CodeNames(table []PromoCode) []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.Code
	}
	return names
}

func lookupCode(table []PromoCode, code string) CodeValidation {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return CodeValidation{}
	}
	for _, c := range table {
		if c.Code == normalized {
			return CodeValidation{
				Valid:       true,
				Code:        normalized,
				Discount:    c.Discount,
				Description: c.Description,
			}
		}
	}
	return CodeValidation{Code: normalized}
}
