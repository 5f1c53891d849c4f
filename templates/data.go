// Package templates renders the wizard pages and step fragments.
package templates

import (
	"sort"

	"cabinetrefacing/services"
)

// StepNavItem is one entry of the step navigation.
type StepNavItem struct {
	Step      int
	Title     string
	Current   bool
	Completed bool
	Reachable bool
}

// StepNavData drives the progress bar and step navigation.
type StepNavData struct {
	Items          []StepNavItem
	CompletedCount int
	TotalSteps     int // excludes the terminal step
	Progress       float64
}

// SetupData backs the project setup step.
type SetupData struct {
	JobName string
	Error   string
}

// DoorStyleData backs the door style & finish step.
type DoorStyleData struct {
	Styles      []services.DoorStyle
	Finishes    []services.Finish
	DoorStyle   string
	Finish      string
	CanContinue bool
}

// WidthQty is a single quantity cell of a selection row.
type WidthQty struct {
	Width string
	Qty   int
}

// SelectionRow is one height row within a category.
type SelectionRow struct {
	Index      int
	Height     string
	Quantities []WidthQty
	Units      int
}

// CategoryView is one cabinet category section.
type CategoryView struct {
	Key      string
	Title    string
	Heights  []string
	Widths   []string
	Price    string
	UnitNoun string
	Rows     []SelectionRow
	Units    int
}

// CabinetsData backs the cabinet selection step.
type CabinetsData struct {
	Categories []CategoryView
	TotalUnits int
	Subtotal   string
}

// CodeFeedback is the result message shown under a code input.
type CodeFeedback struct {
	Valid   bool
	Message string
}

// PricingData backs the pricing & discounts step.
type PricingData struct {
	TotalUnits       int
	Subtotal         string
	DiscountCode     string
	DiscountLine     string // "-$25.00", empty when no discount applies
	DiscountPercent  string
	ReferralCode     string
	ReferralLine     string
	ReferralPercent  string
	TotalSavings     string
	HasSavings       bool
	GrandTotal       string
	DiscountFeedback *CodeFeedback
	ReferralFeedback *CodeFeedback
	SampleDiscounts  []services.PromoCode
	SampleReferrals  []services.PromoCode
}

// CustomerFieldView is one input on the customer step.
type CustomerFieldView struct {
	Name     string
	Label    string
	Value    string
	Error    string
	Required bool
}

// CustomerData backs the customer info step.
type CustomerData struct {
	Fields []CustomerFieldView
	States []string
}

// AgreementData backs the agreement & signatures step.
type AgreementData struct {
	JobName           string
	CustomerName      string
	DoorStyle         string
	Finish            string
	TotalUnits        int
	GrandTotal        string
	AmountInWords     string
	Terms             []string
	CustomerSignature string
	SalesRepSignature string
	SalesRepName      string
	Signed            bool
	Error             string
}

// CompleteData backs the final step.
type CompleteData struct {
	QuoteNumber  string
	JobName      string
	CustomerName string
	Email        string
	GrandTotal   string
	TotalUnits   int
}

// WizardData is everything the wizard layout needs for one render. Only the
// section matching Step is rendered.
type WizardData struct {
	Step      int
	StepTitle string
	JobName   string
	Nav       StepNavData

	Setup     SetupData
	DoorStyle DoorStyleData
	Cabinets  CabinetsData
	Pricing   PricingData
	Customer  CustomerData
	Agreement AgreementData
	Complete  CompleteData
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
