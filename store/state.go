// Package store holds the wizard's project state and the mutators that keep
// its pricing fields consistent.
package store

import (
	"cabinetrefacing/services"
)

// CabinetSelection is one height row of a category with a quantity per width.
type CabinetSelection struct {
	Height          string         `json:"height"`
	WidthQuantities map[string]int `json:"widthQuantities"`
}

// Units sums the width quantities.
func (s CabinetSelection) Units() int {
	total := 0
	for _, n := range s.WidthQuantities {
		total += n
	}
	return total
}

func (s CabinetSelection) clone() CabinetSelection {
	q := make(map[string]int, len(s.WidthQuantities))
	for w, n := range s.WidthQuantities {
		q[w] = n
	}
	return CabinetSelection{Height: s.Height, WidthQuantities: q}
}

// CountUnits sums the units of every selection in the list.
func CountUnits(selections []CabinetSelection) int {
	total := 0
	for _, s := range selections {
		total += s.Units()
	}
	return total
}

// CustomerInfo is the contact block collected on the customer step.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// FullName joins first and last name.
func (c CustomerInfo) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Fields returns the customer as a form field map keyed by JSON name.
func (c CustomerInfo) Fields() map[string]string {
	return map[string]string{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
		"address":   c.Address,
		"city":      c.City,
		"state":     c.State,
		"zipCode":   c.ZipCode,
	}
}

// CustomerPatch is a partial update for CustomerInfo. Nil fields are left
// unchanged.
type CustomerPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
}

func (p CustomerPatch) Apply(c *CustomerInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.FirstName, p.FirstName)
	set(&c.LastName, p.LastName)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Address, p.Address)
	set(&c.City, p.City)
	set(&c.State, p.State)
	set(&c.ZipCode, p.ZipCode)
}

// ProjectState is everything the wizard collects. JSON names match the
// persisted record layout.
type ProjectState struct {
	JobName   string `json:"jobName"`
	DoorStyle string `json:"doorStyle"`
	Finish    string `json:"finish"`

	WallCabinets  []CabinetSelection `json:"wallCabinets"`
	TallCabinets  []CabinetSelection `json:"tallCabinets"`
	BaseCabinets  []CabinetSelection `json:"baseCabinets"`
	Drawers       []CabinetSelection `json:"drawers"`
	PlainPanels   []CabinetSelection `json:"plainPanels"`
	AppliedPanels []CabinetSelection `json:"appliedPanels"`

	Subtotal         float64 `json:"subtotal"`
	DiscountCode     string  `json:"discountCode"`
	DiscountAmount   float64 `json:"discountAmount"` // fraction, not currency
	ReferralCode     string  `json:"referralCode"`
	ReferralDiscount float64 `json:"referralDiscount"` // fraction
	GrandTotal       float64 `json:"grandTotal"`

	Customer CustomerInfo `json:"customer"`

	CustomerSignature string `json:"customerSignature"`
	SalesRepSignature string `json:"salesRepSignature"`
	SalesRepName      string `json:"salesRepName"`
	AgreementSigned   bool   `json:"agreementSigned"`

	CurrentStep    Step    `json:"currentStep"`
	CompletedSteps StepSet `json:"completedSteps"`
}

// InitialState returns an empty project at the first step.
func InitialState() ProjectState {
	return ProjectState{
		WallCabinets:   []CabinetSelection{},
		TallCabinets:   []CabinetSelection{},
		BaseCabinets:   []CabinetSelection{},
		Drawers:        []CabinetSelection{},
		PlainPanels:    []CabinetSelection{},
		AppliedPanels:  []CabinetSelection{},
		CurrentStep:    StepProjectSetup,
		CompletedSteps: StepSet{},
	}
}

// Selections returns the selection list for a category, or nil for an
// unknown key.
func (s *ProjectState) Selections(key services.CategoryKey) []CabinetSelection {
	if p := s.selectionsPtr(key); p != nil {
		return *p
	}
	return nil
}

func (s *ProjectState) selectionsPtr(key services.CategoryKey) *[]CabinetSelection {
	switch key {
	case services.CategoryWallCabinets:
		return &s.WallCabinets
	case services.CategoryTallCabinets:
		return &s.TallCabinets
	case services.CategoryBaseCabinets:
		return &s.BaseCabinets
	case services.CategoryDrawers:
		return &s.Drawers
	case services.CategoryPlainPanels:
		return &s.PlainPanels
	case services.CategoryAppliedPanels:
		return &s.AppliedPanels
	}
	return nil
}

// RecordCounts returns the number of selections per category, the input to
// services.CalcSubtotal.
func (s *ProjectState) RecordCounts() map[services.CategoryKey]int {
	counts := make(map[services.CategoryKey]int, len(services.CabinetCategories))
	for _, c := range services.CabinetCategories {
		counts[c.Key] = len(s.Selections(c.Key))
	}
	return counts
}

// TotalUnits sums the units across all categories.
func (s *ProjectState) TotalUnits() int {
	total := 0
	for _, c := range services.CabinetCategories {
		total += CountUnits(s.Selections(c.Key))
	}
	return total
}

// Breakdown returns the pricing summary lines for the current state.
func (s *ProjectState) Breakdown() services.PricingBreakdown {
	return services.CalcBreakdown(s.Subtotal, s.DiscountAmount, s.ReferralDiscount)
}

// recalculate derives subtotal and grand total from selections and fractions.
func (s *ProjectState) recalculate() {
	s.Subtotal = services.CalcSubtotal(s.RecordCounts())
	s.GrandTotal = services.CalcGrandTotal(s.Subtotal, s.DiscountAmount, s.ReferralDiscount)
}

// Clone returns a deep copy.
func (s ProjectState) Clone() ProjectState {
	out := s
	for _, c := range services.CabinetCategories {
		src := s.Selections(c.Key)
		dst := make([]CabinetSelection, len(src))
		for i, sel := range src {
			dst[i] = sel.clone()
		}
		*out.selectionsPtr(c.Key) = dst
	}
	out.CompletedSteps = s.CompletedSteps.Clone()
	return out
}

// sanitizeSelections copies list with every quantity clamped to >= 0.
func sanitizeSelections(list []CabinetSelection) []CabinetSelection {
	out := make([]CabinetSelection, len(list))
	for i, sel := range list {
		c := sel.clone()
		for w, n := range c.WidthQuantities {
			if n < 0 {
				c.WidthQuantities[w] = 0
			}
		}
		out[i] = c
	}
	return out
}
