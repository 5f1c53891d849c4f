package services

import "testing"

func TestNewQuoteLine(t *testing.T) {
	wall, _ := FindCategory(CategoryWallCabinets)

	line := NewQuoteLine(wall, 3, `19"-30"`, map[string]int{
		`Up to 14"`: 2,
		`15"-21"`:   0,
		`22"-27"`:   1,
		`bogus`:     9,
	})

	if line.Index != "3" {
		t.Errorf("Index = %q, want %q", line.Index, "3")
	}
	if line.Category != "Wall Cabinets" {
		t.Errorf("Category = %q", line.Category)
	}
	if line.Units != 3 {
		t.Errorf("Units = %d, want 3", line.Units)
	}
	want := `Up to 14" x 2, 22"-27" x 1`
	if line.Widths != want {
		t.Errorf("Widths = %q, want %q", line.Widths, want)
	}
	if line.LinePrice != 150 {
		t.Errorf("LinePrice = %v, want 150", line.LinePrice)
	}
}

func TestNewQuoteLine_AllZero(t *testing.T) {
	drawers, _ := FindCategory(CategoryDrawers)
	line := NewQuoteLine(drawers, 1, `6"`, drawers.ZeroQuantities())

	if line.Units != 0 {
		t.Errorf("Units = %d, want 0", line.Units)
	}
	if line.Widths != "none" {
		t.Errorf("Widths = %q, want %q", line.Widths, "none")
	}
	if line.LinePrice != 100 {
		t.Errorf("an all-zero selection is still priced, got %v", line.LinePrice)
	}
}

func TestQuoteExportData_Title(t *testing.T) {
	if got := (QuoteExportData{JobName: "Doe Kitchen"}).Title(); got != "Doe Kitchen" {
		t.Errorf("Title() = %q", got)
	}
	if got := (QuoteExportData{JobName: "  "}).Title(); got != "Cabinet Refacing Quote" {
		t.Errorf("Title() = %q", got)
	}
}

func TestJoinNonEmpty(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		sep   string
		want  string
	}{
		{"all non-empty", []string{"a", "b", "c"}, " | ", "a | b | c"},
		{"some empty", []string{"a", "", "c"}, " | ", "a | c"},
		{"all empty", []string{"", "", ""}, " | ", ""},
		{"single", []string{"a"}, " | ", "a"},
		{"nil", nil, " | ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinNonEmpty(tt.parts, tt.sep)
			if got != tt.want {
				t.Errorf("joinNonEmpty(%v, %q) = %q, want %q", tt.parts, tt.sep, got, tt.want)
			}
		})
	}
}

func TestFmtField(t *testing.T) {
	tests := []struct {
		name  string
		label string
		value string
		want  string
	}{
		{"non-empty value", "Phone", "555-123-4567", "Phone: 555-123-4567"},
		{"empty value", "Phone", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmtField(tt.label, tt.value)
			if got != tt.want {
				t.Errorf("fmtField(%q, %q) = %q, want %q", tt.label, tt.value, got, tt.want)
			}
		})
	}
}

// sampleQuote is shared by the PDF and Excel export tests.
func sampleQuote() QuoteExportData {
	wall, _ := FindCategory(CategoryWallCabinets)
	drawers, _ := FindCategory(CategoryDrawers)
	return QuoteExportData{
		QuoteNumber:     "CRP-20260307-DOE-KITCHEN",
		JobName:         "Doe Kitchen",
		CreatedDate:     "07 Mar 2026",
		DoorStyle:       "Shaker",
		Finish:          "Classic White",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-123-4567",
		CustomerAddress: "1 Main St\nSpringfield, IL 62701",
		Lines: []QuoteLine{
			NewQuoteLine(wall, 1, `19"-30"`, map[string]int{`Up to 14"`: 2}),
			NewQuoteLine(drawers, 2, `6"`, map[string]int{`28"-36"`: 4}),
		},
		TotalUnits:        6,
		Pricing:           CalcBreakdown(250, 0.10, 0.05),
		DiscountCode:      "SAVE10",
		ReferralCode:      "REF2024",
		AmountInWords:     AmountToWords(212.50),
		CustomerSignature: "Jane Doe",
		SalesRepSignature: "Sam Rep",
		SalesRepName:      "Sam Rep",
		AgreementSigned:   true,
	}
}
