package services

import (
	"math"
	"testing"
)

func TestCalcSubtotal(t *testing.T) {
	tests := []struct {
		name   string
		counts map[CategoryKey]int
		expect float64
	}{
		{"empty", map[CategoryKey]int{}, 0},
		{"nil", nil, 0},
		{"one wall one drawer", map[CategoryKey]int{CategoryWallCabinets: 1, CategoryDrawers: 1}, 250},
		{
			"every category once",
			map[CategoryKey]int{
				CategoryWallCabinets:  1,
				CategoryTallCabinets:  1,
				CategoryBaseCabinets:  1,
				CategoryDrawers:       1,
				CategoryPlainPanels:   1,
				CategoryAppliedPanels: 1,
			},
			825,
		},
		{"multiple records", map[CategoryKey]int{CategoryBaseCabinets: 3, CategoryPlainPanels: 2}, 685},
		{"unknown key ignored", map[CategoryKey]int{"islands": 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSubtotal(tt.counts)
			if got != tt.expect {
				t.Errorf("CalcSubtotal(%v) = %v, want %v", tt.counts, got, tt.expect)
			}
		})
	}
}

func TestCalcGrandTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		discount float64
		referral float64
		expect   float64
	}{
		{"no discounts", 250, 0, 0, 250},
		{"discount only", 250, 0.10, 0, 225},
		{"discount and referral", 250, 0.10, 0.05, 212.50},
		{"full discount", 250, 0.60, 0.40, 0},
		{"combined over one floors at zero", 250, 0.80, 0.50, 0},
		{"zero subtotal", 0, 0.20, 0.08, 0},
		{"rounds to cents", 175, 0.12, 0.07, 141.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcGrandTotal(tt.subtotal, tt.discount, tt.referral)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("CalcGrandTotal(%v, %v, %v) = %v, want %v",
					tt.subtotal, tt.discount, tt.referral, got, tt.expect)
			}
			if got < 0 {
				t.Errorf("grand total must never be negative, got %v", got)
			}
		})
	}
}

func TestCalcBreakdown(t *testing.T) {
	b := CalcBreakdown(250, 0.10, 0.05)

	if !floatClose(b.DiscountAmount, 25) {
		t.Errorf("DiscountAmount = %v, want 25", b.DiscountAmount)
	}
	if !floatClose(b.ReferralAmount, 12.5) {
		t.Errorf("ReferralAmount = %v, want 12.5", b.ReferralAmount)
	}
	if !floatClose(b.TotalSavings, 37.5) {
		t.Errorf("TotalSavings = %v, want 37.5", b.TotalSavings)
	}
	if !floatClose(b.GrandTotal, 212.5) {
		t.Errorf("GrandTotal = %v, want 212.5", b.GrandTotal)
	}
	if !floatClose(b.DiscountPercent, 10) || !floatClose(b.ReferralPercent, 5) {
		t.Errorf("percents = %v/%v, want 10/5", b.DiscountPercent, b.ReferralPercent)
	}
	if !b.HasSavings() {
		t.Error("expected HasSavings() to be true")
	}
}

func TestCalcBreakdown_SavingsCappedAtSubtotal(t *testing.T) {
	b := CalcBreakdown(100, 0.9, 0.5)
	if !floatClose(b.TotalSavings, 100) {
		t.Errorf("TotalSavings = %v, want 100", b.TotalSavings)
	}
	if b.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0", b.GrandTotal)
	}
}

func TestCalcBreakdown_NoSavings(t *testing.T) {
	b := CalcBreakdown(480, 0, 0)
	if b.HasSavings() {
		t.Error("expected HasSavings() to be false")
	}
	if b.GrandTotal != 480 || b.TotalSavings != 0 {
		t.Errorf("got grand=%v savings=%v, want 480/0", b.GrandTotal, b.TotalSavings)
	}
}
