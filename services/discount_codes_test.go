package services

import "testing"

func TestValidateDiscountCode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantCode  string
		wantFrac  float64
	}{
		{"exact", "SAVE10", true, "SAVE10", 0.10},
		{"lowercase", "save10", true, "SAVE10", 0.10},
		{"padded", "  welcome15 ", true, "WELCOME15", 0.15},
		{"spring", "Spring2024", true, "SPRING2024", 0.20},
		{"loyalty", "LOYALTY", true, "LOYALTY", 0.12},
		{"referral code is not a discount", "REF2024", false, "REF2024", 0},
		{"unknown", "BOGUS", false, "BOGUS", 0},
		{"empty", "", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDiscountCode(tt.input)
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if !floatClose(got.Discount, tt.wantFrac) {
				t.Errorf("Discount = %v, want %v", got.Discount, tt.wantFrac)
			}
			if tt.wantValid && got.Description == "" {
				t.Error("expected a description for a valid code")
			}
		})
	}
}

func TestValidateReferralCode(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantFrac  float64
	}{
		{"REF2024", true, 0.05},
		{"friend", true, 0.07},
		{"Family", true, 0.08},
		{"SAVE10", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		got := ValidateReferralCode(tt.input)
		if got.Valid != tt.wantValid || !floatClose(got.Discount, tt.wantFrac) {
			t.Errorf("ValidateReferralCode(%q) = %+v, want valid=%v discount=%v",
				tt.input, got, tt.wantValid, tt.wantFrac)
		}
	}
}

func TestCodeTables_NoOverlap(t *testing.T) {
	seen := make(map[string]CodeKind)
	for _, table := range [][]PromoCode{DiscountCodes, ReferralCodes} {
		for _, c := range table {
			if NormalizeCode(c.Code) != c.Code {
				t.Errorf("code %q is not stored in normalized form", c.Code)
			}
			if c.Discount <= 0 || c.Discount >= 1 {
				t.Errorf("code %q has out-of-range discount %v", c.Code, c.Discount)
			}
			if kind, dup := seen[c.Code]; dup {
				t.Errorf("code %q appears in both %s and %s tables", c.Code, kind, c.Kind)
			}
			seen[c.Code] = c.Kind
		}
	}
}

func TestCodeNames(t *testing.T) {
	got := CodeNames(ReferralCodes)
	want := []string{"REF2024", "FRIEND", "FAMILY"}
	if len(got) != len(want) {
		t.Fatalf("CodeNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CodeNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
