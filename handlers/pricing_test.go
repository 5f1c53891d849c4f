package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"cabinetrefacing/store"
	"cabinetrefacing/testhelpers"
)

func TestHandleDiscountApply(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantToast    string
		wantCode     string
		wantGrand    float64
		wantFeedback string
	}{
		{"valid", "SAVE10", ToastSuccess, "SAVE10", 225, "feedback valid"},
		{"case insensitive", " welcome15 ", ToastSuccess, "WELCOME15", 212.5, "feedback valid"},
		{"unknown", "BOGUS", ToastWarning, "BOGUS", 250, "feedback invalid"},
		{"referral code in discount slot", "REF2024", ToastWarning, "REF2024", 250, "feedback invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testhelpers.NewPricedStore(t)
			rec := serve(t, HandleDiscountApply(s), htmxRequest(http.MethodPost, "/pricing/discount", url.Values{"code": {tt.code}}, nil))

			testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), tt.wantToast)
			snap := s.Snapshot()
			if snap.DiscountCode != tt.wantCode {
				t.Errorf("code = %q, want %q", snap.DiscountCode, tt.wantCode)
			}
			if snap.GrandTotal != tt.wantGrand {
				t.Errorf("grand total = %v, want %v", snap.GrandTotal, tt.wantGrand)
			}
			doc := testhelpers.ParseHTML(t, rec.Body.Bytes())
			if cls, _ := doc.Find("form[data-code=discount] .feedback").Attr("class"); cls != tt.wantFeedback {
				t.Errorf("feedback class = %q, want %q", cls, tt.wantFeedback)
			}
		})
	}
}

func TestPricing_DiscountAndReferral(t *testing.T) {
	s := testhelpers.NewPricedStore(t)

	serve(t, HandleDiscountApply(s), htmxRequest(http.MethodPost, "/pricing/discount", url.Values{"code": {"SAVE10"}}, nil))
	rec := serve(t, HandleReferralApply(s), htmxRequest(http.MethodPost, "/pricing/referral", url.Values{"code": {"REF2024"}}, nil))

	if got := s.Snapshot().GrandTotal; got != 212.5 {
		t.Errorf("grand total = %v, want 212.5", got)
	}

	doc := testhelpers.ParseHTML(t, rec.Body.Bytes())
	tests := []struct {
		row  string
		want string
	}{
		{"tr.subtotal td", "$250.00"},
		{"tr.discount td", "-$25.00"},
		{"tr.referral td", "-$12.50"},
		{"tr.savings td", "$37.50"},
		{"tr.grand-total td", "$212.50"},
		{"tr.referral th", "Referral REF2024 (5%)"},
	}
	for _, tt := range tests {
		if got := doc.Find(tt.row).Text(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestPricing_RemoveCodesRestoresTotal(t *testing.T) {
	s := testhelpers.NewPricedStore(t)
	serve(t, HandleDiscountApply(s), htmxRequest(http.MethodPost, "/pricing/discount", url.Values{"code": {"SPRING2024"}}, nil))
	serve(t, HandleReferralApply(s), htmxRequest(http.MethodPost, "/pricing/referral", url.Values{"code": {"FAMILY"}}, nil))

	rec := serve(t, HandleDiscountRemove(s), htmxRequest(http.MethodDelete, "/pricing/discount", nil, nil))
	testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), ToastInfo)
	serve(t, HandleReferralRemove(s), htmxRequest(http.MethodDelete, "/pricing/referral", nil, nil))

	snap := s.Snapshot()
	if snap.DiscountCode != "" || snap.ReferralCode != "" {
		t.Errorf("codes = %q/%q, want cleared", snap.DiscountCode, snap.ReferralCode)
	}
	if snap.DiscountAmount != 0 || snap.ReferralDiscount != 0 {
		t.Errorf("fractions = %v/%v", snap.DiscountAmount, snap.ReferralDiscount)
	}
	if snap.GrandTotal != 250 {
		t.Errorf("grand total = %v, want 250", snap.GrandTotal)
	}

	doc := testhelpers.ParseHTML(t, rec.Body.Bytes())
	if doc.Find("tr.discount").Length() != 0 {
		t.Error("discount line should be gone")
	}
}

func TestHandlePricingComplete(t *testing.T) {
	s := testhelpers.NewPricedStore(t)
	serve(t, HandlePricingComplete(s), htmxRequest(http.MethodPost, "/pricing/complete", nil, nil))

	snap := s.Snapshot()
	if snap.CurrentStep != store.StepCustomerInfo || !snap.CompletedSteps.Has(store.StepPricing) {
		t.Errorf("step = %d, completed = %v", snap.CurrentStep, snap.CompletedSteps.Sorted())
	}
}
