package handlers

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
	"cabinetrefacing/templates"
)

// codeFeedback turns a lookup result into the message under the code input
// and the matching toast. A blank code clears the slot and gets no feedback.
func codeFeedback(e *core.RequestEvent, label string, res services.CodeValidation) *templates.CodeFeedback {
	switch {
	case res.Code == "":
		SetToast(e, ToastInfo, label+" code removed")
		return nil
	case res.Valid:
		SetToast(e, ToastSuccess, label+" code "+res.Code+" applied")
		return &templates.CodeFeedback{Valid: true, Message: res.Description}
	}
	msg := "Invalid " + strings.ToLower(label) + " code"
	SetToast(e, ToastWarning, msg)
	return &templates.CodeFeedback{Message: msg}
}

// HandleDiscountApply looks up and applies the posted discount code. An
// unknown code is stored with a zero fraction.
func HandleDiscountApply(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		res := st.ApplyDiscountCode(e.Request.FormValue("code"))
		return renderWizard(e, st, wizardView{discountFeedback: codeFeedback(e, "Discount", res)})
	}
}

func HandleDiscountRemove(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		res := st.ApplyDiscountCode("")
		return renderWizard(e, st, wizardView{discountFeedback: codeFeedback(e, "Discount", res)})
	}
}

// HandleReferralApply is HandleDiscountApply for referral codes.
func HandleReferralApply(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		res := st.ApplyReferralCode(e.Request.FormValue("code"))
		return renderWizard(e, st, wizardView{referralFeedback: codeFeedback(e, "Referral", res)})
	}
}

func HandleReferralRemove(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		res := st.ApplyReferralCode("")
		return renderWizard(e, st, wizardView{referralFeedback: codeFeedback(e, "Referral", res)})
	}
}

func HandlePricingComplete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return completeStep(e, st, store.StepPricing, "")
	}
}
