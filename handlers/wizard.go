package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
	"cabinetrefacing/templates"
)

// wizardView carries request-scoped feedback that is shown once and never
// stored: validation errors, code lookups and unsaved form input.
type wizardView struct {
	setupError       string
	discountFeedback *templates.CodeFeedback
	referralFeedback *templates.CodeFeedback
	customerErrors   map[string]string
	agreementError   string
}

// HandleWizard renders the full wizard page at the current step.
func HandleWizard(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildWizardData(st.Snapshot(), wizardView{}, time.Now())
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.WizardPage(data).Render(e.Request.Context(), e.Response)
	}
}

// renderWizard answers a wizard mutation. HTMX requests get the refreshed
// #wizard fragment; plain form posts are redirected back to the page.
func renderWizard(e *core.RequestEvent, st *store.Store, view wizardView) error {
	if !IsHTMX(e.Request) {
		return e.Redirect(http.StatusFound, "/")
	}
	data := buildWizardData(st.Snapshot(), view, time.Now())
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.WizardContent(data).Render(e.Request.Context(), e.Response)
}

func buildWizardData(state store.ProjectState, view wizardView, now time.Time) templates.WizardData {
	bd := state.Breakdown()
	data := templates.WizardData{
		Step:      int(state.CurrentStep),
		StepTitle: state.CurrentStep.Title(),
		JobName:   state.JobName,
		Nav:       BuildStepNav(state),
	}

	switch state.CurrentStep {
	case store.StepProjectSetup:
		data.Setup = templates.SetupData{JobName: state.JobName, Error: view.setupError}

	case store.StepDoorStyle:
		data.DoorStyle = templates.DoorStyleData{
			Styles:      services.DoorStyleOptions,
			Finishes:    services.FinishOptions,
			DoorStyle:   state.DoorStyle,
			Finish:      state.Finish,
			CanContinue: store.CanComplete(state, store.StepDoorStyle),
		}

	case store.StepCabinetSelection:
		data.Cabinets = buildCabinetsData(state, bd)

	case store.StepPricing:
		data.Pricing = buildPricingData(state, bd, view)

	case store.StepCustomerInfo:
		data.Customer = buildCustomerData(state.Customer, view.customerErrors)

	case store.StepAgreement:
		data.Agreement = templates.AgreementData{
			JobName:           state.JobName,
			CustomerName:      state.Customer.FullName(),
			DoorStyle:         services.DoorStyleName(state.DoorStyle),
			Finish:            services.FinishName(state.Finish),
			TotalUnits:        state.TotalUnits(),
			GrandTotal:        services.FormatUSD(bd.GrandTotal),
			AmountInWords:     services.AmountToWords(bd.GrandTotal),
			Terms:             services.AgreementTerms,
			CustomerSignature: state.CustomerSignature,
			SalesRepSignature: state.SalesRepSignature,
			SalesRepName:      state.SalesRepName,
			Signed:            state.AgreementSigned,
			Error:             view.agreementError,
		}

	case store.StepComplete:
		data.Complete = templates.CompleteData{
			QuoteNumber:  services.QuoteNumber(state.JobName, now),
			JobName:      state.JobName,
			CustomerName: state.Customer.FullName(),
			Email:        state.Customer.Email,
			GrandTotal:   services.FormatUSD(bd.GrandTotal),
			TotalUnits:   state.TotalUnits(),
		}
	}
	return data
}

func buildCabinetsData(state store.ProjectState, bd services.PricingBreakdown) templates.CabinetsData {
	data := templates.CabinetsData{
		TotalUnits: state.TotalUnits(),
		Subtotal:   services.FormatUSD(bd.Subtotal),
	}
	for _, c := range services.CabinetCategories {
		selections := state.Selections(c.Key)
		view := templates.CategoryView{
			Key:      string(c.Key),
			Title:    c.Title,
			Heights:  c.Heights,
			Widths:   c.Widths,
			Price:    services.FormatUSD(c.BasePrice),
			UnitNoun: c.UnitNoun,
			Units:    store.CountUnits(selections),
		}
		for i, sel := range selections {
			row := templates.SelectionRow{Index: i, Height: sel.Height, Units: sel.Units()}
			for _, w := range c.Widths {
				row.Quantities = append(row.Quantities, templates.WidthQty{Width: w, Qty: sel.WidthQuantities[w]})
			}
			view.Rows = append(view.Rows, row)
		}
		data.Categories = append(data.Categories, view)
	}
	return data
}

func buildPricingData(state store.ProjectState, bd services.PricingBreakdown, view wizardView) templates.PricingData {
	data := templates.PricingData{
		TotalUnits:       state.TotalUnits(),
		Subtotal:         services.FormatUSD(bd.Subtotal),
		DiscountCode:     state.DiscountCode,
		ReferralCode:     state.ReferralCode,
		TotalSavings:     services.FormatUSD(bd.TotalSavings),
		HasSavings:       bd.HasSavings(),
		GrandTotal:       services.FormatUSD(bd.GrandTotal),
		DiscountFeedback: view.discountFeedback,
		ReferralFeedback: view.referralFeedback,
		SampleDiscounts:  services.DiscountCodes,
		SampleReferrals:  services.ReferralCodes,
	}
	if state.DiscountAmount > 0 {
		data.DiscountLine = services.FormatUSD(-bd.DiscountAmount)
		data.DiscountPercent = services.FormatPercent(state.DiscountAmount)
	}
	if state.ReferralDiscount > 0 {
		data.ReferralLine = services.FormatUSD(-bd.ReferralAmount)
		data.ReferralPercent = services.FormatPercent(state.ReferralDiscount)
	}
	return data
}

// buildCustomerData shows the stored customer values with any validation
// errors from the last submit.
func buildCustomerData(c store.CustomerInfo, errs map[string]string) templates.CustomerData {
	values := c.Fields()
	data := templates.CustomerData{States: services.USStateCodes}
	for _, f := range services.CustomerFields {
		data.Fields = append(data.Fields, templates.CustomerFieldView{
			Name:     f.Name,
			Label:    f.Label,
			Value:    values[f.Name],
			Error:    errs[f.Name],
			Required: f.Required,
		})
	}
	return data
}
