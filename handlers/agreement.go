package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/store"
)

// HandleAgreement records both signatures and the sales rep name, then
// completes the agreement step once the agreement is signed.
func HandleAgreement(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerSig := strings.TrimSpace(e.Request.FormValue("customerSignature"))
		repSig := strings.TrimSpace(e.Request.FormValue("salesRepSignature"))
		repName := strings.TrimSpace(e.Request.FormValue("salesRepName"))

		err := st.AdvanceFrom(store.StepAgreement, func(ps *store.ProjectState) error {
			ps.CustomerSignature = customerSig
			ps.SalesRepSignature = repSig
			ps.SalesRepName = repName
			return nil
		})
		switch {
		case errors.Is(err, store.ErrNotCurrentStep):
			return ErrorToast(e, http.StatusConflict, notCurrentStep)
		case err != nil:
			SetToast(e, ToastWarning, "Both signatures and the sales rep name are required")
			return renderWizard(e, st, wizardView{agreementError: "Both signatures and the sales rep name are required"})
		}

		SetToast(e, ToastSuccess, "Agreement signed")
		return renderWizard(e, st, wizardView{})
	}
}
