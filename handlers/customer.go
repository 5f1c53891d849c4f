package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// customerPatchFromForm reads every customer field from the form. Fields
// missing from the request are left unchanged.
func customerPatchFromForm(e *core.RequestEvent) store.CustomerPatch {
	var patch store.CustomerPatch
	targets := map[string]**string{
		"firstName": &patch.FirstName,
		"lastName":  &patch.LastName,
		"email":     &patch.Email,
		"phone":     &patch.Phone,
		"address":   &patch.Address,
		"city":      &patch.City,
		"state":     &patch.State,
		"zipCode":   &patch.ZipCode,
	}
	for _, f := range services.CustomerFields {
		if _, ok := e.Request.PostForm[f.Name]; !ok {
			continue
		}
		v := strings.TrimSpace(e.Request.PostFormValue(f.Name))
		if f.Name == "state" {
			v = strings.ToUpper(v)
		}
		*targets[f.Name] = &v
	}
	return patch
}

// HandleCustomer saves the customer form. The step completes only when every
// field validates; otherwise the form is shown again with field errors.
func HandleCustomer(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form submission")
		}
		patch := customerPatchFromForm(e)

		var errs map[string]string
		err := st.AdvanceFrom(store.StepCustomerInfo, func(ps *store.ProjectState) error {
			patch.Apply(&ps.Customer)
			if errs = services.ValidateCustomer(ps.Customer.Fields()); len(errs) > 0 {
				return store.ErrStepIncomplete
			}
			return nil
		})
		switch {
		case errors.Is(err, store.ErrNotCurrentStep):
			return ErrorToast(e, http.StatusConflict, notCurrentStep)
		case err != nil:
			SetToast(e, ToastWarning, "Please fix the highlighted fields")
			return renderWizard(e, st, wizardView{customerErrors: errs})
		}

		SetToast(e, ToastSuccess, "Customer info saved")
		return renderWizard(e, st, wizardView{})
	}
}
