package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"cabinetrefacing/store"
)

// HandleStepGo jumps to a previously reached step.
func HandleStepGo(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		n, err := cast.ToIntE(e.Request.PathValue("step"))
		if err != nil || !store.Step(n).Valid() {
			return ErrorToast(e, http.StatusBadRequest, "Unknown step")
		}
		if !st.NavigateTo(store.Step(n)) {
			return ErrorToast(e, http.StatusConflict, "Complete the current step first")
		}
		return renderWizard(e, st, wizardView{})
	}
}

// notCurrentStep is the toast for a completion posted from another step.
const notCurrentStep = "This step is not the current one"

// completeStep advances from step, or answers with a toast when step is not
// current (409) or its data does not allow it yet (422).
func completeStep(e *core.RequestEvent, st *store.Store, step store.Step, notReady string) error {
	switch err := st.AdvanceFrom(step, nil); {
	case errors.Is(err, store.ErrNotCurrentStep):
		return ErrorToast(e, http.StatusConflict, notCurrentStep)
	case err != nil:
		return ErrorToast(e, http.StatusUnprocessableEntity, notReady)
	}
	return renderWizard(e, st, wizardView{})
}

// HandleReset discards the project and starts over at the first step.
func HandleReset(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st.ResetProject()
		log.Printf("wizard: project reset")
		SetToast(e, ToastInfo, "Started a new project")
		return renderWizard(e, st, wizardView{})
	}
}
