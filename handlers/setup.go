package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// HandleSetup saves the job name and completes the project setup step.
func HandleSetup(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobName := strings.TrimSpace(e.Request.FormValue("jobName"))
		err := st.AdvanceFrom(store.StepProjectSetup, func(ps *store.ProjectState) error {
			ps.JobName = jobName
			return nil
		})
		switch {
		case errors.Is(err, store.ErrNotCurrentStep):
			return ErrorToast(e, http.StatusConflict, notCurrentStep)
		case err != nil:
			SetToast(e, ToastWarning, "Enter a job name to continue")
			return renderWizard(e, st, wizardView{setupError: "Job name is required"})
		}
		return renderWizard(e, st, wizardView{})
	}
}

// HandleDoorStyle selects a door style from the catalog.
func HandleDoorStyle(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.FormValue("doorStyle")
		if _, ok := services.FindDoorStyle(id); !ok {
			return ErrorToast(e, http.StatusBadRequest, "Unknown door style")
		}
		st.SetDoorStyle(id)
		return renderWizard(e, st, wizardView{})
	}
}

// HandleFinish selects a finish from the catalog.
func HandleFinish(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.FormValue("finish")
		if _, ok := services.FindFinish(id); !ok {
			return ErrorToast(e, http.StatusBadRequest, "Unknown finish")
		}
		st.SetFinish(id)
		return renderWizard(e, st, wizardView{})
	}
}

func HandleDoorStyleComplete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return completeStep(e, st, store.StepDoorStyle, "Choose a door style and a finish")
	}
}
