package handlers

import (
	"cabinetrefacing/store"
	"cabinetrefacing/templates"
)

// BuildStepNav constructs the progress bar and step navigation for state.
func BuildStepNav(state store.ProjectState) templates.StepNavData {
	nav := templates.StepNavData{
		CompletedCount: min(state.CompletedSteps.Len(), store.StepCount-1),
		TotalSteps:     store.StepCount - 1,
		Progress:       store.Progress(state),
	}
	for _, s := range store.Steps() {
		nav.Items = append(nav.Items, templates.StepNavItem{
			Step:      int(s),
			Title:     s.Title(),
			Current:   s == state.CurrentStep,
			Completed: state.CompletedSteps.Has(s),
			Reachable: store.CanNavigate(state, s),
		})
	}
	return nav
}
