package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// categoryFromPath resolves the {category} path value against the catalog.
func categoryFromPath(e *core.RequestEvent) (services.CabinetCategory, bool) {
	return services.FindCategory(services.CategoryKey(e.Request.PathValue("category")))
}

// selectionIndex parses {index}. Bounds are checked against the list inside
// ModifySelections, see inRange.
func selectionIndex(e *core.RequestEvent) (int, bool) {
	index, err := cast.ToIntE(e.Request.PathValue("index"))
	return index, err == nil
}

func inRange(list []store.CabinetSelection, index int) bool {
	return index >= 0 && index < len(list)
}

// parseQty reads a quantity input leniently: blank is 0, decimals are
// truncated and negatives are clamped by the store.
func parseQty(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// HandleCabinetAdd appends an empty selection row for the posted height.
func HandleCabinetAdd(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		c, ok := categoryFromPath(e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Unknown cabinet category")
		}
		height := e.Request.FormValue("height")
		if !c.AllowsHeight(height) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown height for "+c.Title)
		}
		st.ModifySelections(c.Key, func(list []store.CabinetSelection) []store.CabinetSelection {
			return store.AddSelection(c.Key, list, height)
		})
		return renderWizard(e, st, wizardView{})
	}
}

// HandleCabinetRemove deletes one selection row.
func HandleCabinetRemove(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		c, ok := categoryFromPath(e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Unknown cabinet category")
		}
		index, ok := selectionIndex(e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Selection not found")
		}
		found := false
		st.ModifySelections(c.Key, func(list []store.CabinetSelection) []store.CabinetSelection {
			if found = inRange(list, index); !found {
				return list
			}
			return store.RemoveSelection(list, index)
		})
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Selection not found")
		}
		return renderWizard(e, st, wizardView{})
	}
}

// HandleCabinetQuantity sets the quantity of one width in a selection row.
func HandleCabinetQuantity(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		c, ok := categoryFromPath(e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Unknown cabinet category")
		}
		index, ok := selectionIndex(e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Selection not found")
		}
		width := e.Request.FormValue("width")
		if !c.AllowsWidth(width) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown width for "+c.Title)
		}
		qty, err := parseQty(e.Request.FormValue("qty"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a number")
		}
		found := false
		st.ModifySelections(c.Key, func(list []store.CabinetSelection) []store.CabinetSelection {
			if found = inRange(list, index); !found {
				return list
			}
			return store.SetQuantity(list, index, width, qty)
		})
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Selection not found")
		}
		return renderWizard(e, st, wizardView{})
	}
}

func HandleCabinetsComplete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return completeStep(e, st, store.StepCabinetSelection, "")
	}
}
