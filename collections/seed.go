package collections

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// ── Definition structs ───────────────────────────────────────────────────

type selectionDef struct {
	category services.CategoryKey
	height   string
	widths   map[string]int
}

// demoSelections is a small galley kitchen: upper and lower runs, a pantry
// door and a drawer stack.
var demoSelections = []selectionDef{
	{services.CategoryWallCabinets, `31"-42"`, map[string]int{`Up to 14"`: 2, `15"-21"`: 4}},
	{services.CategoryWallCabinets, `Up to 18"`, map[string]int{`22"-27"`: 2}},
	{services.CategoryTallCabinets, `60"`, map[string]int{`15"-21"`: 2}},
	{services.CategoryBaseCabinets, `30"`, map[string]int{`Up to 14"`: 1, `15"-21"`: 3, `22"-27"`: 2}},
	{services.CategoryDrawers, `6"`, map[string]int{`15"-21"`: 3, `28"-36"`: 1}},
	{services.CategoryPlainPanels, `Up to 36"`, map[string]int{`Over 36"`: 1}},
}

// DemoState builds the project used by SeedDemoState: a kitchen at the
// pricing step with the first three steps completed.
func DemoState() store.ProjectState {
	s := store.New(nil)

	s.SetJobName("Maple Street Kitchen")
	s.SetDoorStyle("shaker")
	s.SetFinish("sage")
	s.CompleteStep(store.StepProjectSetup)
	s.CompleteStep(store.StepDoorStyle)

	for _, d := range demoSelections {
		s.ModifySelections(d.category, func(list []store.CabinetSelection) []store.CabinetSelection {
			list = store.AddSelection(d.category, list, d.height)
			for w, n := range d.widths {
				list = store.SetQuantity(list, len(list)-1, w, n)
			}
			return list
		})
	}
	s.CompleteStep(store.StepCabinetSelection)

	s.ApplyDiscountCode("WELCOME15")

	first, last, email, phone := "Jane", "Doe", "jane.doe@example.com", "555-201-4433"
	s.UpdateCustomerInfo(store.CustomerPatch{
		FirstName: &first,
		LastName:  &last,
		Email:     &email,
		Phone:     &phone,
	})

	return s.Snapshot()
}

// SeedDemoState stores DemoState as the persisted wizard state. It is safe to
// call on every startup because it returns early if a state record already
// exists.
func SeedDemoState(app *pocketbase.PocketBase) error {
	_, err := app.FindFirstRecordByData(WizardStatesCollection, "name", store.StorageName)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("seed: could not query %s: %w", WizardStatesCollection, err)
	}

	log.Println("seed: no wizard state stored -- inserting demo project ...")

	state := DemoState()
	if err := NewRecordPersister(app).Put(state); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Printf("seed: demo project %q saved (grand total %s)\n", state.JobName, services.FormatUSD(state.GrandTotal))
	return nil
}
