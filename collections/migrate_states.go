package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"cabinetrefacing/store"
)

// PurgeStaleWizardStates deletes wizard state records written by a different
// schema version. Safe to call on every startup -- returns early if nothing
// to purge.
func PurgeStaleWizardStates(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(WizardStatesCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find %s collection: %w", WizardStatesCollection, err)
	}

	stale, err := app.FindRecordsByFilter(
		col,
		"version != {:version}",
		"",
		0,
		0,
		map[string]any{"version": store.StorageVersion},
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query stale wizard states: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	log.Printf("migrate: found %d wizard state(s) with a stale version -- purging...\n", len(stale))

	for _, record := range stale {
		if err := app.Delete(record); err != nil {
			log.Printf("migrate: failed to delete wizard state %q (%s): %v\n", record.GetString("name"), record.Id, err)
			continue
		}
		log.Printf("migrate: purged wizard state %q (version %d)\n", record.GetString("name"), record.GetInt("version"))
	}

	return nil
}
