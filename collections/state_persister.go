package collections

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"cabinetrefacing/store"
)

// RecordPersister stores the wizard state as a wizard_states record keyed by
// name. It implements store.Persister.
type RecordPersister struct {
	app  *pocketbase.PocketBase
	name string

	// mu serializes find-or-create so two first saves make one record.
	mu sync.Mutex
}

// NewRecordPersister returns a persister for the default storage name.
func NewRecordPersister(app *pocketbase.PocketBase) *RecordPersister {
	return &RecordPersister{app: app, name: store.StorageName}
}

// Load reads and decodes the record. A missing, stale or malformed record
// yields false so the store starts from its initial state.
func (p *RecordPersister) Load() (store.ProjectState, bool) {
	record, err := p.find()
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("persist: load %q: %v", p.name, err)
		}
		return store.ProjectState{}, false
	}

	state, err := store.Decode([]byte(record.GetString("data")))
	if err != nil {
		log.Printf("persist: discarding stored state %q: %v", p.name, err)
		return store.ProjectState{}, false
	}
	return state, true
}

// Save writes the state, logging failures.
func (p *RecordPersister) Save(state store.ProjectState) {
	if err := p.Put(state); err != nil {
		log.Printf("persist: save %q: %v", p.name, err)
	}
}

// Put encodes state and creates or updates the record.
func (p *RecordPersister) Put(state store.ProjectState) error {
	data, err := store.Encode(state)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	record, err := p.find()
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("find record: %w", err)
		}
		col, err := p.app.FindCollectionByNameOrId(WizardStatesCollection)
		if err != nil {
			return fmt.Errorf("could not find %s collection: %w", WizardStatesCollection, err)
		}
		record = core.NewRecord(col)
		record.Set("name", p.name)
	}

	record.Set("version", store.StorageVersion)
	record.Set("data", types.JSONRaw(data))

	if err := p.app.Save(record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (p *RecordPersister) find() (*core.Record, error) {
	return p.app.FindFirstRecordByData(WizardStatesCollection, "name", p.name)
}
