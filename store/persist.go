package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"cabinetrefacing/services"
)

const (
	// StorageName keys the persisted record.
	StorageName = "cabinet-refacing-storage"
	// StorageVersion is bumped whenever the persisted layout changes. Records
	// with any other version are discarded.
	StorageVersion = 1
)

// ErrVersionMismatch is returned by Decode for a record written by another
// schema version.
var ErrVersionMismatch = errors.New("store: persisted state version mismatch")

// Persister loads and saves the project state. Save is best-effort:
// implementations log failures instead of returning them.
type Persister interface {
	Load() (ProjectState, bool)
	Save(ProjectState)
}

type envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// Encode serializes state in the versioned persistence envelope.
func Encode(state ProjectState) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("store: encode state: %w", err)
	}
	data, err := json.Marshal(envelope{State: raw, Version: StorageVersion})
	if err != nil {
		return nil, fmt.Errorf("store: encode envelope: %w", err)
	}
	return data, nil
}

// Decode parses a persistence envelope. The returned state is normalized:
// code fractions are re-derived from the stored codes and totals recomputed.
func Decode(data []byte) (ProjectState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ProjectState{}, fmt.Errorf("store: decode envelope: %w", err)
	}
	if env.Version != StorageVersion {
		return ProjectState{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, env.Version, StorageVersion)
	}
	if len(env.State) == 0 {
		return ProjectState{}, errors.New("store: decode envelope: missing state")
	}

	state := InitialState()
	if err := json.Unmarshal(env.State, &state); err != nil {
		return ProjectState{}, fmt.Errorf("store: decode state: %w", err)
	}
	normalize(&state)
	return state, nil
}

// normalize restores invariants on state read from outside the store.
func normalize(s *ProjectState) {
	for _, c := range services.CabinetCategories {
		p := s.selectionsPtr(c.Key)
		if *p == nil {
			*p = []CabinetSelection{}
		}
		*p = sanitizeSelections(*p)
	}
	if s.CompletedSteps == nil {
		s.CompletedSteps = StepSet{}
	}
	s.CurrentStep = ClampStep(s.CurrentStep)

	s.DiscountCode = services.NormalizeCode(s.DiscountCode)
	s.DiscountAmount = services.ValidateDiscountCode(s.DiscountCode).Discount
	s.ReferralCode = services.NormalizeCode(s.ReferralCode)
	s.ReferralDiscount = services.ValidateReferralCode(s.ReferralCode).Discount

	s.AgreementSigned = signed(s.CustomerSignature, s.SalesRepSignature)
	s.recalculate()
}

// MemoryPersister keeps the encoded envelope in memory. It is used in tests
// and when no database is configured.
type MemoryPersister struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryPersister returns a persister, optionally pre-loaded with an
// encoded envelope.
func NewMemoryPersister(data []byte) *MemoryPersister {
	return &MemoryPersister{data: data}
}

func (p *MemoryPersister) Load() (ProjectState, bool) {
	p.mu.Lock()
	data := p.data
	p.mu.Unlock()

	if len(data) == 0 {
		return ProjectState{}, false
	}
	state, err := Decode(data)
	if err != nil {
		return ProjectState{}, false
	}
	return state, true
}

func (p *MemoryPersister) Save(state ProjectState) {
	data, err := Encode(state)
	if err != nil {
		return
	}
	p.mu.Lock()
	p.data = data
	p.saves++
	p.mu.Unlock()
}

// Data returns the last saved envelope.
func (p *MemoryPersister) Data() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// Saves returns how many times Save succeeded.
func (p *MemoryPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
