package store

import (
	"errors"
	"strings"
	"sync"

	"cabinetrefacing/services"
)

var (
	// ErrNotCurrentStep is returned by AdvanceFrom when the step is not the
	// one the wizard is on. Nothing is changed.
	ErrNotCurrentStep = errors.New("store: not the current step")
	// ErrStepIncomplete is returned by AdvanceFrom when the step's data does
	// not satisfy CanComplete.
	ErrStepIncomplete = errors.New("store: step incomplete")
)

// Listener receives a snapshot of the state after every mutation.
type Listener func(ProjectState)

type subscription struct {
	id int
	fn Listener
}

// Store owns the single ProjectState of the running wizard. Every mutator
// leaves subtotal and grand total consistent with the selections and codes.
// Listeners see snapshots in mutation order and must not call mutators.
type Store struct {
	// notifyMu is held from a mutation until its listeners return, so a slow
	// persister cannot save an older snapshot over a newer one.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	state     ProjectState
	listeners []subscription
	nextID    int
}

// New creates a store from the persisted state when p holds a valid record,
// otherwise from InitialState. The persister is subscribed so every later
// mutation is saved. p may be nil.
func New(p Persister) *Store {
	s := &Store{state: InitialState()}
	if p == nil {
		return s
	}
	if loaded, ok := p.Load(); ok {
		s.state = loaded
	}
	s.Subscribe(p.Save)
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() ProjectState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to be called after each mutation. The returned
// function removes the registration.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// update applies fn under the lock, then notifies listeners outside it.
func (s *Store) update(fn func(st *ProjectState)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	fn(&s.state)
	listeners := make([]Listener, len(s.listeners))
	for i, l := range s.listeners {
		listeners[i] = l.fn
	}
	var snap ProjectState
	if len(listeners) > 0 {
		snap = s.state.Clone()
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap.Clone())
	}
}

func (s *Store) SetJobName(name string) {
	s.update(func(st *ProjectState) { st.JobName = name })
}

func (s *Store) SetDoorStyle(id string) {
	s.update(func(st *ProjectState) { st.DoorStyle = id })
}

func (s *Store) SetFinish(id string) {
	s.update(func(st *ProjectState) { st.Finish = id })
}

// UpdateCategorySelections replaces the selections of one category. Negative
// quantities are stored as 0. Unknown categories are ignored.
func (s *Store) UpdateCategorySelections(key services.CategoryKey, selections []CabinetSelection) {
	s.ModifySelections(key, func([]CabinetSelection) []CabinetSelection { return selections })
}

// ModifySelections replaces a category's selections with fn(current)
// atomically. fn receives a copy it may modify.
func (s *Store) ModifySelections(key services.CategoryKey, fn func([]CabinetSelection) []CabinetSelection) {
	if _, ok := services.FindCategory(key); !ok {
		return
	}
	s.update(func(st *ProjectState) {
		p := st.selectionsPtr(key)
		*p = sanitizeSelections(fn(sanitizeSelections(*p)))
		st.recalculate()
	})
}

// ApplyDiscountCode stores the normalized code with its table fraction, or 0
// when the code is unknown. An empty code clears the discount.
func (s *Store) ApplyDiscountCode(code string) services.CodeValidation {
	result := services.ValidateDiscountCode(code)
	s.update(func(st *ProjectState) {
		st.DiscountCode = result.Code
		st.DiscountAmount = result.Discount
		st.recalculate()
	})
	return result
}

// ApplyReferralCode is ApplyDiscountCode for the referral table.
func (s *Store) ApplyReferralCode(code string) services.CodeValidation {
	result := services.ValidateReferralCode(code)
	s.update(func(st *ProjectState) {
		st.ReferralCode = result.Code
		st.ReferralDiscount = result.Discount
		st.recalculate()
	})
	return result
}

// CalculateTotal recomputes subtotal and grand total.
func (s *Store) CalculateTotal() {
	s.update(func(st *ProjectState) { st.recalculate() })
}

// UpdateCustomerInfo merges the non-nil fields of patch into the customer.
func (s *Store) UpdateCustomerInfo(patch CustomerPatch) {
	s.update(func(st *ProjectState) { patch.Apply(&st.Customer) })
}

func (s *Store) SetCustomerSignature(sig string) {
	s.update(func(st *ProjectState) {
		st.CustomerSignature = sig
		st.AgreementSigned = signed(st.CustomerSignature, st.SalesRepSignature)
	})
}

func (s *Store) SetSalesRepSignature(sig, name string) {
	s.update(func(st *ProjectState) {
		st.SalesRepSignature = sig
		st.SalesRepName = name
		st.AgreementSigned = signed(st.CustomerSignature, st.SalesRepSignature)
	})
}

// SetCurrentStep moves to step, clamped to the valid range.
func (s *Store) SetCurrentStep(step Step) {
	s.update(func(st *ProjectState) { st.CurrentStep = ClampStep(step) })
}

// MarkStepCompleted adds step to the completed set. Out-of-range steps are
// ignored.
func (s *Store) MarkStepCompleted(step Step) {
	if !step.Valid() {
		return
	}
	s.update(func(st *ProjectState) { st.CompletedSteps.Add(step) })
}

// CompleteStep marks step completed and advances to the following step. The
// terminal step is never passed.
func (s *Store) CompleteStep(step Step) {
	if !step.Valid() {
		return
	}
	s.update(func(st *ProjectState) {
		st.CompletedSteps.Add(step)
		st.CurrentStep = ClampStep(step + 1)
	})
}

// AdvanceFrom is the guarded forward move used by the routes. In one update it checks
// that step is current, applies edit (which may be nil), and then completes
// step when CanComplete allows it. An error from edit keeps the edits and
// leaves the wizard on step.
func (s *Store) AdvanceFrom(step Step, edit func(st *ProjectState) error) error {
	var err error
	s.update(func(st *ProjectState) {
		if st.CurrentStep != step {
			err = ErrNotCurrentStep
			return
		}
		if edit != nil {
			err = edit(st)
			st.AgreementSigned = signed(st.CustomerSignature, st.SalesRepSignature)
			st.recalculate()
			if err != nil {
				return
			}
		}
		if !CanComplete(*st, step) {
			err = ErrStepIncomplete
			return
		}
		st.CompletedSteps.Add(step)
		st.CurrentStep = ClampStep(step + 1)
	})
	return err
}

// NavigateTo moves to target if CanNavigate allows it.
func (s *Store) NavigateTo(target Step) bool {
	moved := false
	s.update(func(st *ProjectState) {
		if CanNavigate(*st, target) {
			st.CurrentStep = target
			moved = true
		}
	})
	return moved
}

// ResetProject discards everything and returns to InitialState.
func (s *Store) ResetProject() {
	s.update(func(st *ProjectState) { *st = InitialState() })
}

// AddSelection returns list with a new all-zero row for height appended. The
// list is returned unchanged for an unknown category or height.
func AddSelection(key services.CategoryKey, list []CabinetSelection, height string) []CabinetSelection {
	c, ok := services.FindCategory(key)
	if !ok || !c.AllowsHeight(height) {
		return list
	}
	out := make([]CabinetSelection, 0, len(list)+1)
	out = append(out, list...)
	return append(out, CabinetSelection{Height: height, WidthQuantities: c.ZeroQuantities()})
}

// RemoveSelection returns list without the row at index.
func RemoveSelection(list []CabinetSelection, index int) []CabinetSelection {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]CabinetSelection, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// SetQuantity returns list with the quantity for width in row index set to
// qty, clamped to >= 0.
func SetQuantity(list []CabinetSelection, index int, width string, qty int) []CabinetSelection {
	if index < 0 || index >= len(list) {
		return list
	}
	if qty < 0 {
		qty = 0
	}
	out := make([]CabinetSelection, len(list))
	copy(out, list)
	row := out[index].clone()
	row.WidthQuantities[width] = qty
	out[index] = row
	return out
}

func signed(customer, salesRep string) bool {
	return strings.TrimSpace(customer) != "" && strings.TrimSpace(salesRep) != ""
}
