package store

import (
	"encoding/json"
	"sort"
	"strings"

	"cabinetrefacing/services"
)

// Step is a position in the wizard, 0 through StepComplete.
type Step int

const (
	StepProjectSetup Step = iota
	StepDoorStyle
	StepCabinetSelection
	StepPricing
	StepCustomerInfo
	StepAgreement
	StepComplete
)

// StepCount is the number of wizard steps including the terminal one.
const StepCount = int(StepComplete) + 1

var stepTitles = [StepCount]string{
	"Project Setup",
	"Door Style & Finish",
	"Cabinet Selection",
	"Pricing & Discounts",
	"Customer Info",
	"Agreement & Signatures",
	"Complete",
}

// Steps lists every step in order.
func Steps() []Step {
	out := make([]Step, StepCount)
	for i := range out {
		out[i] = Step(i)
	}
	return out
}

// Title returns the step's display name.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return stepTitles[s]
}

// Valid reports whether s is within [StepProjectSetup, StepComplete].
func (s Step) Valid() bool {
	return s >= StepProjectSetup && s <= StepComplete
}

// ClampStep limits s to the valid step range.
func ClampStep(s Step) Step {
	if s < StepProjectSetup {
		return StepProjectSetup
	}
	if s > StepComplete {
		return StepComplete
	}
	return s
}

// StepSet is the set of completed steps. It serializes as a sorted JSON array.
type StepSet map[Step]struct{}

// Has reports whether s is in the set.
func (ss StepSet) Has(s Step) bool {
	_, ok := ss[s]
	return ok
}

// Add inserts s. Adding an existing step is a no-op.
func (ss StepSet) Add(s Step) {
	ss[s] = struct{}{}
}

// Len returns the number of steps in the set.
func (ss StepSet) Len() int { return len(ss) }

// Sorted returns the members in ascending order.
func (ss StepSet) Sorted() []Step {
	out := make([]Step, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (ss StepSet) Clone() StepSet {
	out := make(StepSet, len(ss))
	for s := range ss {
		out[s] = struct{}{}
	}
	return out
}

func (ss StepSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ss.Sorted())
}

func (ss *StepSet) UnmarshalJSON(data []byte) error {
	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return err
	}
	set := make(StepSet, len(steps))
	for _, s := range steps {
		if s.Valid() {
			set[s] = struct{}{}
		}
	}
	*ss = set
	return nil
}

// CanNavigate reports whether the wizard may jump from the state's current
// step to target: backwards, to the current step, or to any completed step.
func CanNavigate(state ProjectState, target Step) bool {
	if !target.Valid() {
		return false
	}
	return target <= state.CurrentStep || state.CompletedSteps.Has(target)
}

// CanComplete reports whether the data collected for step is sufficient to
// mark it completed.
func CanComplete(state ProjectState, step Step) bool {
	switch step {
	case StepProjectSetup:
		return strings.TrimSpace(state.JobName) != ""
	case StepDoorStyle:
		return state.DoorStyle != "" && state.Finish != ""
	case StepCabinetSelection, StepPricing:
		return true
	case StepCustomerInfo:
		c := state.Customer
		return strings.TrimSpace(c.FirstName) != "" &&
			strings.TrimSpace(c.LastName) != "" &&
			services.ValidateEmail(c.Email)
	case StepAgreement:
		return state.AgreementSigned && strings.TrimSpace(state.SalesRepName) != ""
	}
	return false
}

// Progress returns the completed share of the non-terminal steps as a
// percentage in [0, 100].
func Progress(state ProjectState) float64 {
	pct := float64(state.CompletedSteps.Len()) / float64(StepCount-1) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
