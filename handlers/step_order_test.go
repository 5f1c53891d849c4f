package handlers

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/store"
	"cabinetrefacing/testhelpers"
)

// freshStore is a store on the first step whose door style data would
// otherwise satisfy its step.
func freshStore(t *testing.T) *store.Store {
	t.Helper()
	s, _ := testhelpers.NewTestStore(t)
	s.SetDoorStyle("shaker")
	s.SetFinish("white")
	return s
}

func signatureForm() url.Values {
	return url.Values{
		"customerSignature": {"Jane Doe"},
		"salesRepSignature": {"Sam Rep"},
		"salesRepName":      {"Sam Rep"},
	}
}

func TestCompletionRoutes_RejectOtherSteps(t *testing.T) {
	tests := []struct {
		name    string
		fixture func(*testing.T) *store.Store
		handler func(*store.Store) func(*core.RequestEvent) error
		target  string
		form    url.Values
	}{
		{"setup from pricing", testhelpers.NewPricedStore, HandleSetup, "/setup", url.Values{"jobName": {"Other Job"}}},
		{"door style from start", freshStore, HandleDoorStyleComplete, "/door-style/complete", nil},
		{"door style from pricing", testhelpers.NewPricedStore, HandleDoorStyleComplete, "/door-style/complete", nil},
		{"cabinets from start", freshStore, HandleCabinetsComplete, "/cabinets/complete", nil},
		{"pricing from start", freshStore, HandlePricingComplete, "/pricing/complete", nil},
		{"customer from start", freshStore, HandleCustomer, "/customer", validCustomerForm()},
		{"customer from pricing", testhelpers.NewPricedStore, HandleCustomer, "/customer", validCustomerForm()},
		{"agreement from start", freshStore, HandleAgreement, "/agreement", signatureForm()},
		{"agreement from pricing", testhelpers.NewPricedStore, HandleAgreement, "/agreement", signatureForm()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.fixture(t)
			before := s.Snapshot()

			rec := serve(t, tt.handler(s), htmxRequest(http.MethodPost, tt.target, tt.form, nil))

			if rec.Code != http.StatusConflict {
				t.Errorf("status = %d, want 409", rec.Code)
			}
			testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), ToastError)

			after := s.Snapshot()
			if after.CurrentStep != before.CurrentStep {
				t.Errorf("current step = %d, want %d", after.CurrentStep, before.CurrentStep)
			}
			if !reflect.DeepEqual(after.CompletedSteps.Sorted(), before.CompletedSteps.Sorted()) {
				t.Errorf("completed = %v, want %v", after.CompletedSteps.Sorted(), before.CompletedSteps.Sorted())
			}
			if !reflect.DeepEqual(after, before) {
				t.Errorf("state changed by a rejected post:\n got %+v\nwant %+v", after, before)
			}
		})
	}
}

func TestCompletionRoutes_RevisitedStepAdvancesOnce(t *testing.T) {
	s := testhelpers.NewPricedStore(t)
	if !s.NavigateTo(store.StepProjectSetup) {
		t.Fatal("could not go back to setup")
	}

	rec := serve(t, HandleSetup(s), htmxRequest(http.MethodPost, "/setup", url.Values{"jobName": {"Renamed"}}, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	snap := s.Snapshot()
	if snap.JobName != "Renamed" {
		t.Errorf("job name = %q", snap.JobName)
	}
	if snap.CurrentStep != store.StepDoorStyle {
		t.Errorf("current step = %d, want door style", snap.CurrentStep)
	}

	// a second post of the same form is now out of turn
	rec = serve(t, HandleSetup(s), htmxRequest(http.MethodPost, "/setup", url.Values{"jobName": {"Again"}}, nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("repeat status = %d, want 409", rec.Code)
	}
	if got := s.Snapshot().JobName; got != "Renamed" {
		t.Errorf("job name after repeat = %q", got)
	}
}

func TestCompletionRoutes_WalkInOrder(t *testing.T) {
	s, _ := testhelpers.NewTestStore(t)
	steps := []struct {
		handler func(*store.Store) func(*core.RequestEvent) error
		target  string
		form    url.Values
		want    store.Step
	}{
		{HandleSetup, "/setup", url.Values{"jobName": {"Walk"}}, store.StepDoorStyle},
		{HandleDoorStyle, "/door-style", url.Values{"doorStyle": {"shaker"}}, store.StepDoorStyle},
		{HandleFinish, "/finish", url.Values{"finish": {"white"}}, store.StepDoorStyle},
		{HandleDoorStyleComplete, "/door-style/complete", nil, store.StepCabinetSelection},
		{HandleCabinetsComplete, "/cabinets/complete", nil, store.StepPricing},
		{HandlePricingComplete, "/pricing/complete", nil, store.StepCustomerInfo},
		{HandleCustomer, "/customer", validCustomerForm(), store.StepAgreement},
		{HandleAgreement, "/agreement", signatureForm(), store.StepComplete},
	}

	for _, step := range steps {
		rec := serve(t, step.handler(s), htmxRequest(http.MethodPost, step.target, step.form, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", step.target, rec.Code)
		}
		if got := s.Snapshot().CurrentStep; got != step.want {
			t.Fatalf("after %s step = %d, want %d", step.target, got, step.want)
		}
	}
	if n := s.Snapshot().CompletedSteps.Len(); n != 6 {
		t.Errorf("completed steps = %d, want 6", n)
	}
}
