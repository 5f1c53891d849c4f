package handlers

import (
	"testing"

	"cabinetrefacing/store"
	"cabinetrefacing/testhelpers"
)

func TestBuildStepNav_Initial(t *testing.T) {
	nav := BuildStepNav(store.InitialState())

	if len(nav.Items) != store.StepCount {
		t.Fatalf("items = %d, want %d", len(nav.Items), store.StepCount)
	}
	if nav.TotalSteps != 6 || nav.CompletedCount != 0 || nav.Progress != 0 {
		t.Errorf("nav totals = %d/%d %.0f%%", nav.CompletedCount, nav.TotalSteps, nav.Progress)
	}
	if !nav.Items[0].Current || !nav.Items[0].Reachable {
		t.Error("first step should be current and reachable")
	}
	for _, item := range nav.Items[1:] {
		if item.Reachable {
			t.Errorf("step %d should be locked", item.Step)
		}
	}
}

func TestBuildStepNav_AfterProgress(t *testing.T) {
	s := testhelpers.NewPricedStore(t)
	nav := BuildStepNav(s.Snapshot())

	if nav.CompletedCount != 3 {
		t.Errorf("completed = %d, want 3", nav.CompletedCount)
	}
	if nav.Progress != 50 {
		t.Errorf("progress = %v, want 50", nav.Progress)
	}

	tests := []struct {
		step      int
		current   bool
		completed bool
		reachable bool
	}{
		{0, false, true, true},
		{2, false, true, true},
		{3, true, false, true},
		{4, false, false, false},
		{6, false, false, false},
	}
	for _, tt := range tests {
		item := nav.Items[tt.step]
		if item.Current != tt.current || item.Completed != tt.completed || item.Reachable != tt.reachable {
			t.Errorf("step %d = %+v", tt.step, item)
		}
	}
	if nav.Items[3].Title != "Pricing & Discounts" {
		t.Errorf("title = %q", nav.Items[3].Title)
	}
}
