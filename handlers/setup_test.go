package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"cabinetrefacing/store"
	"cabinetrefacing/testhelpers"
)

func TestHandleSetup(t *testing.T) {
	tests := []struct {
		name      string
		jobName   string
		wantStep  store.Step
		wantJob   string
		wantError bool
	}{
		{"valid", "  Smith Kitchen ", store.StepDoorStyle, "Smith Kitchen", false},
		{"blank", "   ", store.StepProjectSetup, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testhelpers.NewTestStore(t)
			rec := serve(t, HandleSetup(s), htmxRequest(http.MethodPost, "/setup", url.Values{"jobName": {tt.jobName}}, nil))

			snap := s.Snapshot()
			if snap.CurrentStep != tt.wantStep {
				t.Errorf("step = %d, want %d", snap.CurrentStep, tt.wantStep)
			}
			if snap.JobName != tt.wantJob {
				t.Errorf("job name = %q, want %q", snap.JobName, tt.wantJob)
			}
			doc := testhelpers.ParseHTML(t, rec.Body.Bytes())
			hasError := doc.Find(".field-error").Length() > 0
			if hasError != tt.wantError {
				t.Errorf("field error shown = %v, want %v", hasError, tt.wantError)
			}
			if tt.wantError {
				testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), ToastWarning)
			}
		})
	}
}

func TestHandleDoorStyleAndFinish(t *testing.T) {
	s, _ := testhelpers.NewTestStore(t)
	s.SetJobName("Smith")
	testhelpers.Advance(t, s, store.StepProjectSetup)

	rec := serve(t, HandleDoorStyle(s), htmxRequest(http.MethodPost, "/door-style", url.Values{"doorStyle": {"beadboard"}}, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("door style status = %d", rec.Code)
	}
	doc := testhelpers.ParseHTML(t, rec.Body.Bytes())
	if !doc.Find("[data-door-style=beadboard]").HasClass("selected") {
		t.Error("beadboard should be selected")
	}
	if _, disabled := doc.Find("button.continue").Attr("disabled"); !disabled {
		t.Error("continue should stay disabled until a finish is chosen")
	}

	rec = serve(t, HandleDoorStyleComplete(s), htmxRequest(http.MethodPost, "/door-style/complete", nil, nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("complete without finish: status = %d, want 422", rec.Code)
	}

	serve(t, HandleFinish(s), htmxRequest(http.MethodPost, "/finish", url.Values{"finish": {"navy"}}, nil))
	rec = serve(t, HandleDoorStyleComplete(s), htmxRequest(http.MethodPost, "/door-style/complete", nil, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("complete: status = %d", rec.Code)
	}

	snap := s.Snapshot()
	if snap.DoorStyle != "beadboard" || snap.Finish != "navy" {
		t.Errorf("selection = %q/%q", snap.DoorStyle, snap.Finish)
	}
	if snap.CurrentStep != store.StepCabinetSelection || !snap.CompletedSteps.Has(store.StepDoorStyle) {
		t.Errorf("step = %d completed = %v", snap.CurrentStep, snap.CompletedSteps.Sorted())
	}
}

func TestHandleDoorStyle_Unknown(t *testing.T) {
	s, _ := testhelpers.NewTestStore(t)
	rec := serve(t, HandleDoorStyle(s), htmxRequest(http.MethodPost, "/door-style", url.Values{"doorStyle": {"glass"}}, nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unknown door style") {
		t.Errorf("body = %q", rec.Body.String())
	}

	rec = serve(t, HandleFinish(s), htmxRequest(http.MethodPost, "/finish", url.Values{"finish": {"pink"}}, nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("finish status = %d, want 400", rec.Code)
	}
	if snap := s.Snapshot(); snap.DoorStyle != "" || snap.Finish != "" {
		t.Errorf("unknown ids were stored: %q/%q", snap.DoorStyle, snap.Finish)
	}
}
