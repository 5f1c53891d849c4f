// Package testhelpers provides utilities for testing the wizard's PocketBase
// app, store and rendered HTML.
package testhelpers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pocketbase/pocketbase"

	"cabinetrefacing/collections"
	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestStore returns a store backed by an in-memory persister.
func NewTestStore(t *testing.T) (*store.Store, *store.MemoryPersister) {
	t.Helper()
	p := store.NewMemoryPersister(nil)
	return store.New(p), p
}

// NewPricedStore returns a store holding one wall cabinet and one drawer
// selection (subtotal $250) at the pricing step.
func NewPricedStore(t *testing.T) *store.Store {
	t.Helper()
	s, _ := NewTestStore(t)
	s.SetJobName("Doe Kitchen")
	s.SetDoorStyle("shaker")
	s.SetFinish("white")
	s.UpdateCategorySelections(services.CategoryWallCabinets,
		store.SetQuantity(store.AddSelection(services.CategoryWallCabinets, nil, `19"-30"`), 0, `Up to 14"`, 2))
	s.UpdateCategorySelections(services.CategoryDrawers,
		store.SetQuantity(store.AddSelection(services.CategoryDrawers, nil, `6"`), 0, `15"-21"`, 1))
	Advance(t, s, store.StepProjectSetup, store.StepDoorStyle, store.StepCabinetSelection)
	return s
}

// Advance completes each step in turn from the current one. It fails the test
// when a step is not current or not ready, so fixtures cannot skip ahead.
func Advance(t testing.TB, s *store.Store, steps ...store.Step) {
	t.Helper()
	for _, step := range steps {
		if err := s.AdvanceFrom(step, nil); err != nil {
			t.Fatalf("advance from step %d (current %d): %v", step, s.Snapshot().CurrentStep, err)
		}
	}
}

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

// AssertToast checks that an HX-Trigger header carries a showToast event of
// the given type.
func AssertToast(t *testing.T, headerVal, toastType string) {
	t.Helper()

	var trigger struct {
		ShowToast struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"showToast"`
	}
	if err := json.Unmarshal([]byte(headerVal), &trigger); err != nil {
		t.Fatalf("HX-Trigger %q is not a toast: %v", headerVal, err)
	}
	if trigger.ShowToast.Type != toastType {
		t.Errorf("toast type = %q, want %q (message %q)", trigger.ShowToast.Type, toastType, trigger.ShowToast.Message)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
