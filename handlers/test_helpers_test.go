package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/store"
	"cabinetrefacing/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	if app != nil {
		e.App = app
	}
	e.Request = req
	e.Response = rec
	return e
}

// htmxRequest builds an HTMX form request. pathValues are set as router
// path parameters.
func htmxRequest(method, target string, form url.Values, pathValues map[string]string) *http.Request {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// serve runs handler against req and returns the recorded response.
func serve(t *testing.T, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func strPtr(s string) *string { return &s }

// agreementStore returns a priced store walked forward to the agreement step
// with a valid customer.
func agreementStore(t *testing.T) *store.Store {
	t.Helper()
	s := testhelpers.NewPricedStore(t)
	testhelpers.Advance(t, s, store.StepPricing)
	s.UpdateCustomerInfo(store.CustomerPatch{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Doe"),
		Email:     strPtr("jane@example.com"),
		City:      strPtr("Springfield"),
		State:     strPtr("IL"),
		ZipCode:   strPtr("62701"),
		Address:   strPtr("12 Oak St"),
	})
	testhelpers.Advance(t, s, store.StepCustomerInfo)
	if got := s.Snapshot().CurrentStep; got != store.StepAgreement {
		t.Fatalf("fixture at step %d, want agreement", got)
	}
	return s
}
