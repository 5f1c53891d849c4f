package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const htmxRequestKey contextKey = "htmxRequest"

// IsHTMX reports whether the request was issued by HTMX. The middleware
// records it in the context; the header is consulted when it did not run.
func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxRequestKey).(bool); ok {
		return v
	}
	return r.Header.Get("HX-Request") == "true"
}

// WizardMiddleware marks wizard responses as uncacheable, since every page
// reflects the live project state, and records whether the request came
// from HTMX.
func WizardMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !strings.HasPrefix(e.Request.URL.Path, "/static/") {
			e.Response.Header().Set("Cache-Control", "no-store")
		}

		ctx := context.WithValue(e.Request.Context(), htmxRequestKey, e.Request.Header.Get("HX-Request") == "true")
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
