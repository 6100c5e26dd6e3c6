package hxdrop

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context. Use it for pages that embed pickers:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxdrop.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// TargetID returns the id of the element that will receive the response
// (hx-target). Empty if not present.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//  1. Event only: "files:selected" -> files:selected
//  2. Event with data: {"files:selected": {"id": "...", "files": [...]}}
//
// HTMX fires the event with evt.detail set to the data object.
func BuildTriggerHeader(trigger string, data map[string]any) string {
	if trigger == "" {
		return ""
	}
	if data == nil {
		return trigger
	}

	payload, err := json.Marshal(map[string]any{trigger: data})
	if err != nil {
		return trigger
	}
	return string(payload)
}
