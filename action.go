package hxdrop

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// WireAttrs builds the HTMX attributes for a picker action.
//
// For GET the state token goes in the query string. For mutating methods it
// goes in hx-vals together with any extra values, so the token never shows up
// in access logs:
//
//	WireAttrs("/_c/avatar-1a2b3c4d/remove", http.MethodPost, token, map[string]string{"index": "0"})
//	// hx-post="/_c/avatar-1a2b3c4d/remove" hx-vals='{"index":"0","p":"..."}'
//
// Targeting and swapping are left to the caller's markup.
func WireAttrs(path, method, token string, vals map[string]string) templ.Attributes {
	attrs := templ.Attributes{}

	if method == http.MethodGet || method == "" {
		url := path
		if token != "" {
			url = path + "?p=" + token
		}
		attrs["hx-get"] = url
		return attrs
	}

	switch method {
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	}

	payload := make(map[string]string, len(vals)+1)
	for k, v := range vals {
		payload[k] = v
	}
	if token != "" {
		payload["p"] = token
	}
	if len(payload) > 0 {
		data, _ := json.Marshal(payload)
		attrs["hx-vals"] = string(data)
	}

	return attrs
}
