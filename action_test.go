package hxdrop

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestWireAttrsGet(t *testing.T) {
	attrs := WireAttrs("/_c/picker-1234/", http.MethodGet, "tok", nil)

	if attrs["hx-get"] != "/_c/picker-1234/?p=tok" {
		t.Errorf("hx-get = %v", attrs["hx-get"])
	}
	if _, ok := attrs["hx-vals"]; ok {
		t.Error("GET should not set hx-vals")
	}
}

func TestWireAttrsPost(t *testing.T) {
	attrs := WireAttrs("/_c/picker-1234/remove", http.MethodPost, "tok", map[string]string{"index": "2"})

	if attrs["hx-post"] != "/_c/picker-1234/remove" {
		t.Errorf("hx-post = %v", attrs["hx-post"])
	}

	var vals map[string]string
	if err := json.Unmarshal([]byte(attrs["hx-vals"].(string)), &vals); err != nil {
		t.Fatalf("hx-vals is not JSON: %v", err)
	}
	if vals["p"] != "tok" || vals["index"] != "2" {
		t.Errorf("hx-vals = %v", vals)
	}
}

func TestWireAttrsMethods(t *testing.T) {
	tests := []struct {
		method string
		attr   string
	}{
		{http.MethodPut, "hx-put"},
		{http.MethodPatch, "hx-patch"},
		{http.MethodDelete, "hx-delete"},
	}
	for _, tt := range tests {
		attrs := WireAttrs("/x", tt.method, "", nil)
		if attrs[tt.attr] != "/x" {
			t.Errorf("%s: %s = %v", tt.method, tt.attr, attrs[tt.attr])
		}
		if _, ok := attrs["hx-vals"]; ok {
			t.Errorf("%s: empty token and vals should not set hx-vals", tt.method)
		}
	}
}
