package hxdrop

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRegistryPanicsWithoutKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRegistry(nil) should panic")
		}
	}()
	NewRegistry(nil)
}

func TestRegistryAdd(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))
	a := New("a")
	b := New("b")
	reg.Add(a, b)

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if reg.Encoder() == nil {
		t.Error("Encoder() = nil")
	}
}

func TestRegistryPrefixCollision(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))
	p := New("dup")
	reg.Add(p)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on prefix collision")
		}
		if !strings.Contains(r.(string), "prefix collision") {
			t.Errorf("panic = %v", r)
		}
	}()
	reg.Add(p)
}

func TestRegistryHandlerCSRF(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))
	p := New("picker", WithIDFunc(func() string { return "w1" }))
	reg.Add(p)
	token := mount(t, p, Config{MaxFiles: 2}).Token

	form := BatchForm(token, aPNG)

	tests := []struct {
		name   string
		htmx   bool
		status int
	}{
		{"plain form post rejected", false, http.StatusForbidden},
		{"htmx post allowed", true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, p.Prefix()+"/pick", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := httptest.NewRecorder()
			reg.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestRegistryHandlerGetWithoutHTMX(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))
	p := New("picker")
	reg.Add(p)
	token := mount(t, p, Config{}).Token

	req := httptest.NewRequest(http.MethodGet, p.Prefix()+"/?p="+url.QueryEscape(token), nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRegistryUnknownPrefix(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))

	req := httptest.NewRequest(http.MethodGet, "/_c/nothing-00000000/", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRegistryCustomOnError(t *testing.T) {
	reg := NewRegistry([]byte("test-key"))
	p := New("picker")
	reg.Add(p)

	var got error
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	result, err := TestAction(p, p.Prefix()+"/pick", http.MethodPost, url.Values{"p": {"garbage"}})
	if err != nil {
		t.Fatal(err)
	}
	if !result.HasStatus(http.StatusTeapot) {
		t.Errorf("status = %d, want 418", result.StatusCode)
	}
	if !errors.Is(got, ErrInvalidFormat) {
		t.Errorf("OnError got %v, want ErrInvalidFormat", got)
	}
}

func TestRegistryDefaultErrorLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := NewRegistry([]byte("test-key"))
	reg.SetLogger(zap.New(core))
	p := New("picker")
	reg.Add(p)

	result, err := TestAction(p, p.Prefix()+"/pick", http.MethodPost, url.Values{"p": {"garbage"}})
	if err != nil {
		t.Fatal(err)
	}
	if !result.HasStatus(http.StatusBadRequest) {
		t.Errorf("status = %d, want 400", result.StatusCode)
	}

	entries := logs.FilterMessage("picker request rejected").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d rejections, want 1", len(entries))
	}
	if entries[0].ContextMap()["status"] != int64(http.StatusBadRequest) {
		t.Errorf("status field = %v", entries[0].ContextMap()["status"])
	}
}
