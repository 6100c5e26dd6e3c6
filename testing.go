package hxdrop

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxdrop/selection"
)

// TestResult holds the result of rendering a picker for testing.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes, events and flashes, and carries the state token of the
// rendered widget so tests can chain actions.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Flashes         []Flash
	// Token is the data-hxdrop-state value of the rendered widget, or the
	// token carried by a drag hint.
	Token string

	triggerData map[string]json.RawMessage
}

// TestableComponent combines Hydrater and Renderer for testing.
type TestableComponent[S any] interface {
	Hydrater[S]
	Renderer[S]
}

// TestRender runs Hydrate and Render for state and returns the output.
//
// Use this for unit tests of rendering when you control state directly.
// It bypasses token encoding for the request side, though the picker still
// encodes the rendered token, so the picker must be registered.
//
//	result, err := hxdrop.TestRender(picker, state)
//	if !result.HTMLContains("a.png") {
//	    t.Fatal("missing file")
//	}
func TestRender[S any](comp TestableComponent[S], state S) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, state)
}

// TestRenderWithContext is TestRender with a caller-supplied context.
func TestRenderWithContext[S any](ctx context.Context, comp TestableComponent[S], state S) (*TestResult, error) {
	if err := comp.Hydrate(ctx, &state); err != nil {
		return nil, err
	}
	return renderResult(ctx, comp.Render(ctx, state))
}

// TestMount mounts p with cfg and returns the initial widget.
//
//	result, err := hxdrop.TestMount(picker, hxdrop.Config{MaxFiles: 3})
//	next, err := hxdrop.TestPick(picker, result.Token, file("a.png"))
func TestMount(p *Picker, cfg Config) (*TestResult, error) {
	widget, err := p.Mount(cfg)
	if err != nil {
		return nil, err
	}
	return renderResult(context.Background(), widget)
}

func renderResult(ctx context.Context, c templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return newTestResult(buf.String(), http.StatusOK, make(http.Header)), nil
}

// TestAction simulates a request against an HXComponent.
//
// This tests the full HTTP lifecycle including decoding, hydration,
// handler execution, and response rendering:
//
//	result, err := hxdrop.TestAction(picker, picker.Prefix()+"/remove", "POST", url.Values{
//	    "p":     {token},
//	    "index": {"0"},
//	})
func TestAction(comp HXComponent, actionURL, method string, form url.Values) (*TestResult, error) {
	return NewTestRequest(method, actionURL).WithForm(form).Execute(comp)
}

// TestGet re-renders the widget for token.
func TestGet(p *Picker, token string) (*TestResult, error) {
	return TestAction(p, p.Prefix()+routeRender+"?"+fieldState+"="+url.QueryEscape(token), http.MethodGet, nil)
}

// TestPick posts files as a native-dialog batch.
func TestPick(p *Picker, token string, files ...selection.FileDescriptor) (*TestResult, error) {
	return TestAction(p, p.Prefix()+routePick, http.MethodPost, BatchForm(token, files...))
}

// TestDrop posts files as a drop batch.
func TestDrop(p *Picker, token string, files ...selection.FileDescriptor) (*TestResult, error) {
	return TestAction(p, p.Prefix()+routeDrop, http.MethodPost, BatchForm(token, files...))
}

// TestDrag posts a dragenter or dragleave hint. event is the DOM event name.
func TestDrag(p *Picker, token, event string) (*TestResult, error) {
	return TestAction(p, p.Prefix()+"/"+event, http.MethodPost, url.Values{fieldState: {token}})
}

// TestRemove removes the file at index.
func TestRemove(p *Picker, token string, index int) (*TestResult, error) {
	return TestAction(p, p.Prefix()+routeRemove, http.MethodPost, url.Values{
		fieldState: {token},
		fieldIndex: {strconv.Itoa(index)},
	})
}

// BatchForm encodes files the way the browser script does.
func BatchForm(token string, files ...selection.FileDescriptor) url.Values {
	form := url.Values{fieldState: {token}}
	for _, f := range files {
		form.Add(fieldName, f.Name)
		form.Add(fieldType, f.MIMEType)
		form.Add(fieldSize, strconv.FormatInt(f.Size, 10))
	}
	return form
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// SelectedFiles returns the files reported by the files:selected event, or
// nil if the event was not triggered.
func (r *TestResult) SelectedFiles() selection.Selection {
	raw, ok := r.triggerData[EventFilesSelected]
	if !ok {
		return nil
	}
	var detail struct {
		Files selection.Selection `json:"files"`
	}
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil
	}
	if detail.Files == nil {
		return selection.Selection{}
	}
	return detail.Files
}

type dragDetail struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Token string `json:"p"`
}

func (r *TestResult) dragDetail() dragDetail {
	var detail dragDetail
	if raw, ok := r.triggerData[EventDragChanged]; ok {
		_ = json.Unmarshal(raw, &detail)
	}
	return detail
}

// DragState returns the hover state reported by a drag hint, or "" if the
// response carried none.
func (r *TestResult) DragState() string {
	return r.dragDetail().State
}

// SelectedNames returns the names of SelectedFiles.
func (r *TestResult) SelectedNames() []string {
	return r.SelectedFiles().Names()
}

// HasFlash checks if a flash message was set with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := hxdrop.NewTestRequest("POST", picker.Prefix()+"/pick").
//	    WithForm(hxdrop.BatchForm(token, files...)).
//	    WithContext(ctx).
//	    Execute(picker)
type TestRequestBuilder struct {
	method  string
	url     string
	form    url.Values
	headers map[string]string
	ctx     context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:  method,
		url:     url,
		headers: make(map[string]string),
		ctx:     context.Background(),
	}
}

// WithForm sets the form body.
func (b *TestRequestBuilder) WithForm(form url.Values) *TestRequestBuilder {
	b.form = form
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Request builds the *http.Request without executing it.
func (b *TestRequestBuilder) Request() *http.Request {
	body := strings.NewReader("")
	if len(b.form) > 0 {
		body = strings.NewReader(b.form.Encode())
	}

	req := httptest.NewRequest(b.method, b.url, body)
	req = req.WithContext(b.ctx)
	req.Header.Set("HX-Request", "true")
	if len(b.form) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	return req
}

// Execute executes the request against an HXComponent.
func (b *TestRequestBuilder) Execute(comp HXComponent) (*TestResult, error) {
	rec := httptest.NewRecorder()
	comp.HXServeHTTP(rec, b.Request())
	return newTestResult(rec.Body.String(), rec.Code, rec.Header()), nil
}

func newTestResult(body string, status int, headers http.Header) *TestResult {
	result := &TestResult{
		HTML:       body,
		StatusCode: status,
		Headers:    headers,
		Flashes:    parseFlashesFromHTML(body),
		Token:      parseToken(body),
	}
	if trigger := headers.Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents, result.triggerData = parseTriggerHeader(trigger)
	}
	if result.Token == "" {
		result.Token = result.dragDetail().Token
	}
	return result
}

// parseTriggerHeader parses the HX-Trigger header value into event names
// and, for the JSON form, each event's detail.
func parseTriggerHeader(trigger string) ([]string, map[string]json.RawMessage) {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil, nil
	}

	if strings.HasPrefix(trigger, "{") {
		var data map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &data); err != nil {
			return nil, nil
		}
		events := make([]string, 0, len(data))
		for k := range data {
			events = append(events, k)
		}
		return events, data
	}

	var events []string
	for _, p := range strings.Split(trigger, ",") {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events, nil
}

var (
	tokenPattern = regexp.MustCompile(`data-hxdrop-state="([^"]*)"`)
	toastPattern = regexp.MustCompile(`<div class="hxdrop-toast hxdrop-toast-([^"]+)"[^>]*>([^<]*)</div>`)
)

func parseToken(body string) string {
	m := tokenPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}

// parseFlashesFromHTML extracts flash messages from OOB swap HTML.
func parseFlashesFromHTML(body string) []Flash {
	var flashes []Flash
	for _, m := range toastPattern.FindAllStringSubmatch(body, -1) {
		flashes = append(flashes, Flash{
			Level:   m[1],
			Message: html.UnescapeString(m[2]),
		})
	}
	return flashes
}
