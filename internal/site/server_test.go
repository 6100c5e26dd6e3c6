package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pthm/hxdrop"
	"github.com/pthm/hxdrop/internal/config"
	"github.com/pthm/hxdrop/internal/logger"
	"github.com/pthm/hxdrop/selection"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0", Key: "test-key"},
		Log:    logger.Config{Level: "debug", Format: "console"},
		Site:   config.SiteConfig{Theme: ThemeLight},
	}
	s, err := New(cfg, zap.New(core), "test")
	require.NoError(t, err)
	return s, logs
}

func get(t *testing.T, s *Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, `class="active"`)
	assert.Contains(t, body, `id="hxdrop-toasts"`)
	for _, d := range s.demos {
		assert.Contains(t, body, `id="demo-`+d.Slug+`"`)
		assert.Contains(t, body, "demo-"+d.Slug)
	}
	assert.Equal(t, len(s.demos), strings.Count(body, "data-hxdrop-state="))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestIndexThemeCookie(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/", &http.Cookie{Name: ThemeCookie, Value: ThemeDark})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en" data-theme="dark">`)
	// Passed through to every widget unchanged.
	assert.Equal(t, len(s.demos), strings.Count(body, `data-hxdrop data-theme="dark"`))
}

func TestIndexUnknownThemeCookie(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/", &http.Cookie{Name: ThemeCookie, Value: "neon"})
	assert.Contains(t, rec.Body.String(), `data-theme="light"`)
}

func TestThemeToggle(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "/docs")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/docs", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, ThemeCookie, cookies[0].Name)
	assert.Equal(t, ThemeDark, cookies[0].Value)

	req = httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: ThemeDark})
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, ThemeLight, rec.Result().Cookies()[0].Value)
}

func TestThemeToggleStaysOnSite(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		referer string
		want    string
	}{
		{"http://example.com/docs?tab=events#top", "/docs"},
		{"https://evil.example", "/"},
		{"https://evil.example//evil.example/x", "/"},
		{"//evil.example/x", "/x"},
		{"/\\evil.example", "/"},
		{"javascript:alert(1)", "/"},
		{"%zz", "/"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		req.Header.Set("Referer", tt.referer)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, tt.referer)
		assert.Equal(t, tt.want, rec.Header().Get("Location"), tt.referer)
	}
}

func TestDocs(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/docs")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, p := range props {
		assert.Contains(t, body, "<code>"+p.Name+"</code>")
	}
	assert.Contains(t, body, hxdrop.EventFilesSelected)
	assert.Contains(t, body, "data-copy")
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test","demos":3}`, rec.Body.String())
}

func TestStatic(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/static/site.css", "/static/site.js", "/static/hxdrop.js"} {
		rec := get(t, s, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotZero(t, rec.Body.Len(), path)
	}
	assert.Equal(t, http.StatusNotFound, get(t, s, "/static/missing.css").Code)
}

func TestPickLogsSelection(t *testing.T) {
	s, logs := newTestServer(t)
	p := s.pickers["images"]
	require.NotNil(t, p)

	mounted, err := hxdrop.TestMount(p, s.demos[1].Config(ThemeLight))
	require.NoError(t, err)

	form := hxdrop.BatchForm(mounted.Token,
		selection.FileDescriptor{Name: "cat.jpg", MIMEType: "image/jpeg", Size: 2048},
		selection.FileDescriptor{Name: "notes.txt", MIMEType: "text/plain", Size: 12},
	)
	req := httptest.NewRequest(http.MethodPost, p.Prefix()+"/pick", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	entries := logs.FilterMessage("files selected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, []interface{}{"cat.jpg"}, fields["files"])
	assert.Equal(t, int64(2048), fields["bytes"])
	assert.Equal(t, int64(1), fields["rejected"])

	assert.NotEmpty(t, logs.FilterMessage("files rejected by accept filter").All())
	assert.NotEmpty(t, logs.FilterMessage("request").All())
}
