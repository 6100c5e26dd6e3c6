package hxdropecho

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop"
	"github.com/pthm/hxdrop/selection"
)

func TestMount(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithKey(make([]byte, 32)), WithLogger(zap.NewNop()))
	require.NotNil(t, reg)
}

func TestMountRandomKey(t *testing.T) {
	e := echo.New()
	require.NotNil(t, Mount(e))
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("")
	require.NotNil(t, MountGroup(g))
}

func TestCSRFProtection(t *testing.T) {
	e := echo.New()
	Mount(e)

	req := httptest.NewRequest(http.MethodPost, "/_c/test/pick", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPickThroughEcho(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithKey([]byte("test-key")))
	p := hxdrop.New("avatar")
	reg.Add(p)

	mounted, err := hxdrop.TestMount(p, hxdrop.Config{Accept: []string{"image/*"}, MaxFiles: 2})
	require.NoError(t, err)

	form := hxdrop.BatchForm(mounted.Token,
		selection.FileDescriptor{Name: "a.png", MIMEType: "image/png", Size: 10},
		selection.FileDescriptor{Name: "notes.txt", MIMEType: "text/plain", Size: 5},
	)
	req := httptest.NewRequest(http.MethodPost, p.Prefix()+"/pick", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("HX-Trigger"), `"name":"a.png"`)
	assert.NotContains(t, rec.Header().Get("HX-Trigger"), "notes.txt")
	assert.Contains(t, rec.Body.String(), "a.png")
}

func TestRenderThroughEcho(t *testing.T) {
	e := echo.New()
	reg := Mount(e)
	p := hxdrop.New("avatar")
	reg.Add(p)

	mounted, err := hxdrop.TestMount(p, hxdrop.Config{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, p.Prefix()+"/?p="+url.QueryEscape(mounted.Token), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-hxdrop-state")
}

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})
	require.NoError(t, Render(c, comp))
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}
