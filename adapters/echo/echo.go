// Package hxdropecho provides Echo framework integration for hxdrop pickers.
//
// Mount pickers onto an Echo instance or group:
//
//	e := echo.New()
//	reg := hxdropecho.Mount(e, hxdropecho.WithKey(key))
//	reg.Add(avatar)
//
// Or mount on a group with middleware:
//
//	g := e.Group("", authMiddleware)
//	reg := hxdropecho.MountGroup(g)
//	reg.Add(avatar)
package hxdropecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop"
)

// DefaultPath is where picker routes live. Picker prefixes always start
// with it.
const DefaultPath = "/_c/"

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key    []byte
	path   string
	logger *zap.Logger
}

// WithKey sets the state token key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated, which invalidates every
// rendered widget on restart.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the route pattern prefix. Defaults to DefaultPath.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger sets the logger for the registry's default error handler.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
//
//	e := echo.New()
//	reg := hxdropecho.Mount(e)
//	reg.Add(avatar)
func Mount(e *echo.Echo, opts ...Option) *hxdrop.Registry {
	reg, path := newRegistry(opts)
	e.Any(path+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and mounts its handler on an Echo group, so
// picker routes share the group's middleware.
func MountGroup(g *echo.Group, opts ...Option) *hxdrop.Registry {
	reg, path := newRegistry(opts)
	g.Any(path+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(opts []Option) (*hxdrop.Registry, string) {
	o := &options{path: DefaultPath}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxdropecho: failed to generate random key: %v", err))
		}
	}

	reg := hxdrop.NewRegistry(key)
	if o.logger != nil {
		reg.SetLogger(o.logger)
	}
	return reg, o.path
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxdropecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
