package hxdrop

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Hydrater is implemented by components that validate and normalise state
// decoded from a request before any handler sees it.
//
// For a Picker, hydration rejects a non-positive MaxFiles and resets an
// unknown drag state to idle. Handlers can assume hydrated state is sane.
type Hydrater[S any] interface {
	Hydrate(ctx context.Context, state *S) error
}

// Renderer is implemented by components to produce templ output.
// Render is called for GET requests and after every successful action.
// It reads state and produces HTML without side effects.
type Renderer[S any] interface {
	Render(ctx context.Context, state S) templ.Component
}

// HXComponent is implemented by anything the Registry can route to.
//
// HXPrefix returns the unique URL prefix for this component instance.
// HXServeHTTP handles all HTTP requests under that prefix.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// ErrorFunc writes an error response. See Registry.OnError.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// binder is implemented by components that need the registry's encoder and
// error handler injected at registration time.
type binder interface {
	bind(enc *Encoder, onError ErrorFunc)
}
