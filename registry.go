package hxdrop

import (
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Registry manages picker registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]HXComponent
	logger     *zap.Logger

	// OnError is called when a request fails: a bad token, a malformed
	// batch, an out-of-range removal, or an unknown route.
	// The default maps the error with StatusCode and logs server errors.
	OnError ErrorFunc
}

// NewRegistry creates a registry whose state tokens are protected by key.
// Panics if key is empty.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxdrop: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
		logger:     zap.NewNop(),
	}
	reg.OnError = reg.defaultError
	return reg
}

// SetLogger sets the logger used by the default error handler.
func (reg *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg.mu.Lock()
	reg.logger = logger
	reg.mu.Unlock()
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers components with the registry and injects the encoder and
// error handler into them. Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hxdrop: prefix collision for %q", prefix))
		}
		reg.components[prefix] = comp

		if b, ok := comp.(binder); ok {
			b.bind(reg.encoder, reg.handleError)
		}
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Len returns the number of registered components.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// Handler returns the HTTP handler for component routes.
// Mount this at "/_c/" in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsHTMX(r) {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}

// handleError forwards to OnError, read at call time so it can be replaced
// after registration.
func (reg *Registry) handleError(w http.ResponseWriter, r *http.Request, err error) {
	reg.mu.RLock()
	onError := reg.OnError
	reg.mu.RUnlock()
	if onError == nil {
		onError = reg.defaultError
	}
	onError(w, r, err)
}

func (reg *Registry) defaultError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)

	reg.mu.RLock()
	logger := reg.logger
	reg.mu.RUnlock()

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("picker request failed", fields...)
	} else {
		logger.Debug("picker request rejected", fields...)
	}

	http.Error(w, http.StatusText(status), status)
}
