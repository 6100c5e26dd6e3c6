package hxdrop

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop/drag"
	"github.com/pthm/hxdrop/selection"
)

// Picker is a drag-and-drop file picker component.
//
// A Picker is created once at startup, registered with a Registry, and
// mounted any number of times in pages. It holds no per-user state: the
// selection, the drag state and the widget configuration travel with every
// request as a signed (or, for Sensitive pickers, encrypted) token.
//
//	avatar := hxdrop.New("avatar",
//	    hxdrop.WithLogger(logger),
//	    hxdrop.OnFilesSelected(func(ctx context.Context, ev hxdrop.SelectionEvent) {
//	        log.Println(ev.Files.Names())
//	    }),
//	)
//	reg.Add(avatar)
//
//	widget, err := avatar.Mount(hxdrop.Config{Accept: []string{"image/*"}, MaxFiles: 3})
//
// Each picker receives a deterministic URL prefix based on its name and
// source location (file:line of the New call), so two pickers with the same
// name in different places never collide.
type Picker struct {
	name      string
	prefix    string
	sensitive bool
	encoder   *Encoder
	onError   ErrorFunc
	onSelect  SelectFunc
	logger    *zap.Logger
	newID     func() string
}

// Option configures a Picker.
type Option func(*Picker)

// WithLogger sets the logger used for selection and rejection diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// OnFilesSelected sets the callback invoked after every reconciliation or
// removal with the full resulting selection.
func OnFilesSelected(fn SelectFunc) Option {
	return func(p *Picker) {
		p.onSelect = fn
	}
}

// WithIDFunc overrides how widget DOM ids are allocated at mount.
// The default is a random UUID.
func WithIDFunc(fn func() string) Option {
	return func(p *Picker) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// New creates a picker with the given name.
//
// By default, state tokens are signed (readable but tamper-proof via HMAC).
// Call Sensitive to encrypt them instead.
func New(name string, opts ...Option) *Picker {
	p := &Picker{
		name:   name,
		prefix: "/_c/" + name + "-" + componentHash(name, 1),
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.String("picker", name))
	return p
}

// Sensitive switches state tokens from signed to AES-GCM encrypted.
//
// File names can be personal data; use this when they should be opaque to
// the client and not just tamper-proof.
func (p *Picker) Sensitive() *Picker {
	p.sensitive = true
	return p
}

// Name returns the picker's name.
func (p *Picker) Name() string {
	return p.name
}

// Prefix returns the picker's URL prefix.
// All picker routes are mounted under this prefix.
func (p *Picker) Prefix() string {
	return p.prefix
}

// IsSensitive returns whether the picker encrypts its state.
func (p *Picker) IsSensitive() bool {
	return p.sensitive
}

// HXPrefix implements HXComponent.
func (p *Picker) HXPrefix() string {
	return p.prefix
}

// Mount validates cfg and returns the initial, empty widget.
//
// Each call allocates a new DOM id, so one Picker can be mounted several
// times on a page. The picker must be registered before Mount is rendered.
func (p *Picker) Mount(cfg Config) (templ.Component, error) {
	state, err := cfg.state(p.newID())
	if err != nil {
		return nil, err
	}
	return p.Render(context.Background(), state), nil
}

// Hydrate normalises decoded state before any handler sees it.
func (p *Picker) Hydrate(ctx context.Context, s *State) error {
	if s.MaxFiles < 1 {
		return fmt.Errorf("max files %d: %w", s.MaxFiles, selection.ErrInvalidArgument)
	}
	s.Drag = drag.NewGate(s.Drag).State()
	if s.Files == nil {
		s.Files = selection.Selection{}
	}
	return nil
}

// Render returns the widget markup for s.
func (p *Picker) Render(ctx context.Context, s State) templ.Component {
	if p.encoder == nil {
		return errorComponent(fmt.Errorf("%s: %w", p.name, ErrNotRegistered))
	}
	token, err := p.encoder.Encode(p.prefix, s, p.sensitive)
	if err != nil {
		return errorComponent(fmt.Errorf("encode %s state: %w", p.name, err))
	}
	return widget(p.prefix, token, s)
}

// bind implements binder.
func (p *Picker) bind(enc *Encoder, onError ErrorFunc) {
	p.encoder = enc
	p.onError = onError
}

// componentHash generates a deterministic hash based on the name and the
// caller's source location.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Base filename only, so prefixes survive a moved checkout.
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}

var (
	_ HXComponent     = (*Picker)(nil)
	_ Hydrater[State] = (*Picker)(nil)
	_ Renderer[State] = (*Picker)(nil)
	_ binder          = (*Picker)(nil)
)
