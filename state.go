package hxdrop

import (
	"fmt"

	"github.com/pthm/hxdrop/drag"
	"github.com/pthm/hxdrop/selection"
)

// DefaultMaxFiles is used when Config.MaxFiles is zero.
const DefaultMaxFiles = 1

// Config is the caller-facing widget configuration passed to Picker.Mount.
type Config struct {
	// Accept lists extension or MIME fragments such as ".png" or "image/*".
	// Empty accepts every file.
	Accept []string
	// MaxFiles caps the selection. Zero means DefaultMaxFiles; negative
	// values are rejected.
	MaxFiles int
	// Class is appended to the widget's class list.
	Class string
	// Theme is passed through as data-theme, typically "light" or "dark".
	Theme string
}

// State is the widget state carried in the request token. The browser holds
// it opaquely and sends it back with every action.
type State struct {
	ID       string                 `msgpack:"id"`
	Accept   selection.AcceptFilter `msgpack:"a,omitempty"`
	MaxFiles int                    `msgpack:"m"`
	Class    string                 `msgpack:"c,omitempty"`
	Theme    string                 `msgpack:"th,omitempty"`
	Files    selection.Selection    `msgpack:"f,omitempty"`
	Drag     drag.State             `msgpack:"d,omitempty"`
}

// Multiple reports whether the widget accepts more than one file.
func (s State) Multiple() bool {
	return s.MaxFiles > 1
}

// Full reports whether the selection has reached MaxFiles.
func (s State) Full() bool {
	return len(s.Files) >= s.MaxFiles
}

// state validates the config and returns the initial empty state for a
// widget with the given DOM id.
func (c Config) state(id string) (State, error) {
	maxFiles := c.MaxFiles
	switch {
	case maxFiles == 0:
		maxFiles = DefaultMaxFiles
	case maxFiles < 0:
		return State{}, fmt.Errorf("max files %d: %w", maxFiles, selection.ErrInvalidArgument)
	}

	var accept selection.AcceptFilter
	if len(c.Accept) > 0 {
		accept = append(selection.AcceptFilter(nil), c.Accept...)
	}

	return State{
		ID:       id,
		Accept:   accept,
		MaxFiles: maxFiles,
		Class:    c.Class,
		Theme:    c.Theme,
		Files:    selection.Selection{},
		Drag:     drag.Idle,
	}, nil
}
