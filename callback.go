package hxdrop

import (
	"context"

	"github.com/pthm/hxdrop/selection"
)

// EventFilesSelected is the HX-Trigger event fired after every selection
// change. Its detail is {"id": widget id, "files": [{name, type, size}...]}.
const EventFilesSelected = "files:selected"

// EventDragChanged is the HX-Trigger event fired when a drag hint moves the
// hover state. Its detail is {"id": widget id, "state": "idle"|"hovering",
// "p": new state token}.
const EventDragChanged = "hxdrop:drag"

// SelectionEvent is passed to a SelectFunc after a reconciliation or a
// removal. Files is always the full selection, never a delta.
type SelectionEvent struct {
	// WidgetID is the DOM id of the widget instance.
	WidgetID string
	// Files is the selection after the change.
	Files selection.Selection
	// Rejected lists files from the offered batch that the accept filter
	// excluded. Empty for removals.
	Rejected []selection.FileDescriptor
}

// SelectFunc is the Go-side onFilesSelected callback. It runs synchronously
// inside the request, before the widget re-renders.
type SelectFunc func(ctx context.Context, ev SelectionEvent)

// selectedEventData builds the HX-Trigger detail for EventFilesSelected.
func selectedEventData(s State) map[string]any {
	files := s.Files
	if files == nil {
		files = selection.Selection{}
	}
	return map[string]any{
		"id":    s.ID,
		"files": files,
	}
}

// dragEventData builds the HX-Trigger detail for EventDragChanged.
func dragEventData(s State, token string) map[string]any {
	return map[string]any{
		"id":       s.ID,
		"state":    s.Drag.String(),
		fieldState: token,
	}
}
