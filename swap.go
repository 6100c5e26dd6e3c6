package hxdrop

// SwapMode is an hx-swap strategy.
//
// See https://htmx.org/attributes/hx-swap/.
type SwapMode string

const (
	// SwapOuter replaces the whole widget element. Every picker action
	// responds with the full widget, so this is what the picker markup uses.
	SwapOuter SwapMode = "outerHTML"

	// SwapBeforeEnd appends to the target's contents. Flash toasts use it.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapNone leaves the DOM untouched. Drag hints use it so the widget is
	// never replaced while a drag is over it; the script applies the hover
	// state from the EventDragChanged detail.
	SwapNone SwapMode = "none"
)

// String returns the hx-swap attribute value.
func (s SwapMode) String() string {
	return string(s)
}
