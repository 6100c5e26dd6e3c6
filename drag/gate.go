// Package drag tracks whether a pointer drag is hovering the drop zone.
//
// The gate only drives visual feedback and tells the host when a drop
// payload should be extracted; it never touches the selection itself.
package drag

// State is the hover state of the drop zone.
type State uint8

const (
	// Idle means no drag is over the drop zone. This is the initial state.
	Idle State = iota
	// Hovering means a drag is currently over the drop zone.
	Hovering
)

// String returns the lowercase state name, used for CSS hooks.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	default:
		return "unknown"
	}
}

// Event is a pointer event delivered to the drop zone.
type Event uint8

const (
	DragEnter Event = iota + 1
	DragOver
	DragLeave
	Drop
)

// String returns the DOM event name.
func (e Event) String() string {
	switch e {
	case DragEnter:
		return "dragenter"
	case DragOver:
		return "dragover"
	case DragLeave:
		return "dragleave"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// ParseEvent maps a DOM event name to an Event.
func ParseEvent(name string) (Event, bool) {
	switch name {
	case "dragenter":
		return DragEnter, true
	case "dragover":
		return DragOver, true
	case "dragleave":
		return DragLeave, true
	case "drop":
		return Drop, true
	default:
		return 0, false
	}
}

// Transition describes what a single Fire did.
type Transition struct {
	From State
	To   State
	// Extract is set when the event was a drop onto a hovering zone and the
	// host must pull the file batch out of the drop payload.
	Extract bool
}

// Changed reports whether the state moved.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Gate is the drag state machine. The zero value is an idle gate.
// Gate is a value type: Fire returns the next gate instead of mutating.
type Gate struct {
	state State
}

// NewGate returns a gate in the given state. Unknown states become Idle.
func NewGate(s State) Gate {
	if s != Hovering {
		s = Idle
	}
	return Gate{state: s}
}

// State returns the current state.
func (g Gate) State() State {
	return g.state
}

// Hovering reports whether a drag is over the drop zone.
func (g Gate) Hovering() bool {
	return g.state == Hovering
}

// Fire applies e and returns the next gate.
//
//	DragEnter, DragOver: Idle|Hovering -> Hovering
//	DragLeave:           Hovering -> Idle
//	Drop:                Hovering -> Idle, Extract
//
// Any other combination is a no-op.
func (g Gate) Fire(e Event) (Gate, Transition) {
	t := Transition{From: g.state, To: g.state}
	switch e {
	case DragEnter, DragOver:
		t.To = Hovering
	case DragLeave:
		if g.state == Hovering {
			t.To = Idle
		}
	case Drop:
		if g.state == Hovering {
			t.To = Idle
			t.Extract = true
		}
	}
	return Gate{state: t.To}, t
}
