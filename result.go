package hxdrop

// Result is returned from picker action handlers to control rendering and
// side effects.
//
// Result is a fluent builder: handlers describe the outcome (new state,
// flash notices, events, headers) and the picker applies it after the
// handler returns.
//
//	// Success - re-render with the updated state
//	return OK(state)
//
//	// Success with a notice and an event for page scripts
//	return OK(state).Flash(FlashInfo, "Removed a.png").Trigger(EventFilesSelected, data)
//
//	// Failure - handed to the registry's OnError
//	return Err(state, err)
//
//	// Nothing to re-render
//	return Skip().Status(http.StatusNoContent)
type Result struct {
	state       State
	err         error
	flashes     []Flash
	trigger     string
	triggerData map[string]any
	headers     map[string]string
	status      int
	skip        bool
}

// OK creates a success result that will re-render the widget with state.
func OK(state State) Result {
	return Result{state: state}
}

// Err creates an error result that is passed to the OnError handler.
// The state is kept so a custom handler can render a fallback view.
func Err(state State, err error) Result {
	return Result{state: state, err: err}
}

// Skip creates a result that renders nothing. Headers and status are still
// written.
func Skip() Result {
	return Result{skip: true}
}

// Flash adds a toast notice to the result. Notices are rendered as
// out-of-band swaps into the toast container.
func (r Result) Flash(level, message string) Result {
	n := len(r.flashes)
	r.flashes = append(r.flashes[:n:n], Flash{Level: level, Message: message})
	return r
}

// Trigger emits an event via the HX-Trigger header. When data is given it
// becomes the event detail in the browser.
func (r Result) Trigger(event string, data ...map[string]any) Result {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// Header sets a custom response header.
func (r Result) Header(key, value string) Result {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status sets the HTTP status code. Zero means 200.
func (r Result) Status(code int) Result {
	r.status = code
	return r
}

// GetState returns the state from the result.
func (r Result) GetState() State {
	return r.state
}

// GetErr returns the error from the result.
func (r Result) GetErr() error {
	return r.err
}

// GetFlashes returns the flash notices.
func (r Result) GetFlashes() []Flash {
	return r.flashes
}

// GetTrigger returns the trigger event name.
func (r Result) GetTrigger() string {
	return r.trigger
}

// GetTriggerData returns the trigger event data.
func (r Result) GetTriggerData() map[string]any {
	return r.triggerData
}

// GetHeaders returns the response headers.
func (r Result) GetHeaders() map[string]string {
	return r.headers
}

// GetStatus returns the HTTP status code (0 means not set, use default 200).
func (r Result) GetStatus() int {
	return r.status
}

// ShouldSkip returns whether rendering is suppressed.
func (r Result) ShouldSkip() bool {
	return r.skip
}
