package hxdrop

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize/english"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop/drag"
	"github.com/pthm/hxdrop/selection"
)

// Picker routes, relative to the prefix.
const (
	routeRender    = "/"
	routePick      = "/pick"
	routeDragEnter = "/dragenter"
	routeDragLeave = "/dragleave"
	routeDrop      = "/drop"
	routeRemove    = "/remove"
)

// HXServeHTTP implements HXComponent.
func (p *Picker) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	if p.encoder == nil {
		p.fail(w, r, fmt.Errorf("%s: %w", p.name, ErrNotRegistered))
		return
	}

	token := r.FormValue(fieldState)
	if token == "" {
		p.fail(w, r, fmt.Errorf("missing state: %w", ErrInvalidFormat))
		return
	}

	var state State
	if err := p.encoder.Decode(p.prefix, token, p.sensitive, &state); err != nil {
		p.fail(w, r, wrapEncodingError(err))
		return
	}
	if err := p.Hydrate(r.Context(), &state); err != nil {
		p.fail(w, r, err)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, p.prefix)
	if path == "" {
		path = routeRender
	}

	var result Result
	switch r.Method + " " + path {
	case "GET " + routeRender:
		result = OK(state)
	case "POST " + routePick:
		result = p.handlePick(r, state)
	case "POST " + routeDragEnter, "POST " + routeDragLeave:
		result = p.handleDrag(state, path)
	case "POST " + routeDrop:
		result = p.handleDrop(r, state)
	case "POST " + routeRemove:
		result = p.handleRemove(r, state)
	default:
		result = Err(state, fmt.Errorf("%s %s: %w", r.Method, path, ErrNotFound))
	}

	p.handleResult(w, r, result)
}

// handlePick reconciles a batch chosen through the native file dialog.
func (p *Picker) handlePick(r *http.Request, s State) Result {
	batch, err := parseBatch(r)
	if err != nil {
		return Err(s, err)
	}
	return p.applyBatch(r.Context(), s, batch)
}

// handleDrag feeds the hover event named by path to the drag gate. The widget
// is never re-rendered: a change is reported through EventDragChanged with
// the new token, and an unchanged state answers 204.
func (p *Picker) handleDrag(s State, path string) Result {
	e, ok := drag.ParseEvent(strings.TrimPrefix(path, "/"))
	if !ok {
		return Err(s, fmt.Errorf("drag event %s: %w", path, ErrNotFound))
	}

	next, t := drag.NewGate(s.Drag).Fire(e)
	if !t.Changed() {
		return Skip().Status(http.StatusNoContent)
	}
	s.Drag = next.State()

	token, err := p.encoder.Encode(p.prefix, s, p.sensitive)
	if err != nil {
		return Err(s, err)
	}
	return Skip().Trigger(EventDragChanged, dragEventData(s, token))
}

// handleDrop completes a drag. Browsers always deliver dragover before drop,
// so it is replayed here in case the dragenter round trip never arrived.
func (p *Picker) handleDrop(r *http.Request, s State) Result {
	g, _ := drag.NewGate(s.Drag).Fire(drag.DragOver)
	g, t := g.Fire(drag.Drop)
	s.Drag = g.State()
	if !t.Extract {
		return OK(s)
	}

	batch, err := parseBatch(r)
	if err != nil {
		return Err(s, err)
	}
	return p.applyBatch(r.Context(), s, batch)
}

// handleRemove drops one file from the selection by index.
func (p *Picker) handleRemove(r *http.Request, s State) Result {
	index, err := parseIndex(r)
	if err != nil {
		return Err(s, err)
	}

	removed := ""
	if index >= 0 && index < len(s.Files) {
		removed = s.Files[index].Name
	}
	files, err := selection.RemoveAt(s.Files, index)
	if err != nil {
		return Err(s, err)
	}
	s.Files = files

	p.logger.Debug("file removed",
		zap.String("widget", s.ID),
		zap.String("file", removed),
		zap.Int("selected", len(files)),
	)
	p.notify(r.Context(), SelectionEvent{WidgetID: s.ID, Files: files})

	return OK(s).
		Flash(FlashInfo, "Removed "+removed).
		Trigger(EventFilesSelected, selectedEventData(s))
}

// applyBatch reconciles batch into the selection and reports the result.
func (p *Picker) applyBatch(ctx context.Context, s State, batch []selection.FileDescriptor) Result {
	out, err := selection.Reconcile(s.Files, batch, s.Accept, s.MaxFiles)
	if err != nil {
		return Err(s, err)
	}

	// Accepted files that did not fit. Single mode replaces, so only the
	// batch counts there.
	offered := len(out.Accepted)
	if s.Multiple() {
		offered += len(s.Files)
	}
	overflow := offered - len(out.Selection)
	s.Files = out.Selection

	if len(out.Rejected) > 0 {
		p.logger.Debug("files rejected by accept filter",
			zap.String("widget", s.ID),
			zap.Stringer("accept", s.Accept),
			zap.Strings("files", selection.Selection(out.Rejected).Names()),
		)
	}
	p.logger.Debug("selection reconciled",
		zap.String("widget", s.ID),
		zap.Int("offered", len(batch)),
		zap.Int("accepted", len(out.Accepted)),
		zap.Int("selected", len(out.Selection)),
	)

	p.notify(ctx, SelectionEvent{
		WidgetID: s.ID,
		Files:    out.Selection,
		Rejected: out.Rejected,
	})

	result := OK(s).Trigger(EventFilesSelected, selectedEventData(s))
	if overflow > 0 {
		result = result.Flash(FlashWarning, fmt.Sprintf("Selection full, %s not added", english.Plural(overflow, "file", "")))
	}
	return result
}

// notify invokes the selection callback, if any, with its own copy of the
// files.
func (p *Picker) notify(ctx context.Context, ev SelectionEvent) {
	if p.onSelect == nil {
		return
	}
	ev.Files = ev.Files.Clone()
	p.onSelect(ctx, ev)
}

// handleResult writes result to the response.
func (p *Picker) handleResult(w http.ResponseWriter, r *http.Request, result Result) {
	if err := result.GetErr(); err != nil {
		p.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if !result.ShouldSkip() {
		if err := p.Render(r.Context(), result.GetState()).Render(r.Context(), &buf); err != nil {
			p.fail(w, r, err)
			return
		}
		if err := FlashesOOB(result.GetFlashes()).Render(r.Context(), &buf); err != nil {
			p.fail(w, r, err)
			return
		}
	}

	for k, v := range result.GetHeaders() {
		w.Header().Set(k, v)
	}
	if t := BuildTriggerHeader(result.GetTrigger(), result.GetTriggerData()); t != "" {
		w.Header().Set("HX-Trigger", t)
	}
	if buf.Len() > 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if status := result.GetStatus(); status != 0 {
		w.WriteHeader(status)
	}
	if buf.Len() > 0 {
		if _, err := buf.WriteTo(w); err != nil {
			p.logger.Warn("write response", zap.Error(err))
		}
	}
}

// fail hands err to the registry's error handler.
func (p *Picker) fail(w http.ResponseWriter, r *http.Request, err error) {
	if p.onError != nil {
		p.onError(w, r, err)
		return
	}
	http.Error(w, http.StatusText(StatusCode(err)), StatusCode(err))
}
