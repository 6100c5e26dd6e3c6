// Package hxdrop provides a server-rendered drag-and-drop file picker for Go
// applications built with Templ and HTMX.
//
// A Picker lets a user choose files by dropping them on a zone or through the
// native file dialog, keeps only the files matching an accept list, caps the
// selection at a maximum count, and reports every new selection to a Go
// callback and to the browser as an HTMX event.
//
// # State
//
// The browser keeps no widget state. The current selection, the drag state
// and the widget configuration travel with each request as a token:
//   - Signed (default): msgpack + HMAC, visible but tamper-proof
//   - Encrypted: AES-GCM, opaque to clients (use .Sensitive())
//
// Tokens are bound to the picker that minted them. File contents never leave
// the browser; the embedded script only forwards name, MIME type and size.
//
// # Usage
//
//	reg := hxdrop.NewRegistry(key)
//	avatar := hxdrop.New("avatar",
//	    hxdrop.OnFilesSelected(func(ctx context.Context, ev hxdrop.SelectionEvent) {
//	        log.Printf("%s now holds %v", ev.WidgetID, ev.Files.Names())
//	    }),
//	)
//	reg.Add(avatar)
//	http.Handle("/_c/", reg.Handler())
//
// In a page template:
//
//	widget, err := avatar.Mount(hxdrop.Config{Accept: []string{"image/*"}, MaxFiles: 1})
//	...
//	@widget
//	@hxdrop.Script()
//
// # Selection rules
//
// The rules live in package selection: with MaxFiles == 1 a new batch
// replaces the selection; otherwise new files are appended and the list is
// cut to the first MaxFiles entries. Package drag holds the hover state
// machine that decides when a drop payload is extracted.
//
// # Events
//
// After every selection change the response carries
//
//	HX-Trigger: {"files:selected": {"id": "<widget id>", "files": [...]}}
//
// so page scripts can react with hx-trigger="files:selected from:body" or an
// htmx event listener.
package hxdrop
