package hxdrop

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Flash levels for toast notices.
const (
	FlashInfo    = "info"
	FlashWarning = "warning"
)

// ToastContainerID is the DOM id flash notices are appended to.
const ToastContainerID = "hxdrop-toasts"

// Flash is a one-time notice shown as a toast, such as "Removed a.png".
//
// Files dropped by the accept filter are never flashed. Files that pass the
// filter but do not fit under MaxFiles get a warning.
type Flash struct {
	Level   string
	Message string
}

// FlashesOOB renders flashes as an out-of-band swap that appends to the
// toast container. The embedded script removes each toast after the delay in
// data-auto-dismiss (milliseconds).
func FlashesOOB(flashes []Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(flashes) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div id="`+ToastContainerID+`" hx-swap-oob="`+SwapBeforeEnd.String()+`">`); err != nil {
			return err
		}
		for _, f := range flashes {
			_, err := io.WriteString(w, `<div class="hxdrop-toast hxdrop-toast-`+templ.EscapeString(f.Level)+
				`" data-auto-dismiss="3000">`+templ.EscapeString(f.Message)+`</div>`)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ToastContainer returns the element flash notices are appended to.
//
// Add it once to the page layout, typically near the end of <body>:
//
//	@hxdrop.ToastContainer()
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+ToastContainerID+`" class="hxdrop-toasts"></div>`)
		return err
	})
}
