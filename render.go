package hxdrop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxdrop/drag"
	"github.com/pthm/hxdrop/selection"
)

//go:generate templ generate

// hoverPrompt is shown while a drag hovers the drop zone.
const hoverPrompt = "Release to add"

func widgetClass(s State) string {
	class := "hxdrop hxdrop--" + s.Drag.String()
	if s.Full() {
		class += " hxdrop--full"
	}
	if s.Class != "" {
		class += " " + s.Class
	}
	return class
}

func prompt(s State) string {
	if s.Drag == drag.Hovering {
		return hoverPrompt
	}
	return idlePrompt(s)
}

func idlePrompt(s State) string {
	if s.Multiple() {
		return "Drop files here or click to browse"
	}
	return "Drop a file here or click to browse"
}

func hint(s State) string {
	var parts []string
	if len(s.Accept) > 0 {
		parts = append(parts, "Accepts "+strings.Join(s.Accept, ", "))
	}
	if s.Multiple() {
		parts = append(parts, fmt.Sprintf("%d of %d selected", len(s.Files), s.MaxFiles))
	}
	return strings.Join(parts, " · ")
}

func isImage(fd selection.FileDescriptor) bool {
	return strings.HasPrefix(fd.MIMEType, "image/")
}

// removeAttrs wires the remove button of the file at index i.
func removeAttrs(prefix, token string, i int) templ.Attributes {
	return WireAttrs(prefix+routeRemove, http.MethodPost, token, map[string]string{
		fieldIndex: strconv.Itoa(i),
	})
}

// errorComponent fails rendering with err.
func errorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return err
	})
}
