package hxdrop

import (
	"context"
	_ "embed"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

//go:embed assets/hxdrop.js
var script string

// Script returns an inline <script> with the browser side of the picker:
// drag events, metadata forwarding, image previews and toast dismissal.
// Include it once per page, after htmx.
func Script() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<script>"+script+"</script>")
		return err
	})
}

// ScriptHandler serves the same script as a static file, for pages that
// prefer <script src>.
func ScriptHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		io.WriteString(w, script)
	})
}
