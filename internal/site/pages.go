package site

import "github.com/a-h/templ"

type navLink struct {
	Href, Label string
}

var navLinks = []navLink{
	{"/", "Demos"},
	{"/docs", "Docs"},
}

func pageTitle(title string) string {
	return title + " · hxdrop"
}

// toggleLabel names the theme the toggle switches to.
func toggleLabel(theme string) string {
	if theme == ThemeDark {
		return "Light"
	}
	return "Dark"
}

// mountedDemo is a demo with its freshly mounted widget.
type mountedDemo struct {
	Demo
	Widget templ.Component
}

// prop is a row of the docs props table.
type prop struct {
	Name, Type, Default, Description string
}

var props = []prop{
	{"Accept", "[]string", "nil", `Extension or MIME fragments such as ".png" or "image/*". A trailing * is ignored. Empty accepts everything.`},
	{"MaxFiles", "int", "1", "Maximum selection size. 1 replaces on every pick; larger values append and keep the oldest files."},
	{"Class", "string", `""`, "Extra CSS classes on the widget."},
	{"Theme", "string", `""`, "Passed through as data-theme."},
}

const callbackSnippet = `picker := hxdrop.New("avatar",
    hxdrop.OnFilesSelected(func(ctx context.Context, ev hxdrop.SelectionEvent) {
        log.Printf("%s: %v", ev.WidgetID, ev.Files.Names())
    }),
)
reg.Add(picker)`

const eventSnippet = `document.body.addEventListener("files:selected", (e) => {
  console.log(e.detail.id, e.detail.files)
})`
