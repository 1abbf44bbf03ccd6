package showcase

import (
	"embed"

	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

//go:embed assets
var assets embed.FS

// Stylesheet returns the gallery stylesheet.
func Stylesheet() string {
	data, _ := assets.ReadFile("assets/gallery.css")
	return string(data)
}

// LiveScript returns the playground script that talks to the preview
// server's /ws endpoint.
func LiveScript() string {
	data, _ := assets.ReadFile("assets/live.js")
	return string(data)
}

// PageOptions configures the gallery page.
type PageOptions struct {
	// Title defaults to "styled".
	Title string

	// Live adds the websocket playground. Only meaningful when the page
	// is served by the preview server.
	Live bool
}

// Page builds the gallery document for every component in r.
func Page(r *Registry, opts PageOptions) render.PageData {
	title := opts.Title
	if title == "" {
		title = "styled"
	}

	page := render.PageData{
		Title:  title,
		Meta:   []render.MetaTag{{Name: "viewport", Content: "width=device-width, initial-scale=1"}},
		Styles: []string{Stylesheet()},
		Body:   Gallery(r, title, opts.Live),
	}
	if opts.Live {
		page.Scripts = []render.ScriptTag{{Inline: LiveScript()}}
	}
	return page
}

// Gallery builds the gallery body. It is made of the primitives it shows.
func Gallery(r *Registry, title string, live bool) *vdom.VNode {
	entries := r.Entries()

	return vdom.Main(vdom.Class("gallery"),
		vdom.Header(vdom.H1(styled.Text.Render(vdom.Props{"text": title, "fontWeight": "700"}))),
		vdom.Nav(vdom.Class("gallery-nav"), vdom.Ul(vdom.Range(entries, func(e *Entry, _ int) *vdom.VNode {
			return vdom.Li(vdom.A(vdom.Href("#component-"+e.Name), vdom.TitleAttr(e.Base), e.Name))
		}))),
		vdom.If(live, playground(entries)),
		vdom.Range(entries, func(e *Entry, _ int) *vdom.VNode {
			return entrySection(e)
		}),
		vdom.Footer(vdom.Class("gallery-footer"), vdom.Textf("%d components", len(entries))),
	)
}

func entrySection(e *Entry) *vdom.VNode {
	children := []*vdom.VNode{
		vdom.H2(e.Name, " ", styled.Text.Render(vdom.Props{"class": "entry-base", "text": e.Base})),
	}
	for _, ex := range e.Examples {
		children = append(children, exampleView(e, ex))
	}
	return vdom.Article(vdom.Class("entry"), vdom.ID("component-"+e.Name), vdom.Data("base", e.Base), children)
}

func exampleView(e *Entry, ex Example) *vdom.VNode {
	style := e.Component.StyleFor(ex.Props)
	return styled.View.Render(vdom.Props{
		"class":          "example",
		"data-component": e.Name,
		"data-example":   ex.Name,
		"children": []*vdom.VNode{
			styled.Text.Render(vdom.Props{"class": "example-name", "text": ex.Name}),
			e.Component.Render(ex.Props),
			vdom.Pre(vdom.Class("example-css"), vdom.Code(style.CSS())),
		},
	})
}

func playground(entries []*Entry) *vdom.VNode {
	first := ""
	if len(entries) > 0 {
		first = entries[0].Name
	}
	return styled.View.Render(vdom.Props{
		"class": "playground",
		"children": []*vdom.VNode{
			styled.Text.Render(vdom.Props{"class": "example-name", "text": "Playground"}),
			styled.TextInput.Render(vdom.Props{"id": "playground-component", "value": first, "placeholder": "Component"}),
			styled.TextInput.Render(vdom.Props{"id": "playground-props", "multiline": true, "defaultValue": "{}"}),
			styled.View.Render(vdom.Props{"id": "playground-output"}),
			vdom.Pre(vdom.ID("playground-css"), vdom.Class("example-css")),
		},
	})
}
