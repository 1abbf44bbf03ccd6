// Package render converts VNode trees into HTML.
//
// It handles:
//
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, img, etc.)
//   - Boolean attribute handling (disabled, readonly, etc.)
//   - Style objects in the style attribute, rendered through package css
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Gallery",
//	    Body:  bodyNode,
//	})
//
// Event handlers are never serialized. An element with an onclick handler
// gets a data-on-click="true" marker so client code can find it.
package render
