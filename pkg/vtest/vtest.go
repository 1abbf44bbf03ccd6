package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

// RenderToString renders a node to HTML. Render errors are returned as
// an HTML comment so they show up in assertion output.
//
// Example:
//
//	html := vtest.RenderToString(styled.Text.Render(props))
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return fmt.Sprintf("<!-- render error: %v -->", err)
	}
	return html
}

// ExpectHTML asserts that node renders to exactly want.
//
// Example:
//
//	vtest.ExpectHTML(t, styled.View.Render(vdom.Props{"p": 4}), `<div style="padding: 4px"></div>`)
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := RenderToString(node); got != want {
		t.Errorf("rendered\n  %s\nwant\n  %s", got, want)
	}
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the root element has the given tag.
//
// Example:
//
//	vtest.ExpectElement(t, styled.Pressable.Render(props), "div")
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	if node == nil || node.Kind != vdom.KindElement || node.Tag != tag {
		t.Errorf("expected <%s> root element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, styled.Image.Render(props), "src", "/logo.png")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectStyle asserts that the style a wrapped component computes for
// props renders to the given inline CSS.
//
// Example:
//
//	vtest.ExpectStyle(t, heading, vdom.Props{"size": 20}, "font-size: 20px")
func ExpectStyle[C styled.Component](t testing.TB, s *styled.Styled[C], props vdom.Props, css string) {
	t.Helper()
	if got := s.StyleFor(props).CSS(); got != css {
		t.Errorf("style for %v = %q, want %q", props, got, css)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
