package styled

import (
	"reflect"
	"testing"

	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/vdom"
)

func renderHTML(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			"text",
			Text.Render(vdom.Props{"text": "hi", "color": "red", "nope": 1}),
			`<span style="color: red">hi</span>`,
		},
		{
			"text with aliases",
			Text.WithOptions(Options{Aliases: TextAliases()}).Render(vdom.Props{"size": 14, "children": "x"}),
			`<span style="font-size: 14px">x</span>`,
		},
		{
			"view",
			View.Render(vdom.Props{"testID": "box", "className": "card", "padding": 8}),
			`<div class="card" data-testid="box" style="padding: 8px"></div>`,
		},
		{
			"pressable",
			Pressable.Render(vdom.Props{"onPress": func() {}, "text": "Go"}),
			`<div role="button" tabindex="0" data-on-click="true">Go</div>`,
		},
		{
			"pressable disabled",
			Pressable.Render(vdom.Props{"onPress": func() {}, "disabled": true, "text": "Go"}),
			`<div aria-disabled="true" role="button" tabindex="0">Go</div>`,
		},
		{
			"string handlers dropped",
			Text.Render(vdom.Props{"onclick": "alert(1)", "onPress": "alert(2)", "text": "hi"}),
			`<span>hi</span>`,
		},
		{
			"lowercase func handler",
			View.Render(vdom.Props{"onclick": func() {}}),
			`<div data-on-click="true"></div>`,
		},
		{
			"touchable",
			TouchableOpacity.Render(vdom.Props{"activeOpacity": 0.6, "disabled": true, "text": "Go"}),
			`<button data-active-opacity="0.6" disabled type="button">Go</button>`,
		},
		{
			"input",
			TextInput.Render(vdom.Props{"placeholder": "Email", "keyboardType": "email-address", "value": "a@b"}),
			`<input placeholder="Email" type="email" value="a@b">`,
		},
		{
			"password readonly",
			TextInput.Render(vdom.Props{"secureTextEntry": true, "editable": false, "maxLength": 8}),
			`<input maxlength="8" readonly type="password">`,
		},
		{
			"multiline",
			TextInput.Render(vdom.Props{"multiline": true, "defaultValue": "hello"}),
			`<textarea>hello</textarea>`,
		},
		{
			"image",
			Image.Render(vdom.Props{"source": map[string]any{"uri": "/a.png"}, "accessibilityLabel": "Logo"}),
			`<img alt="Logo" aria-label="Logo" src="/a.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderHTML(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimitiveStringStyle(t *testing.T) {
	node := renderView(vdom.Props{"style": "color: red"})
	if got := renderHTML(t, node); got != `<div style="color: red"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestPrimitiveLookup(t *testing.T) {
	want := []string{"Image", "Pressable", "Text", "TextInput", "TouchableOpacity", "View"}
	if got := PrimitiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PrimitiveNames() = %v, want %v", got, want)
	}

	p, ok := Primitive("View")
	if !ok || p != View {
		t.Error("Primitive(View) did not return View")
	}
	if _, ok := Primitive("view"); ok {
		t.Error("Primitive lookup should be case sensitive")
	}
}
