package css

import (
	"reflect"
	"testing"
)

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"color":                   "color",
		"marginTop":               "margin-top",
		"borderBottomLeftRadius":  "border-bottom-left-radius",
		"textDecorationLine":      "text-decoration-line",
		"":                        "",
		"Width":                   "width",
	}
	for in, want := range tests {
		if got := Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInline(t *testing.T) {
	tests := []struct {
		name  string
		style map[string]any
		want  string
	}{
		{"empty", nil, ""},
		{"units", map[string]any{"marginTop": 12, "width": "50%", "opacity": 0.5}, "margin-top: 12px; opacity: 0.5; width: 50%"},
		{"zero has no unit", map[string]any{"padding": 0}, "padding: 0"},
		{"unitless", map[string]any{"flex": 1, "zIndex": int64(3), "fontWeight": 700}, "flex: 1; font-weight: 700; z-index: 3"},
		{"float", map[string]any{"letterSpacing": 1.5}, "letter-spacing: 1.5px"},
		{"horizontal", map[string]any{"paddingHorizontal": 8}, "padding-left: 8px; padding-right: 8px"},
		{"specific side wins", map[string]any{"marginVertical": 4, "marginTop": 10}, "margin-bottom: 4px; margin-top: 10px"},
		{"logical", map[string]any{"marginStart": 2, "end": 0, "borderTopStartRadius": 3}, "border-start-start-radius: 3px; inset-inline-end: 0; margin-inline-start: 2px"},
		{"skipped", map[string]any{"elevation": 4, "tintColor": "red", "overlayColor": "blue"}, ""},
		{"resize", map[string]any{"resizeMode": "stretch"}, "object-fit: fill"},
		{"writing direction", map[string]any{"writingDirection": "rtl"}, "direction: rtl"},
		{"writing direction auto", map[string]any{"writingDirection": "auto"}, ""},
		{"font variant", map[string]any{"fontVariant": []string{"small-caps", "tabular-nums"}}, "font-variant: small-caps tabular-nums"},
		{"unsafe", map[string]any{"color": "red; background: url(x)", "margin": "1px"}, "margin: 1px"},
		{"unsupported types", map[string]any{"color": true, "margin": struct{}{}, "padding": nil}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.style); got != tt.want {
				t.Errorf("Inline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoxShadow(t *testing.T) {
	tests := []struct {
		name  string
		style map[string]any
		want  string
	}{
		{
			"struct offset",
			map[string]any{"shadowColor": "#000", "shadowOffset": Offset{Width: 0, Height: 2}, "shadowRadius": 4},
			"box-shadow: 0 2px 4px #000",
		},
		{
			"map offset with opacity",
			map[string]any{"shadowColor": "#ff8800", "shadowOffset": map[string]any{"width": 1, "height": 1}, "shadowOpacity": 0.25},
			"box-shadow: 1px 1px 0 rgba(255, 136, 0, 0.25)",
		},
		{
			"named map offset",
			map[string]any{"shadowColor": "#000", "shadowOffset": decoded{"width": 1, "height": 2}, "shadowRadius": 3},
			"box-shadow: 1px 2px 3px #000",
		},
		{
			"named color keeps opacity out",
			map[string]any{"shadowColor": "black", "shadowOpacity": 0.5, "shadowRadius": 2},
			"box-shadow: 0 0 2px black",
		},
		{
			"opacity alone emits nothing",
			map[string]any{"shadowOpacity": 0.5},
			"",
		},
		{
			"bad offset",
			map[string]any{"shadowOffset": map[string]any{"width": "wide"}},
			"",
		},
		{
			"text shadow",
			map[string]any{"textShadowColor": "red", "textShadowRadius": 1, "textShadowOffset": &Offset{Width: 1, Height: 2}},
			"text-shadow: 1px 2px 1px red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.style); got != tt.want {
				t.Errorf("Inline() = %q, want %q", got, tt.want)
			}
		})
	}
}

// decoded stands in for the named map types a YAML decoder produces.
type decoded map[string]any

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"maps", []any{
			map[string]any{"translateX": 10},
			map[string]any{"rotate": "45deg"},
			map[string]any{"scale": 2},
		}},
		{"named maps", []any{
			decoded{"translateX": 10},
			decoded{"rotate": "45deg"},
			decoded{"scale": 2},
		}},
		{"typed slice", []decoded{
			{"translateX": 10},
			{"rotate": "45deg"},
			{"scale": 2},
		}},
	}

	want := "transform: translateX(10px) rotate(45deg) scale(2)"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(map[string]any{"transform": tt.value}); got != want {
				t.Errorf("Inline() = %q, want %q", got, want)
			}
		})
	}
}

func TestDeclarationsSorted(t *testing.T) {
	got := Declarations(map[string]any{"zIndex": 1, "color": "red", "backgroundColor": "blue"})
	want := []Declaration{
		{Property: "background-color", Value: "blue"},
		{Property: "color", Value: "red"},
		{Property: "z-index", Value: "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Declarations() = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		color   string
		opacity float64
		want    string
	}{
		{"#fff", 1, "rgba(255, 255, 255, 1)"},
		{"#102030", 0.5, "rgba(16, 32, 48, 0.5)"},
		{"#abcd", 0.5, "#abcd"},
		{"#zzzzzz", 0.5, "#zzzzzz"},
		{"#000", 2, "rgba(0, 0, 0, 1)"},
		{"rgb(1,2,3)", 0.5, "rgb(1,2,3)"},
	}
	for _, tt := range tests {
		if got := withAlpha(tt.color, tt.opacity); got != tt.want {
			t.Errorf("withAlpha(%q, %v) = %q, want %q", tt.color, tt.opacity, got, tt.want)
		}
	}
}
