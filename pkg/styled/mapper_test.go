package styled

import (
	"math"
	"reflect"
	"testing"

	"github.com/vango-dev/styled/pkg/vdom"
)

func TestMapPropsToStyleKeepsOnlyAllowedKeys(t *testing.T) {
	props := vdom.Props{
		"color":     "red",
		"marginTop": 4,
		"foo":       1,
		"onclick":   func() {},
		"children":  "text",
		"id":        "x",
	}

	got := MapPropsToStyle(props, nil, nil)
	want := Style{"color": "red", "marginTop": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapPropsToStyle() = %v, want %v", got, want)
	}
}

func TestMapPropsToStyleOutputIsAllowed(t *testing.T) {
	props := vdom.Props{}
	for _, name := range AllowedProps() {
		props[name] = 1
	}
	for short := range DefaultAliases() {
		props[short] = 2
	}
	props["notAStyle"] = 3
	props["style"] = Style{"color": "red"}

	for _, aliases := range []AliasTable{nil, DefaultAliases(), TextAliases(), {"x": "nope"}} {
		for key := range MapPropsToStyle(props, aliases, nil) {
			if !IsAllowed(key) {
				t.Errorf("output key %q is not allowed (aliases %v)", key, aliases)
			}
		}
	}
}

func TestMapPropsToStyleWithoutAliasesIsProjection(t *testing.T) {
	props := vdom.Props{
		"padding":  8,
		"bg":       "red",
		"fontSize": 14,
		"mt":       3,
		"title":    "hello",
	}

	got := MapPropsToStyle(props, nil, nil)
	want := Style{}
	for k, v := range props {
		if IsAllowed(k) {
			want[k] = v
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapPropsToStyle() = %v, want %v", got, want)
	}
}

func TestMapPropsToStyleAliases(t *testing.T) {
	got := MapPropsToStyle(vdom.Props{"mt": 12, "unknownKey": "x"}, AliasTable{"mt": "marginTop"}, nil)
	want := Style{"marginTop": 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapPropsToStyle() = %v, want %v", got, want)
	}
}

func TestMapPropsToStyleAliasToUnknownIsDropped(t *testing.T) {
	got := MapPropsToStyle(vdom.Props{"a": 1, "b": 2}, AliasTable{"a": "b", "b": "a"}, nil)
	if len(got) != 0 {
		t.Errorf("MapPropsToStyle() = %v, want empty", got)
	}
}

func TestMapPropsToStyleCustomProps(t *testing.T) {
	custom := CustomProps{"bold": {"fontWeight": "bold"}}

	tests := []struct {
		name  string
		props vdom.Props
		want  Style
	}{
		{"on", vdom.Props{"bold": true}, Style{"fontWeight": "bold"}},
		{"off", vdom.Props{"bold": false}, Style{}},
		{"nil", vdom.Props{"bold": nil}, Style{}},
		{"truthy string", vdom.Props{"bold": "yes"}, Style{"fontWeight": "bold"}},
		{"with other props", vdom.Props{"bold": 1, "color": "red"}, Style{"fontWeight": "bold", "color": "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPropsToStyle(tt.props, nil, custom)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapPropsToStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapPropsToStyleCustomFragmentsAreTrusted(t *testing.T) {
	custom := CustomProps{"fancy": {"transform": []any{map[string]any{"scale": 2}}}}

	got := MapPropsToStyle(vdom.Props{"fancy": true}, nil, custom)
	if _, ok := got["transform"]; !ok {
		t.Errorf("custom fragment key was filtered: %v", got)
	}
}

func TestMapPropsToStyleFalsyCustomFallsThrough(t *testing.T) {
	custom := CustomProps{"flex": {"flexGrow": 1, "flexShrink": 1}}

	got := MapPropsToStyle(vdom.Props{"flex": 0}, nil, custom)
	want := Style{"flex": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapPropsToStyle() = %v, want %v", got, want)
	}
}

func TestMapPropsToStyleIgnoresStyleProp(t *testing.T) {
	got := MapPropsToStyle(
		vdom.Props{"style": "red"},
		AliasTable{"style": "color"},
		CustomProps{"style": {"color": "blue"}},
	)
	if len(got) != 0 {
		t.Errorf("MapPropsToStyle() = %v, want empty", got)
	}
}

func TestMapPropsToStyleEmpty(t *testing.T) {
	if got := MapPropsToStyle(nil, DefaultAliases(), nil); got == nil || len(got) != 0 {
		t.Errorf("MapPropsToStyle(nil) = %#v, want empty non-nil style", got)
	}
}

func TestMapPropsToStyleCollisionOrder(t *testing.T) {
	props := vdom.Props{"c": "blue", "color": "red"}
	aliases := AliasTable{"c": "color"}

	// "c" sorts before "color", so the direct key is applied last.
	for i := 0; i < 20; i++ {
		got := MapPropsToStyle(props, aliases, nil)
		if got["color"] != "red" {
			t.Fatalf("run %d: color = %v, want red", i, got["color"])
		}
	}
}

func TestExplain(t *testing.T) {
	props := vdom.Props{
		"c":      "blue",
		"color":  "red",
		"raised": true,
		"quiet":  false,
		"mt":     4,
		"nope":   1,
		"style":  Style{"padding": 1},
	}
	aliases := AliasTable{"c": "color", "mt": "marginTop"}
	custom := CustomProps{
		"raised": {"shadowRadius": 4, "color": "black"},
		"quiet":  {"opacity": 0.5},
	}

	style, report := Explain(props, aliases, custom)

	wantStyle := Style{"color": "black", "marginTop": 4, "shadowRadius": 4}
	if !reflect.DeepEqual(style, wantStyle) {
		t.Errorf("style = %v, want %v", style, wantStyle)
	}
	wantApplied := map[string]string{"c": "color", "color": "color", "mt": "marginTop"}
	if !reflect.DeepEqual(report.Applied, wantApplied) {
		t.Errorf("Applied = %v, want %v", report.Applied, wantApplied)
	}
	if !reflect.DeepEqual(report.Expanded, []string{"raised"}) {
		t.Errorf("Expanded = %v, want [raised]", report.Expanded)
	}
	if !reflect.DeepEqual(report.Dropped, []string{"nope", "quiet"}) {
		t.Errorf("Dropped = %v, want [nope quiet]", report.Dropped)
	}
	if !reflect.DeepEqual(report.Collisions, []string{"color"}) {
		t.Errorf("Collisions = %v, want [color]", report.Collisions)
	}

	if got := MapPropsToStyle(props, aliases, custom); !reflect.DeepEqual(got, style) {
		t.Errorf("Explain and MapPropsToStyle disagree: %v vs %v", style, got)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"0", true},
		{0, false},
		{int8(0), false},
		{uint(3), true},
		{0.0, false},
		{float32(0.5), true},
		{math.NaN(), false},
		{-1, true},
		{[]int{}, true},
		{struct{}{}, true},
	}

	for _, tt := range tests {
		if got := truthy(tt.value); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
