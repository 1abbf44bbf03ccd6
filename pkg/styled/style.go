package styled

import (
	"reflect"

	"github.com/vango-dev/styled/pkg/css"
	"github.com/vango-dev/styled/pkg/vdom"
)

// Style is a style object: canonical property name to value. Values are
// primitives (strings, numbers) or nested structures such as Offset.
type Style map[string]any

// Offset is the value shape of shadowOffset and textShadowOffset.
type Offset = css.Offset

// CSS renders the style as an inline style attribute value.
func (s Style) CSS() string {
	return css.Inline(s)
}

// Clone returns a shallow copy of the style. Nested values are shared.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge shallow-merges styles left to right into a new Style. Later
// styles overwrite earlier ones key by key; nested values are replaced,
// never merged.
func Merge(styles ...Style) Style {
	out := make(Style)
	for _, s := range styles {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// AsStyle converts a loosely typed style value (as found under the
// "style" prop) into a Style. It accepts Style, vdom.Props and any other
// map keyed by strings; any other value yields false.
func AsStyle(value any) (Style, bool) {
	switch v := value.(type) {
	case Style:
		return v, v != nil
	case map[string]any:
		return Style(v), v != nil
	case vdom.Props:
		return Style(v), v != nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(Style, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// CustomProps maps boolean flag props to the style fragment they expand to.
type CustomProps map[string]Style

// Clone copies the table and each fragment.
func (c CustomProps) Clone() CustomProps {
	if c == nil {
		return nil
	}
	out := make(CustomProps, len(c))
	for k, v := range c {
		out[k] = v.Clone()
	}
	return out
}
