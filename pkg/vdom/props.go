package vdom

import (
	"reflect"
	"strings"
)

// Props holds attributes and event handlers.
//
// Styled components receive their whole input as a Props bag, so the bag
// carries both DOM attributes and flat style properties until a base
// component decides which keys it understands.
type Props map[string]any

// Clone returns a shallow copy of the bag. A nil bag clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether key is present, even with a nil value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value under key when it is a string.
func (p Props) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Bool returns the value under key when it is a bool.
func (p Props) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// Attrs converts the bag into an Attr slice, dropping empty keys.
func (p Props) Attrs() []Attr {
	attrs := make([]Attr, 0, len(p))
	for k, v := range p {
		if k == "" {
			continue
		}
		attrs = append(attrs, Attr{Key: k, Value: v})
	}
	return attrs
}

// IsHandlerKey reports whether key names an event handler prop
// ("onclick", "onPress", ...).
func IsHandlerKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// Normalize rewrites decoded values so every map with string keys is a
// plain map[string]any and every slice is a []any, at any depth. Decoders
// such as yaml.v3 give nested maps the named type of the outer target,
// which type switches on map[string]any would otherwise miss.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int, int64, float64:
		return v
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Normalized returns a copy of the bag with every nested value passed
// through Normalize.
func (p Props) Normalized() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = Normalize(v)
	}
	return out
}
