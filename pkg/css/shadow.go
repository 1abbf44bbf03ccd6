package css

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// boxShadow composes box-shadow from the shadow* properties. Nothing is
// emitted unless a color, offset or radius is present.
func boxShadow(style map[string]any) (string, bool) {
	return composeShadow(style, "shadowColor", "shadowOffset", "shadowRadius", "shadowOpacity")
}

// textShadow composes text-shadow from the textShadow* properties.
func textShadow(style map[string]any) (string, bool) {
	return composeShadow(style, "textShadowColor", "textShadowOffset", "textShadowRadius", "")
}

func composeShadow(style map[string]any, colorKey, offsetKey, radiusKey, opacityKey string) (string, bool) {
	_, hasColor := style[colorKey]
	_, hasOffset := style[offsetKey]
	_, hasRadius := style[radiusKey]
	if !hasColor && !hasOffset && !hasRadius {
		return "", false
	}

	off, ok := offset(style[offsetKey])
	if hasOffset && !ok {
		return "", false
	}
	radius := 0.0
	if hasRadius {
		r, ok := number(style[radiusKey])
		if !ok {
			return "", false
		}
		radius = r
	}

	color := "black"
	if hasColor {
		c, ok := style[colorKey].(string)
		if !ok || !safeValue(c) {
			return "", false
		}
		color = c
	}
	if opacityKey != "" {
		if op, ok := number(style[opacityKey]); ok {
			color = withAlpha(color, op)
		}
	}

	return fmt.Sprintf("%s %s %s %s",
		formatNumber(off.Width, true),
		formatNumber(off.Height, true),
		formatNumber(radius, true),
		color,
	), true
}

// offset reads an Offset from the shapes a style may hold: Offset,
// *Offset, or a map with numeric width/height entries.
func offset(value any) (Offset, bool) {
	switch v := value.(type) {
	case nil:
		return Offset{}, true
	case Offset:
		return v, true
	case *Offset:
		if v == nil {
			return Offset{}, true
		}
		return *v, true
	default:
		m, ok := stringMap(v)
		if !ok {
			return Offset{}, false
		}
		var o Offset
		if w, ok := m["width"]; ok {
			n, ok := number(w)
			if !ok {
				return Offset{}, false
			}
			o.Width = n
		}
		if h, ok := m["height"]; ok {
			n, ok := number(h)
			if !ok {
				return Offset{}, false
			}
			o.Height = n
		}
		return o, true
	}
}

// stringMap reads any map keyed by strings, named types included, as a
// map[string]any.
func stringMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// list reads any slice as a []any.
func list(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// withAlpha applies opacity to #rgb and #rrggbb colors. Other color forms
// are returned unchanged.
func withAlpha(color string, opacity float64) string {
	hex := strings.TrimPrefix(color, "#")
	if hex == color {
		return color
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		(rgb>>16)&0xff, (rgb>>8)&0xff, rgb&0xff,
		strconv.FormatFloat(opacity, 'f', -1, 64))
}

// formatTransform renders a transform list such as
// [{"translateX": 10}, {"rotate": "45deg"}].
func formatTransform(value any) (string, bool) {
	items, ok := list(value)
	if !ok {
		return "", false
	}

	var parts []string
	for _, item := range items {
		m, ok := stringMap(item)
		if !ok {
			return "", false
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, fn := range keys {
			arg, ok := transformArg(fn, m[fn])
			if !ok {
				return "", false
			}
			parts = append(parts, fn+"("+arg+")")
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func transformArg(fn string, value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, safeValue(s)
	}
	n, ok := number(value)
	if !ok {
		return "", false
	}
	px := strings.HasPrefix(fn, "translate") || fn == "perspective"
	return formatNumber(n, px), true
}
