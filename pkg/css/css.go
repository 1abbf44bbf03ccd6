package css

import (
	"sort"
	"strconv"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration as "property: value".
func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Offset is a two-dimensional shadow offset.
type Offset struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Inline renders a style object as the value of an HTML style attribute.
// Declarations are ordered by CSS property name.
func Inline(style map[string]any) string {
	decls := Declarations(style)
	if len(decls) == 0 {
		return ""
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// Declarations converts a style object keyed by camelCase property names
// into CSS declarations sorted by property. Values that cannot be
// expressed (unsupported types, values with CSS metacharacters, properties
// without a web equivalent) are left out.
func Declarations(style map[string]any) []Declaration {
	if len(style) == 0 {
		return nil
	}

	out := make(map[string]string)

	// Axis shorthands go first so that a specific side given alongside
	// them wins.
	for _, key := range sortedKeys(style) {
		sides, ok := axisShorthands[key]
		if !ok {
			continue
		}
		v, ok := formatValue(key, style[key])
		if !ok {
			continue
		}
		for _, side := range sides {
			out[side] = v
		}
	}

	for _, key := range sortedKeys(style) {
		if _, ok := axisShorthands[key]; ok {
			continue
		}
		if skipped[key] || shadowParts[key] || textShadowParts[key] {
			continue
		}
		value := style[key]
		switch key {
		case "resizeMode":
			if fit, ok := objectFit[stringValue(value)]; ok {
				out["object-fit"] = fit
			}
			continue
		case "transform":
			if v, ok := formatTransform(value); ok {
				out["transform"] = v
			}
			continue
		case "writingDirection":
			if s := stringValue(value); s == "ltr" || s == "rtl" {
				out["direction"] = s
			}
			continue
		}

		v, ok := formatValue(key, value)
		if !ok {
			continue
		}
		out[propertyName(key)] = v
	}

	if v, ok := boxShadow(style); ok {
		out["box-shadow"] = v
	}
	if v, ok := textShadow(style); ok {
		out["text-shadow"] = v
	}

	decls := make([]Declaration, 0, len(out))
	for prop, v := range out {
		decls = append(decls, Declaration{Property: prop, Value: v})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Property < decls[j].Property })
	return decls
}

// propertyName maps a camelCase style key to its CSS property.
func propertyName(key string) string {
	if name, ok := logicalProperties[key]; ok {
		return name
	}
	return Kebab(key)
}

// Kebab converts camelCase to kebab-case ("marginTop" -> "margin-top").
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// formatValue renders a single value for key. Numbers get a px unit unless
// the property is unitless; lists are space-joined.
func formatValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case nil, bool:
		return "", false
	case string:
		if !safeValue(v) {
			return "", false
		}
		return v, true
	case []string:
		return joinValues(key, toAny(v))
	case []any:
		return joinValues(key, v)
	}

	n, ok := number(value)
	if !ok {
		return "", false
	}
	return formatNumber(n, !unitless[key]), true
}

func joinValues(key string, values []any) (string, bool) {
	parts := make([]string, 0, len(values))
	for _, item := range values {
		s, ok := formatValue(key, item)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func formatNumber(n float64, px bool) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if px && n != 0 {
		return s + "px"
	}
	return s
}

// number extracts a float from the numeric kinds a decoded style may hold.
func number(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

// safeValue rejects values that could escape the declaration they are
// placed in.
func safeValue(s string) bool {
	return s != "" && !strings.ContainsAny(s, ";{}<>\\")
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
