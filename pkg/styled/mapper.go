package styled

import (
	"math"
	"sort"

	"github.com/vango-dev/styled/pkg/vdom"
)

// StyleProp is the prop key holding an explicitly passed style object.
// The mapper never treats it as a style property.
const StyleProp = "style"

// Report describes one mapping pass.
type Report struct {
	// Applied maps each forwarded prop key to the canonical name it was
	// written under.
	Applied map[string]string `json:"applied,omitempty"`

	// Expanded lists custom-prop flags whose fragments were merged.
	Expanded []string `json:"expanded,omitempty"`

	// Dropped lists prop keys that contributed nothing.
	Dropped []string `json:"dropped,omitempty"`

	// Collisions lists canonical names written more than once. The final
	// value of such a name depends on key order, which is lexical here but
	// carries no meaning for the caller.
	Collisions []string `json:"collisions,omitempty"`
}

// MapPropsToStyle collects the style properties found in props.
//
// A key that names a custom prop with a truthy value expands to that
// prop's fragment. Any other key is resolved through aliases and kept
// when the resolved name is an allowed property. Everything else is
// dropped. Keys are visited in lexical order, so when several keys write
// the same property the lexically last one wins.
func MapPropsToStyle(props vdom.Props, aliases AliasTable, custom CustomProps) Style {
	style, _ := mapProps(props, aliases, custom, false)
	return style
}

// Explain is MapPropsToStyle plus a Report of what happened to each key.
func Explain(props vdom.Props, aliases AliasTable, custom CustomProps) (Style, Report) {
	return mapProps(props, aliases, custom, true)
}

func mapProps(props vdom.Props, aliases AliasTable, custom CustomProps, explain bool) (Style, Report) {
	style := make(Style)
	var report Report
	if len(props) == 0 {
		return style, report
	}

	var written map[string]int
	if explain {
		report.Applied = make(map[string]string)
		written = make(map[string]int)
	}

	for _, key := range sortedKeys(props) {
		if key == StyleProp {
			continue
		}
		value := props[key]

		if fragment, ok := custom[key]; ok && truthy(value) {
			for name, v := range fragment {
				style[name] = v
				if explain {
					written[name]++
				}
			}
			if explain {
				report.Expanded = append(report.Expanded, key)
			}
			continue
		}

		name := aliases.Resolve(key)
		if !IsAllowed(name) {
			if explain {
				report.Dropped = append(report.Dropped, key)
			}
			continue
		}
		style[name] = value
		if explain {
			report.Applied[key] = name
			written[name]++
		}
	}

	if explain {
		for name, n := range written {
			if n > 1 {
				report.Collisions = append(report.Collisions, name)
			}
		}
		sort.Strings(report.Collisions)
	}
	return style, report
}

func sortedKeys(props vdom.Props) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truthy reports whether a flag value switches its custom prop on: nil,
// false, numeric zero, NaN and "" are off, anything else is on.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}
