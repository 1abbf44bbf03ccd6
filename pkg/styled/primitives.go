package styled

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/styled/pkg/css"
	"github.com/vango-dev/styled/pkg/vdom"
)

// Built-in primitives, wrapped with no options. Use WithOptions to attach
// aliases, default styles or custom props.
var (
	// Text renders a <span> with its children or "text" prop.
	Text = Wrap(ComponentFunc(renderText), Options{})

	// View renders a <div> container.
	View = Wrap(ComponentFunc(renderView), Options{})

	// Pressable renders a focusable region with role="button"; onPress is
	// bound to click and dropped when "disabled" is truthy.
	Pressable = Wrap(ComponentFunc(renderPressable), Options{})

	// TextInput renders an <input>, or a <textarea> when "multiline" is
	// truthy.
	TextInput = Wrap(ComponentFunc(renderTextInput), Options{})

	// TouchableOpacity renders a <button type="button">.
	TouchableOpacity = Wrap(ComponentFunc(renderTouchableOpacity), Options{})

	// Image renders an <img> from a "source" string or {uri} map.
	Image = Wrap(ComponentFunc(renderImage), Options{})
)

var primitives = map[string]*Styled[ComponentFunc]{
	"Text":             Text,
	"View":             View,
	"Pressable":        Pressable,
	"TextInput":        TextInput,
	"TouchableOpacity": TouchableOpacity,
	"Image":            Image,
}

// Primitive looks up a built-in primitive by name ("Text", "View", ...).
func Primitive(name string) (*Styled[ComponentFunc], bool) {
	p, ok := primitives[name]
	return p, ok
}

// PrimitiveNames returns the built-in primitive names in sorted order.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// passthrough lists props forwarded verbatim to the DOM element.
var passthrough = map[string]bool{
	"id":       true,
	"class":    true,
	"title":    true,
	"role":     true,
	"tabindex": true,
	"lang":     true,
	"key":      true,
}

// renamed props are forwarded under a DOM attribute name.
var renamed = map[string]string{
	"className":          "class",
	"nativeID":           "id",
	"testID":             "data-testid",
	"accessibilityRole":  "role",
	"onPress":            "onclick",
	"onChangeText":       "oninput",
	"onChange":           "onchange",
	"onFocus":            "onfocus",
	"onBlur":             "onblur",
	"onKeyPress":         "onkeydown",
}

// domAttrs picks the props a base element understands and renders the
// style prop to CSS. Unknown keys, including flat style props, are ignored.
func domAttrs(props vdom.Props) []vdom.Attr {
	attrs := make([]vdom.Attr, 0, 4)
	for _, key := range sortedKeys(props) {
		value := props[key]
		switch {
		case passthrough[key]:
			attrs = append(attrs, vdom.Attr{Key: key, Value: value})
		case vdom.IsHandlerKey(renamed[key]), vdom.IsHandlerKey(key) && key == strings.ToLower(key):
			if isHandler(value) {
				attrs = append(attrs, vdom.Attr{Key: handlerName(key), Value: value})
			}
		case key == "accessibilityLabel":
			if label, ok := value.(string); ok {
				attrs = append(attrs, vdom.AriaLabel(label))
			}
		case renamed[key] != "":
			attrs = append(attrs, vdom.Attr{Key: renamed[key], Value: value})
		case strings.HasPrefix(key, "data-"), strings.HasPrefix(key, "aria-"):
			attrs = append(attrs, vdom.Attr{Key: key, Value: value})
		}
	}
	if s := inlineStyle(props[StyleProp]); s != "" {
		attrs = append(attrs, vdom.StyleAttr(s))
	}
	return attrs
}

func handlerName(key string) string {
	if name := renamed[key]; name != "" {
		return name
	}
	return key
}

// isHandler accepts Go funcs and EventHandler values. Strings are never
// treated as handlers.
func isHandler(value any) bool {
	if _, ok := value.(vdom.EventHandler); ok {
		return true
	}
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

func inlineStyle(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if style, ok := AsStyle(value); ok {
		return css.Inline(style)
	}
	return ""
}

func children(props vdom.Props) []*vdom.VNode {
	if c, ok := props["children"]; ok {
		return vdom.Children(c)
	}
	if s, ok := props.String("text"); ok {
		return []*vdom.VNode{vdom.Text(s)}
	}
	return nil
}

func renderText(props vdom.Props) *vdom.VNode {
	return vdom.Span(domAttrs(props), children(props))
}

func renderView(props vdom.Props) *vdom.VNode {
	return vdom.Div(domAttrs(props), children(props))
}

func renderPressable(props vdom.Props) *vdom.VNode {
	attrs := append([]vdom.Attr{vdom.Role("button"), vdom.TabIndex(0)}, domAttrs(props)...)
	disabled := truthy(props["disabled"])
	if disabled {
		attrs = append(attrs, vdom.AriaDisabled(true))
	}
	node := vdom.Div(attrs, children(props))
	if disabled {
		delete(node.Props, "onclick")
	}
	return node
}

func renderTouchableOpacity(props vdom.Props) *vdom.VNode {
	attrs := append([]vdom.Attr{vdom.Type("button")}, domAttrs(props)...)
	if truthy(props["disabled"]) {
		attrs = append(attrs, vdom.Disabled())
	}
	node := vdom.Button(attrs, children(props))
	if n, ok := numeric(props["activeOpacity"]); ok {
		node.Props["data-active-opacity"] = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return node
}

func renderTextInput(props vdom.Props) *vdom.VNode {
	attrs := domAttrs(props)
	value, _ := props.String("value")
	if value == "" {
		value, _ = props.String("defaultValue")
	}

	if s, ok := props.String("placeholder"); ok {
		attrs = append(attrs, vdom.Placeholder(s))
	}
	if s, ok := props.String("name"); ok {
		attrs = append(attrs, vdom.Name(s))
	}
	if editable, ok := props.Bool("editable"); ok && !editable {
		attrs = append(attrs, vdom.Readonly())
	}
	if n, ok := numeric(props["maxLength"]); ok && n > 0 {
		attrs = append(attrs, vdom.MaxLength(int(n)))
	}

	if truthy(props["multiline"]) {
		var content []*vdom.VNode
		if value != "" {
			content = append(content, vdom.Text(value))
		}
		return vdom.Textarea(attrs, content)
	}

	inputType := "text"
	switch {
	case truthy(props["secureTextEntry"]):
		inputType = "password"
	case props["keyboardType"] == "email-address":
		inputType = "email"
	case props["keyboardType"] == "numeric", props["keyboardType"] == "number-pad":
		attrs = append(attrs, vdom.Attr{Key: "inputmode", Value: "numeric"})
	}
	attrs = append(attrs, vdom.Type(inputType))
	if value != "" {
		attrs = append(attrs, vdom.Value(value))
	}
	return vdom.Input(attrs)
}

func renderImage(props vdom.Props) *vdom.VNode {
	attrs := domAttrs(props)
	if src := imageSource(props["source"]); src != "" {
		attrs = append(attrs, vdom.Src(src))
	}
	alt, ok := props.String("alt")
	if !ok {
		alt, _ = props.String("accessibilityLabel")
	}
	attrs = append(attrs, vdom.Alt(alt))
	return vdom.Img(attrs)
}

func imageSource(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		s, _ := v["uri"].(string)
		return s
	case vdom.Props:
		s, _ := v["uri"].(string)
		return s
	case map[string]string:
		return v["uri"]
	default:
		return ""
	}
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
