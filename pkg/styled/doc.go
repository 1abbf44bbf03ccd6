// Package styled lets components take style properties as flat props.
//
// A wrapped component collects recognized style names from its props bag
// and hands them to the base component as one style object:
//
//	Card := styled.View.WithOptions(styled.Options{
//	    Aliases:       styled.DefaultAliases(),
//	    DefaultStyles: styled.Style{"borderRadius": 8},
//	    CustomProps: styled.CustomProps{
//	        "raised": {"shadowColor": "#000", "shadowRadius": 6},
//	    },
//	})
//
//	node := Card.Render(vdom.Props{
//	    "p":        16,
//	    "bg":       "#fff",
//	    "raised":   true,
//	    "children": vdom.Text("Hello"),
//	})
//
// # Precedence
//
// The final style is a shallow merge, lowest first: Options.DefaultStyles,
// the explicit "style" prop, then the style collected from props. Nested
// values such as shadowOffset are replaced, not merged.
//
// # Mapping
//
// For every prop key (except "style"): a custom prop with a truthy value
// expands to its fragment; any other key is resolved through the alias
// table and kept only when the result is in the allowed set (see
// AllowedProps). Unknown keys are dropped without error.
//
// Keys are visited in lexical order. When two keys write the same
// property the result is deterministic but arbitrary; Explain reports such
// writes as Collisions.
//
// # Primitives
//
// Text, View, Pressable, TextInput, TouchableOpacity and Image are
// pre-wrapped base components that render to HTML elements with an inline
// style attribute (see package css).
package styled
