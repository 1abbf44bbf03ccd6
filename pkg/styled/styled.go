package styled

import "github.com/vango-dev/styled/pkg/vdom"

// Component renders a props bag into a node tree.
type Component interface {
	Render(props vdom.Props) *vdom.VNode
}

// ComponentFunc adapts a plain render function to Component.
type ComponentFunc func(props vdom.Props) *vdom.VNode

// Render implements Component.
func (f ComponentFunc) Render(props vdom.Props) *vdom.VNode {
	return f(props)
}

// Options configures a wrapped component. The zero value means no
// aliases, no default styles and no custom props.
type Options struct {
	// Aliases maps short prop names to style properties. It replaces the
	// built-in tables entirely; compose with ComposeAliases when both are
	// wanted.
	Aliases AliasTable `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// DefaultStyles has the lowest precedence in the final style.
	DefaultStyles Style `json:"defaultStyles,omitempty" yaml:"defaultStyles,omitempty"`

	// CustomProps maps flag props to the style fragment they switch on.
	CustomProps CustomProps `json:"customProps,omitempty" yaml:"customProps,omitempty"`
}

func (o Options) clone() Options {
	return Options{
		Aliases:       o.Aliases.Clone(),
		DefaultStyles: o.DefaultStyles.Clone(),
		CustomProps:   o.CustomProps.Clone(),
	}
}

// Styled is a component that gathers flat style props into its base
// component's style prop. It is immutable after Wrap and safe for
// concurrent Render calls.
type Styled[C Component] struct {
	base C
	opts Options
}

// Wrap returns a styled version of base configured with opts. The options
// are copied; later changes to the caller's maps have no effect.
func Wrap[C Component](base C, opts Options) *Styled[C] {
	return &Styled[C]{base: base, opts: opts.clone()}
}

// WithOptions returns a component over the same base with opts in place
// of the current options. The two option sets are not combined.
func (s *Styled[C]) WithOptions(opts Options) *Styled[C] {
	return Wrap(s.base, opts)
}

// Base returns the wrapped component.
func (s *Styled[C]) Base() C {
	return s.base
}

// Options returns a copy of the options captured at wrap time.
func (s *Styled[C]) Options() Options {
	return s.opts.clone()
}

// StyleFor computes the style Render would pass to the base component:
// default styles, then the explicit style prop, then the style collected
// from props.
func (s *Styled[C]) StyleFor(props vdom.Props) Style {
	explicit, _ := AsStyle(props[StyleProp])
	return Merge(
		s.opts.DefaultStyles,
		explicit,
		MapPropsToStyle(props, s.opts.Aliases, s.opts.CustomProps),
	)
}

// Explain returns the final style along with the mapping report for props.
func (s *Styled[C]) Explain(props vdom.Props) (Style, Report) {
	mapped, report := Explain(props, s.opts.Aliases, s.opts.CustomProps)
	explicit, _ := AsStyle(props[StyleProp])
	return Merge(s.opts.DefaultStyles, explicit, mapped), report
}

// Render renders the base component with every original prop plus the
// computed style. Props consumed as style are left in place; base
// components ignore keys they do not know.
func (s *Styled[C]) Render(props vdom.Props) *vdom.VNode {
	out := props.Clone()
	out[StyleProp] = s.StyleFor(props)
	return s.base.Render(out)
}

// Bind fixes props and returns a node-tree component that renders s with
// them.
func (s *Styled[C]) Bind(props vdom.Props) vdom.Component {
	bound := props.Clone()
	return vdom.Func(func() *vdom.VNode {
		return s.Render(bound)
	})
}
