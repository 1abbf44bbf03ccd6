package showcase

import (
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/styled/internal/config"
	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

// Example is a named props bag shown in the gallery.
type Example struct {
	Name  string     `json:"name"`
	Props vdom.Props `json:"props"`
}

// Entry is a registered component.
type Entry struct {
	// Name is the lookup name ("Text", "Heading", ...).
	Name string

	// Base is the primitive the component wraps.
	Base string

	// Component renders the entry.
	Component *styled.Styled[styled.ComponentFunc]

	// Examples are rendered in the gallery in order.
	Examples []Example
}

// Result is the outcome of rendering a registered component.
type Result struct {
	Node   *vdom.VNode
	Style  styled.Style
	Report styled.Report
}

// Registry holds the components available to the gallery, the preview
// server and the publisher. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// builtinExamples are shown for the primitives.
var builtinExamples = map[string][]Example{
	"Text": {
		{Name: "plain", Props: vdom.Props{"text": "The quick brown fox", "fontSize": 18, "color": "#1f2937"}},
		{Name: "aliased", Props: vdom.Props{"text": "Spaced out", "mt": 4, "px": 8, "bg": "#fef3c7"}},
	},
	"View": {
		{Name: "card", Props: vdom.Props{
			"children":        "Card",
			"padding":         16,
			"backgroundColor": "#f4f4f5",
			"borderRadius":    8,
			"shadowColor":     "#000000",
			"shadowOpacity":   0.15,
			"shadowRadius":    6,
			"shadowOffset":    styled.Offset{Height: 2},
		}},
	},
	"Pressable": {
		{Name: "button", Props: vdom.Props{"text": "Press me", "padding": 8, "backgroundColor": "#2563eb", "color": "#ffffff", "borderRadius": 6}},
		{Name: "disabled", Props: vdom.Props{"text": "Disabled", "disabled": true, "padding": 8, "opacity": 0.5}},
	},
	"TextInput": {
		{Name: "single line", Props: vdom.Props{"placeholder": "Type here", "borderWidth": 1, "borderColor": "#d4d4d8", "padding": 6}},
		{Name: "multiline", Props: vdom.Props{"multiline": true, "defaultValue": "Several\nlines", "minHeight": 64, "padding": 6}},
	},
	"TouchableOpacity": {
		{Name: "tap", Props: vdom.Props{"text": "Tap", "activeOpacity": 0.6, "paddingHorizontal": 12, "paddingVertical": 6}},
	},
	"Image": {
		{Name: "avatar", Props: vdom.Props{"source": map[string]any{"uri": "https://placehold.co/64"}, "alt": "placeholder", "width": 64, "height": 64, "borderRadius": 32}},
	},
}

// New returns a registry holding the built-in primitives. Primitives are
// registered with the default alias table so their examples can use
// short names.
func New() *Registry {
	r := &Registry{entries: make(map[string]*Entry)}
	for _, name := range styled.PrimitiveNames() {
		p, _ := styled.Primitive(name)
		aliases := styled.DefaultAliases()
		if name == "Text" {
			aliases = styled.TextAliases()
		}
		r.entries[name] = &Entry{
			Name:      name,
			Base:      name,
			Component: p.WithOptions(styled.Options{Aliases: aliases}),
			Examples:  builtinExamples[name],
		}
	}
	return r
}

// FromConfig returns a registry holding the primitives plus every
// component declared in cfg.
func FromConfig(cfg *config.Config) (*Registry, error) {
	r := New()
	for _, name := range cfg.ComponentNames() {
		cc := cfg.Components[name]
		base, ok := styled.Primitive(cc.Base)
		if !ok {
			return nil, errors.New("E103").
				WithDetail("components." + name + ".base: " + cc.Base)
		}
		examples := make([]Example, 0, len(cc.Examples))
		for _, ex := range cc.Examples {
			examples = append(examples, Example{Name: ex.Name, Props: ex.Props})
		}
		if err := r.Register(Entry{
			Name:      name,
			Base:      cc.Base,
			Component: base.WithOptions(cc.Options()),
			Examples:  examples,
		}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a component. Names must be unique.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" || e.Component == nil {
		return errors.Newf(errors.CategoryConfig, "component entry needs a name and a component")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Name]; exists {
		return errors.Newf(errors.CategoryConfig, "component %q is already registered", e.Name)
	}
	entry := e
	r.entries[e.Name] = &entry
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New("E121").
			WithDetail("No component named " + name).
			WithSuggestion("Available components: " + strings.Join(r.Names(), ", "))
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the registered entries sorted by name.
func (r *Registry) Entries() []*Entry {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(names))
	for _, name := range names {
		if e, ok := r.entries[name]; ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Render renders the named component with props and reports how the
// props were mapped.
func (r *Registry) Render(name string, props vdom.Props) (Result, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	style, report := e.Component.Explain(props)
	return Result{
		Node:   e.Component.Render(props),
		Style:  style,
		Report: report,
	}, nil
}

// ComputedStyle is the style computed for one gallery example.
type ComputedStyle struct {
	Component string        `json:"component"`
	Example   string        `json:"example"`
	Style     styled.Style  `json:"style"`
	CSS       string        `json:"css"`
	Report    styled.Report `json:"report"`
}

// Styles computes the style of every example, ordered by component and
// then by example position.
func (r *Registry) Styles() []ComputedStyle {
	var out []ComputedStyle
	for _, e := range r.Entries() {
		for _, ex := range e.Examples {
			style, report := e.Component.Explain(ex.Props)
			out = append(out, ComputedStyle{
				Component: e.Name,
				Example:   ex.Name,
				Style:     style,
				CSS:       style.CSS(),
				Report:    report,
			})
		}
	}
	return out
}
