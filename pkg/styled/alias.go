package styled

// AliasTable maps short prop names to canonical style property names.
type AliasTable map[string]string

// Resolve returns the canonical name for key, or key itself when the table
// has no entry for it. A nil table resolves every key to itself.
func (t AliasTable) Resolve(key string) string {
	if name, ok := t[key]; ok && name != "" {
		return name
	}
	return key
}

// Clone returns a copy of the table. A nil table clones to nil.
func (t AliasTable) Clone() AliasTable {
	if t == nil {
		return nil
	}
	out := make(AliasTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Resolve resolves key through table. See AliasTable.Resolve.
func Resolve(key string, table AliasTable) string {
	return table.Resolve(key)
}

// ComposeAliases merges tables left to right into a new table; later
// tables win on duplicate short names.
func ComposeAliases(tables ...AliasTable) AliasTable {
	out := make(AliasTable)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

var defaultAliases = AliasTable{
	"bg": "backgroundColor",

	"p":  "padding",
	"pt": "paddingTop",
	"pr": "paddingRight",
	"pb": "paddingBottom",
	"pl": "paddingLeft",
	"ps": "paddingStart",
	"pe": "paddingEnd",
	"px": "paddingHorizontal",
	"py": "paddingVertical",

	"m":  "margin",
	"mt": "marginTop",
	"mr": "marginRight",
	"mb": "marginBottom",
	"ml": "marginLeft",
	"ms": "marginStart",
	"me": "marginEnd",
	"mx": "marginHorizontal",
	"my": "marginVertical",

	"w":    "width",
	"h":    "height",
	"minW": "minWidth",
	"minH": "minHeight",
	"maxW": "maxWidth",
	"maxH": "maxHeight",

	"justify":   "justifyContent",
	"items":     "alignItems",
	"self":      "alignSelf",
	"direction": "flexDirection",
	"wrap":      "flexWrap",
	"basis":     "flexBasis",
	"grow":      "flexGrow",
	"shrink":    "flexShrink",
}

var textAliases = ComposeAliases(defaultAliases, AliasTable{
	"size":   "fontSize",
	"family": "fontFamily",
	"weight": "fontWeight",
	"align":  "textAlign",
})

// DefaultAliases returns a copy of the generic alias table (bg, p, mt, w,
// justify, ...).
func DefaultAliases() AliasTable {
	return defaultAliases.Clone()
}

// TextAliases returns a copy of the alias table for text-bearing
// components: the generic table plus size, family, weight and align.
func TextAliases() AliasTable {
	return textAliases.Clone()
}
