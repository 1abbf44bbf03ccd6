package css

// unitless lists properties whose numeric values carry no length unit.
var unitless = map[string]bool{
	"aspectRatio":   true,
	"flex":          true,
	"flexGrow":      true,
	"flexShrink":    true,
	"fontWeight":    true,
	"opacity":       true,
	"shadowOpacity": true,
	"zIndex":        true,
}

// axisShorthands expand a horizontal or vertical shorthand into sides.
var axisShorthands = map[string][]string{
	"marginHorizontal":  {"margin-left", "margin-right"},
	"marginVertical":    {"margin-top", "margin-bottom"},
	"paddingHorizontal": {"padding-left", "padding-right"},
	"paddingVertical":   {"padding-top", "padding-bottom"},
}

// logicalProperties maps start/end keys to CSS logical properties.
var logicalProperties = map[string]string{
	"start":                   "inset-inline-start",
	"end":                     "inset-inline-end",
	"marginStart":             "margin-inline-start",
	"marginEnd":               "margin-inline-end",
	"paddingStart":            "padding-inline-start",
	"paddingEnd":              "padding-inline-end",
	"borderStartWidth":        "border-inline-start-width",
	"borderEndWidth":          "border-inline-end-width",
	"borderStartColor":        "border-inline-start-color",
	"borderEndColor":          "border-inline-end-color",
	"borderTopStartRadius":    "border-start-start-radius",
	"borderTopEndRadius":      "border-start-end-radius",
	"borderBottomStartRadius": "border-end-start-radius",
	"borderBottomEndRadius":   "border-end-end-radius",
}

// skipped properties have no web equivalent.
var skipped = map[string]bool{
	"elevation":    true,
	"overlayColor": true,
	"tintColor":    true,
}

var shadowParts = map[string]bool{
	"shadowColor":   true,
	"shadowOffset":  true,
	"shadowOpacity": true,
	"shadowRadius":  true,
}

var textShadowParts = map[string]bool{
	"textShadowColor":  true,
	"textShadowOffset": true,
	"textShadowRadius": true,
}

var objectFit = map[string]string{
	"cover":   "cover",
	"contain": "contain",
	"stretch": "fill",
	"center":  "none",
	"repeat":  "none",
}
