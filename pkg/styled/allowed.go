package styled

import "sort"

// allowedProps is the set of style property names a wrapped component
// forwards from its props bag into the style object.
var allowedProps = map[string]bool{
	// Layout
	"alignContent":   true,
	"alignItems":     true,
	"alignSelf":      true,
	"aspectRatio":    true,
	"bottom":         true,
	"columnGap":      true,
	"direction":      true,
	"display":        true,
	"end":            true,
	"flex":           true,
	"flexBasis":      true,
	"flexDirection":  true,
	"flexGrow":       true,
	"flexShrink":     true,
	"flexWrap":       true,
	"gap":            true,
	"height":         true,
	"justifyContent": true,
	"left":           true,
	"maxHeight":      true,
	"maxWidth":       true,
	"minHeight":      true,
	"minWidth":       true,
	"overflow":       true,
	"position":       true,
	"right":          true,
	"rowGap":         true,
	"start":          true,
	"top":            true,
	"width":          true,
	"zIndex":         true,

	// Spacing
	"margin":            true,
	"marginBottom":      true,
	"marginEnd":         true,
	"marginHorizontal":  true,
	"marginLeft":        true,
	"marginRight":       true,
	"marginStart":       true,
	"marginTop":         true,
	"marginVertical":    true,
	"padding":           true,
	"paddingBottom":     true,
	"paddingEnd":        true,
	"paddingHorizontal": true,
	"paddingLeft":       true,
	"paddingRight":      true,
	"paddingStart":      true,
	"paddingTop":        true,
	"paddingVertical":   true,

	// Border
	"borderBottomColor":       true,
	"borderBottomEndRadius":   true,
	"borderBottomLeftRadius":  true,
	"borderBottomRightRadius": true,
	"borderBottomStartRadius": true,
	"borderBottomWidth":       true,
	"borderColor":             true,
	"borderEndColor":          true,
	"borderEndWidth":          true,
	"borderLeftColor":         true,
	"borderLeftWidth":         true,
	"borderRadius":            true,
	"borderRightColor":        true,
	"borderRightWidth":        true,
	"borderStartColor":        true,
	"borderStartWidth":        true,
	"borderStyle":             true,
	"borderTopColor":          true,
	"borderTopEndRadius":      true,
	"borderTopLeftRadius":     true,
	"borderTopRightRadius":    true,
	"borderTopStartRadius":    true,
	"borderTopWidth":          true,
	"borderWidth":             true,

	// Shadow
	"elevation":     true,
	"shadowColor":   true,
	"shadowOffset":  true,
	"shadowOpacity": true,
	"shadowRadius":  true,

	// Appearance
	"backgroundColor": true,
	"opacity":         true,
	"overlayColor":    true,
	"resizeMode":      true,
	"tintColor":       true,

	// Typography
	"color":               true,
	"fontFamily":          true,
	"fontSize":            true,
	"fontStyle":           true,
	"fontVariant":         true,
	"fontWeight":          true,
	"letterSpacing":       true,
	"lineHeight":          true,
	"textAlign":           true,
	"textDecorationColor": true,
	"textDecorationLine":  true,
	"textDecorationStyle": true,
	"textShadowColor":     true,
	"textShadowOffset":    true,
	"textShadowRadius":    true,
	"textTransform":       true,
	"writingDirection":    true,
}

// IsAllowed reports whether name is a recognized style property.
func IsAllowed(name string) bool {
	return allowedProps[name]
}

// AllowedProps returns the recognized style property names in sorted order.
func AllowedProps() []string {
	names := make([]string, 0, len(allowedProps))
	for name := range allowedProps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
