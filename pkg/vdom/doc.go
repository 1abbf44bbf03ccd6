// Package vdom provides the virtual node tree that styled components render
// into.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes, event
// handlers and, before a base component consumes them, flat style
// properties. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// A Props bag can be passed as an argument and is copied onto the element.
// Children normalizes the loose shapes a "children" prop may hold.
package vdom
