// Package vdom provides the virtual DOM nodes component views return.
//
// VNode is the building block for elements, text, fragments, nested
// components and raw HTML. Props holds attributes and event handlers.
//
// # Element API
//
// Elements are created with variadic factory functions. Arguments may be
// attributes, attribute bags, event handlers, child nodes, strings or
// components, in any order:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// A component's hoisted root attributes are applied with Spread:
//
//	Div(Spread(v.Root()), v.Children...)
package vdom
