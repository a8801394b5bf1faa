// Package render provides server-side rendering for vdom trees.
//
// It converts VNode trees into HTML strings or streams:
//
//   - HTML5 element rendering with void elements (input, br, img, ...)
//   - text and attribute escaping
//   - boolean attributes (disabled, checked, ...)
//   - deterministic, sorted attribute order
//
// Event handlers, the reconciliation key and nested attribute bags are not
// rendered as attributes.
//
// # Basic Usage
//
//	html, err := render.RenderToString(node)
//
// # Documents
//
// RenderDocument writes a complete page whose head carries one <style>
// element per component stylesheet in a style.Registry, in injection order:
//
//	err := render.RenderDocument(w, render.DocumentData{
//	    Title:    "Demo",
//	    Body:     body,
//	    Registry: reg,
//	})
package render
