// Package component builds reusable components on top of pkg/vdom.
//
// A Component is a named set of hooks. Rendering a component reconciles the
// caller's attribute bag with the component's defaults, hoists root
// attributes (id, style, event handlers, data-*, key, config and the
// composed class) into a rootAttrs sub-bag, validates the result, injects
// the component's scoped stylesheet once per document, and finally calls
// the View hook:
//
//	button, _ := component.New("Button", component.Mixin{
//	    DefaultAttrs: func() attrs.Bag { return attrs.Bag{"type": "button"} },
//	    ClassList: func(a attrs.Bag) []string {
//	        return []string{"btn", classlist.When(a["primary"] == true, "btn-primary")}
//	    },
//	    Style: func(attrs.Bag) style.Sheet {
//	        return style.Sheet{style.Rule("button", style.Decl("padding", "4px"))}
//	    },
//	    View: func(v *component.Vnode) *vdom.VNode {
//	        return vdom.Button(vdom.Spread(v.Root()), v.Children)
//	    },
//	})
//
//	node, err := button.Render(reg, attrs.Bag{"primary": true}, "Save")
package component
