package component

import "github.com/vango-dev/componentx/pkg/attrs"

// Vnode describes one render of a component before it reaches the vdom.
type Vnode struct {
	Attrs    attrs.Bag
	Children []any
	Owner    *Component
}

// Root returns the hoisted root attributes, never nil.
func (v *Vnode) Root() attrs.Bag {
	if v == nil {
		return attrs.Bag{}
	}
	if root, ok := attrs.AsBag(v.Attrs[RootKey]); ok {
		return root
	}
	return attrs.Bag{}
}

// Arg is an explicitly tagged first argument.
type Arg struct {
	attrs   attrs.Bag
	child   any
	isAttrs bool
}

// Attrs tags b as the attribute bag.
func Attrs(b attrs.Bag) Arg {
	return Arg{attrs: b, isAttrs: true}
}

// Child tags x as the first child, even when it looks like a bag.
func Child(x any) Arg {
	return Arg{child: x}
}

// Assemble builds the Vnode for one render of c.
//
// When first is an attribute bag (or tagged with Attrs) the children are
// rest; otherwise first is the first child and only defaults apply. A nil
// first is dropped rather than kept as a child.
func Assemble(first any, rest []any, c *Component) *Vnode {
	var (
		bag      any
		children []any
	)

	switch a := first.(type) {
	case Arg:
		if a.isAttrs {
			bag = a.attrs
			children = append(children, rest...)
		} else {
			children = append([]any{a.child}, rest...)
		}
	case nil:
		children = append(children, rest...)
	default:
		if attrs.IsBag(first) {
			bag = first
			children = append(children, rest...)
		} else {
			children = append([]any{first}, rest...)
		}
	}

	if children == nil {
		children = []any{}
	}

	return &Vnode{
		Attrs:    Reconcile(bag, c),
		Children: children,
		Owner:    c,
	}
}
