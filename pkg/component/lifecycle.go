package component

import (
	"github.com/vango-dev/componentx/internal/errors"
	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/vdom"
)

// Init runs when a component instance is created. It re-reconciles v.Attrs,
// validates them and injects the component's stylesheet into reg unless a
// style with the component's name is already present. A nil reg skips
// injection but still rejects unnamed styled components.
func (c *Component) Init(reg *style.Registry, v *Vnode) error {
	if err := c.BeforeUpdate(v); err != nil {
		return err
	}

	sheet := c.sheet(v.Attrs)
	if sheet.Empty() {
		return nil
	}
	if c.Name == "" {
		return errors.New("E103")
	}
	if reg != nil {
		reg.Ensure(c.Name, sheet)
	}
	return nil
}

// BeforeUpdate runs before an instance re-renders with new attributes. It
// re-reconciles and validates v.Attrs; styles are left alone.
func (c *Component) BeforeUpdate(v *Vnode) error {
	v.Attrs = Reconcile(v.Attrs, c)
	if c.Validate == nil {
		return nil
	}
	if err := c.Validate(v.Attrs); err != nil {
		return errors.New("E102").WithDetail(describe(c.Name)).Wrap(err)
	}
	return nil
}

// Render assembles args, runs Init and returns the View's node.
func (c *Component) Render(reg *style.Registry, args ...any) (*vdom.VNode, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}

	var first any
	var rest []any
	if len(args) > 0 {
		first, rest = args[0], args[1:]
	}

	v := Assemble(first, rest, c)
	if err := c.Init(reg, v); err != nil {
		return nil, err
	}
	return c.View(v), nil
}

// Node wraps a component render as a vdom.Component so it can be nested in
// element trees. Errors panic at render time.
func (c *Component) Node(reg *style.Registry, args ...any) vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		node, err := c.Render(reg, args...)
		if err != nil {
			panic(err)
		}
		return node
	})
}
