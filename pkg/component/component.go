package component

import (
	"github.com/vango-dev/componentx/internal/errors"
	"github.com/vango-dev/componentx/pkg/attrs"
	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/vdom"
)

// Sentinel errors for errors.Is. Matching is by code, so errors carrying a
// detail or wrapped cause still match.
var (
	ErrMissingRenderContract  = errors.New("E101")
	ErrAttributeValidation    = errors.New("E102")
	ErrUnnamedStyledComponent = errors.New("E103")
)

// Mixin is a set of component hooks. Nil hooks contribute nothing.
type Mixin struct {
	View         func(v *Vnode) *vdom.VNode
	DefaultAttrs func() attrs.Bag
	ClassList    func(a attrs.Bag) []string
	Validate     func(a attrs.Bag) error
	Style        func(a attrs.Bag) style.Sheet
}

// Component is a named component description.
type Component struct {
	// Name identifies the component type. It is the data-component marker
	// value, the style scoping id and the style registry key.
	Name string

	Mixin
}

// New merges mixins left to right into one component. A later non-nil hook
// replaces an earlier one. A component without a View hook is rejected.
func New(name string, mixins ...Mixin) (*Component, error) {
	c := &Component{Name: name}
	for _, m := range mixins {
		c.apply(m)
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, mixins ...Mixin) *Component {
	c, err := New(name, mixins...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Component) apply(m Mixin) {
	if m.View != nil {
		c.View = m.View
	}
	if m.DefaultAttrs != nil {
		c.DefaultAttrs = m.DefaultAttrs
	}
	if m.ClassList != nil {
		c.ClassList = m.ClassList
	}
	if m.Validate != nil {
		c.Validate = m.Validate
	}
	if m.Style != nil {
		c.Style = m.Style
	}
}

// Check reports a missing View hook.
func (c *Component) Check() error {
	if c == nil || c.View == nil {
		name := ""
		if c != nil {
			name = c.Name
		}
		return errors.New("E101").WithDetail(describe(name))
	}
	return nil
}

func describe(name string) string {
	if name == "" {
		return "unnamed component"
	}
	return "component " + name
}

func (c *Component) defaults() attrs.Bag {
	if c.DefaultAttrs == nil {
		return nil
	}
	return c.DefaultAttrs()
}

func (c *Component) classList(a attrs.Bag) []string {
	if c.ClassList == nil {
		return nil
	}
	return c.ClassList(a)
}

func (c *Component) sheet(a attrs.Bag) style.Sheet {
	if c.Style == nil {
		return nil
	}
	return c.Style(a)
}
