package component

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/componentx/pkg/attrs"
	"github.com/vango-dev/componentx/pkg/render"
	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/vdom"
)

func buttonView(v *Vnode) *vdom.VNode {
	return vdom.Button(vdom.Spread(v.Root()), v.Children)
}

func TestNewMergesMixinsLeftToRight(t *testing.T) {
	base := Mixin{
		View:         buttonView,
		DefaultAttrs: func() attrs.Bag { return attrs.Bag{"size": "sm"} },
		ClassList:    func(attrs.Bag) []string { return []string{"base"} },
	}
	override := Mixin{
		ClassList: func(attrs.Bag) []string { return []string{"override"} },
	}

	c, err := New("Button", base, override)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.ClassList(nil); got[0] != "override" {
		t.Errorf("ClassList()[0] = %q, want %q", got[0], "override")
	}
	if got := c.DefaultAttrs()["size"]; got != "sm" {
		t.Errorf("DefaultAttrs().size = %v, want %q", got, "sm")
	}
}

func TestNewMissingView(t *testing.T) {
	_, err := New("Empty", Mixin{DefaultAttrs: func() attrs.Bag { return nil }})
	if !stderrors.Is(err, ErrMissingRenderContract) {
		t.Fatalf("New() error = %v, want ErrMissingRenderContract", err)
	}
	if !strings.Contains(err.Error(), "component Empty") {
		t.Errorf("error %q does not name the component", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic")
		}
	}()
	MustNew("Empty")
}

func TestRender(t *testing.T) {
	reg := style.NewRegistry()
	c := MustNew("Button", Mixin{
		View:      buttonView,
		ClassList: func(attrs.Bag) []string { return []string{"btn"} },
		Style: func(attrs.Bag) style.Sheet {
			return style.Sheet{style.Rule("button", style.Decl("color", "red"))}
		},
	})

	node, err := c.Render(reg, attrs.Bag{"id": "save", "class": "wide"}, "Save")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html, err := render.RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	want := `<button class="wide btn" data-component="Button" id="save">Save</button>`
	if html != want {
		t.Errorf("html = %q, want %q", html, want)
	}

	css, ok := reg.Get("Button")
	if !ok {
		t.Fatal("style not injected")
	}
	if want := "\nbutton[data-component=Button] {\n  color: red;\n}\n"; css != want {
		t.Errorf("css = %q, want %q", css, want)
	}
}

func TestInitInjectsOnce(t *testing.T) {
	reg := style.NewRegistry()
	calls := 0
	c := MustNew("Card", Mixin{
		View: buttonView,
		Style: func(attrs.Bag) style.Sheet {
			calls++
			return style.Sheet{style.Rule("div", style.Decl("margin", fmt.Sprint(calls)))}
		},
	})

	for i := 0; i < 3; i++ {
		if _, err := c.Render(reg); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}

	css, _ := reg.Get("Card")
	if !strings.Contains(css, "margin: 1;") {
		t.Errorf("css = %q, want the first injected style", css)
	}
	if reg.Len() != 1 {
		t.Errorf("reg.Len() = %d, want 1", reg.Len())
	}
}

func TestInitUnnamedStyledComponent(t *testing.T) {
	c := &Component{Mixin: Mixin{
		View: buttonView,
		Style: func(attrs.Bag) style.Sheet {
			return style.Sheet{style.Rule("div", style.Decl("color", "red"))}
		},
	}}

	_, err := c.Render(style.NewRegistry())
	if !stderrors.Is(err, ErrUnnamedStyledComponent) {
		t.Fatalf("Render() error = %v, want ErrUnnamedStyledComponent", err)
	}

	c.Style = func(attrs.Bag) style.Sheet { return style.Sheet{} }
	if _, err := c.Render(style.NewRegistry()); err != nil {
		t.Errorf("Render() with empty style error = %v, want nil", err)
	}
}

func TestValidationFailure(t *testing.T) {
	errMissingLabel := stderrors.New("label is required")
	c := MustNew("Field", Mixin{
		View: buttonView,
		Validate: func(a attrs.Bag) error {
			var in struct {
				Label string `attr:"label"`
				Max   int    `attr:"max"`
			}
			if err := attrs.Decode(a, &in); err != nil {
				return err
			}
			if in.Label == "" {
				return errMissingLabel
			}
			return nil
		},
	})

	_, err := c.Render(nil, attrs.Bag{"max": "3"})
	if !stderrors.Is(err, ErrAttributeValidation) {
		t.Fatalf("Render() error = %v, want ErrAttributeValidation", err)
	}
	if !stderrors.Is(err, errMissingLabel) {
		t.Errorf("Render() error = %v, want wrapped hook error", err)
	}

	if _, err := c.Render(nil, attrs.Bag{"label": "Name", "max": "3"}); err != nil {
		t.Errorf("Render() error = %v, want nil", err)
	}
}

func TestBeforeUpdateRevalidates(t *testing.T) {
	c := MustNew("Counter", Mixin{
		View: buttonView,
		Validate: func(a attrs.Bag) error {
			if a["count"] == -1 {
				return stderrors.New("negative")
			}
			return nil
		},
	})

	v := Assemble(attrs.Bag{"count": 1}, nil, c)
	if err := c.Init(nil, v); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	v.Attrs["count"] = -1
	if err := c.BeforeUpdate(v); !stderrors.Is(err, ErrAttributeValidation) {
		t.Errorf("BeforeUpdate() error = %v, want ErrAttributeValidation", err)
	}
	if got := v.Root()["data-component"]; got != "Counter" {
		t.Errorf("rootAttrs.data-component = %v, want %q", got, "Counter")
	}
}

func TestRenderMissingView(t *testing.T) {
	c := &Component{Name: "Broken"}
	if _, err := c.Render(nil); !stderrors.Is(err, ErrMissingRenderContract) {
		t.Errorf("Render() error = %v, want ErrMissingRenderContract", err)
	}
}

func TestNodeNests(t *testing.T) {
	c := MustNew("Badge", Mixin{
		View: func(v *Vnode) *vdom.VNode { return vdom.Span(vdom.Spread(v.Root()), v.Children) },
	})

	page := vdom.Div(c.Node(nil, "new"))
	html, err := render.RenderToString(page)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	if want := `<div><span data-component="Badge">new</span></div>`; html != want {
		t.Errorf("html = %q, want %q", html, want)
	}
}
