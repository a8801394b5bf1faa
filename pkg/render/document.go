package render

import (
	"io"

	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/vdom"
)

// DocumentData contains what RenderDocument needs for a full page.
type DocumentData struct {
	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Body is the page content.
	Body *vdom.VNode

	// Registry holds the component stylesheets to place in the head.
	// May be nil.
	Registry *style.Registry

	// StyleSheets are external stylesheet URLs linked before the inline styles.
	StyleSheets []string

	// ReloadScript, when set, is inlined at the end of the body.
	ReloadScript string
}

// RenderDocument writes a complete HTML5 document. Each registry entry
// becomes <style id="<Name>-style"> in injection order.
func RenderDocument(w io.Writer, d DocumentData) error {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Attribute("charset", "utf-8")),
		vdom.If(d.Title != "", vdom.Title(vdom.Text(d.Title))),
	)
	for _, href := range d.StyleSheets {
		head.Children = append(head.Children, vdom.Link(vdom.Attribute("rel", "stylesheet"), vdom.Href(href)))
	}
	head.Children = append(head.Children, StyleNodes(d.Registry)...)

	body := vdom.Body(d.Body)
	if d.ReloadScript != "" {
		body.Children = append(body.Children, vdom.El("script", vdom.Text(d.ReloadScript)))
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return NewRenderer(RendererConfig{}).RenderToWriter(w, vdom.Html(vdom.Attribute("lang", lang), head, body))
}

// StyleNodes returns one <style> element per registry entry.
func StyleNodes(reg *style.Registry) []*vdom.VNode {
	if reg == nil {
		return nil
	}
	var nodes []*vdom.VNode
	for _, name := range reg.Names() {
		css, ok := reg.Get(name)
		if !ok {
			continue
		}
		nodes = append(nodes, vdom.Style(vdom.ID(style.ElementID(name)), vdom.Text(css)))
	}
	return nodes
}
