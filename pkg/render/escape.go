package render

import "strings"

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrEscaper also escapes whitespace that would break attribute parsing.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)

	// rawTextEscaper keeps style and script bodies from closing their element.
	rawTextEscaper = strings.NewReplacer("</", `<\/`)
)

func escapeHTML(s string) string    { return htmlEscaper.Replace(s) }
func escapeAttr(s string) string    { return attrEscaper.Replace(s) }
func escapeRawText(s string) string { return rawTextEscaper.Replace(s) }

// rawTextElements hold text that is not entity-decoded by browsers.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":          true,
	"autofocus":      true,
	"checked":        true,
	"defer":          true,
	"disabled":       true,
	"formnovalidate": true,
	"hidden":         true,
	"multiple":       true,
	"novalidate":     true,
	"open":           true,
	"readonly":       true,
	"required":       true,
	"selected":       true,
}
