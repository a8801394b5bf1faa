package style

import "strings"

// indentUnit is the indentation added per nesting level.
const indentUnit = "  "

// Compile renders sheet as CSS scoped to componentID.
//
// The output starts with a newline. Blocks are emitted depth first in sheet
// order, declaration names are converted to kebab-case and values are copied
// verbatim. Compile is pure and safe for concurrent use.
func Compile(sheet Sheet, componentID string) string {
	var b strings.Builder
	b.WriteByte('\n')
	compileLevel(&b, sheet, componentID, 0)
	return b.String()
}

func compileLevel(b *strings.Builder, sheet Sheet, componentID string, depth int) {
	pad := strings.Repeat(indentUnit, depth)
	for _, e := range sheet {
		b.WriteString(pad)
		if e.IsBlock() {
			b.WriteString(selectorFor(e.Key, componentID))
			b.WriteString(" {\n")
			compileLevel(b, e.Rules, componentID, depth+1)
			b.WriteString(pad)
			b.WriteString("}\n")
			continue
		}
		b.WriteString(KebabCase(e.Key))
		b.WriteString(": ")
		b.WriteString(e.Value)
		b.WriteString(";\n")
	}
}

// selectorFor returns the emitted header of a block: at-rules verbatim,
// everything else scoped.
func selectorFor(key, componentID string) string {
	if strings.HasPrefix(key, "@") {
		return key
	}
	return Scope(key, componentID)
}

// KebabCase converts a camelCase declaration name to kebab-case:
// backgroundColor becomes background-color.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
