package style

import (
	"regexp"
	"strings"
)

// MarkerAttr is the attribute that identifies a component's root element.
const MarkerAttr = "data-component"

// Token returns the attribute selector that restricts a rule to componentID.
func Token(componentID string) string {
	return "[" + MarkerAttr + "=" + componentID + "]"
}

// Scope appends the component token to selector.
//
// Comma-separated selectors are scoped piece by piece and rejoined with
// ", ". Only the leading compound of a descendant selector is scoped, and the
// token goes before the first pseudo-class. At-rule headers, percentage
// keyframe offsets and the from/to keywords come back unchanged.
func Scope(selector, componentID string) string {
	if strings.Contains(selector, ",") {
		parts := strings.Split(selector, ",")
		for i, p := range parts {
			parts[i] = Scope(strings.TrimSpace(p), componentID)
		}
		return strings.Join(parts, ", ")
	}

	sel := strings.TrimSpace(selector)
	if sel == "" || strings.HasPrefix(sel, "@") || percentOffset.MatchString(sel) {
		return sel
	}

	if i := strings.IndexAny(sel, " \t\n"); i >= 0 {
		rest := strings.TrimLeft(sel[i:], " \t\n")
		return scopeCompound(sel[:i], componentID) + " " + rest
	}
	return scopeCompound(sel, componentID)
}

// scopeCompound scopes a selector with no combinators.
func scopeCompound(sel, componentID string) string {
	base, pseudo := sel, ""
	if i := strings.IndexByte(sel, ':'); i >= 0 {
		base, pseudo = sel[:i], sel[i:]
	}
	if isKeyframeKeyword(base) {
		return sel
	}
	return base + Token(componentID) + pseudo
}

var percentOffset = regexp.MustCompile(`^\d+(\.\d+)?%$`)

func isKeyframeKeyword(s string) bool {
	return s == "from" || s == "to"
}
