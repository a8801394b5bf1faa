package attrs

import (
	"regexp"
	"slices"
)

// LifecycleMethods are hook names that are never root attributes even though
// they look like event handlers.
var LifecycleMethods = []string{
	"oninit",
	"oncreate",
	"onbeforeupdate",
	"onupdate",
	"onbeforeremove",
	"onremove",
}

var rootKeyPattern = regexp.MustCompile(`^(key|id|style|on.*|data-.*|config)$`)

// IsRootKey reports whether key must be hoisted to a component's outer element.
func IsRootKey(key string) bool {
	if slices.Contains(LifecycleMethods, key) {
		return false
	}
	return rootKeyPattern.MatchString(key)
}

// IsBag reports whether x is an attribute bag rather than a child.
//
// Only string-keyed maps qualify, and only when they carry none of the
// "tag", "view" or "length" keys that mark a node or component description.
func IsBag(x any) bool {
	b, ok := AsBag(x)
	if !ok {
		return false
	}
	for _, k := range []string{"tag", "view", "length"} {
		if _, has := b[k]; has {
			return false
		}
	}
	return true
}
