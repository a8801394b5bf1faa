// Package classlist composes a component's class attribute.
//
// A component contributes an ordered list of class tokens; a caller may
// contribute one more through the class attribute. Where the caller's class
// lands depends on the length of the list: an empty list yields only the
// caller's class, a single token gets it in front, and longer lists get it
// at index 1:
//
//	classlist.Join(nil, "wide")                             // "wide"
//	classlist.Join([]string{"btn"}, "wide")                 // "wide btn"
//	classlist.Join([]string{"btn", "btn-primary"}, "wide") // "btn wide btn-primary"
//
// Empty tokens are placeholders and are dropped when joining, which lets a
// component write conditional classes positionally:
//
//	[]string{"btn", classlist.When(disabled, "btn-disabled")}
package classlist

import "strings"

// Insert places user into list at the fixed tie-break position.
//
// An empty list yields [user]; a single-element list gets user prepended;
// longer lists get user inserted at index 1. user is inserted even when it
// is empty. list is never modified.
func Insert(list []string, user string) []string {
	switch len(list) {
	case 0:
		return []string{user}
	case 1:
		return []string{user, list[0]}
	}

	out := make([]string, 0, len(list)+1)
	out = append(out, list[0], user)
	return append(out, list[1:]...)
}

// Join inserts user into list and joins the non-empty tokens with a space.
func Join(list []string, user string) string {
	tokens := Insert(list, user)

	var b strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// When returns class if cond holds and an empty placeholder otherwise.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
