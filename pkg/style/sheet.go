package style

// Entry is one key of a style description.
//
// When Rules is non-nil the entry is a block: Key is a selector or at-rule
// header and Rules its body. Otherwise Key is a declaration name and Value
// its value.
type Entry struct {
	Key   string
	Value string
	Rules Sheet
}

// IsBlock reports whether e is a selector or at-rule block.
func (e Entry) IsBlock() bool {
	return e.Rules != nil
}

// Sheet is an ordered style description.
type Sheet []Entry

// Rule returns a block entry for selector.
func Rule(selector string, entries ...Entry) Entry {
	rules := make(Sheet, 0, len(entries))
	return Entry{Key: selector, Rules: append(rules, entries...)}
}

// Decl returns a declaration entry. name may be camelCase.
func Decl(name, value string) Entry {
	return Entry{Key: name, Value: value}
}

// Empty reports whether s has no entries.
func (s Sheet) Empty() bool {
	return len(s) == 0
}
