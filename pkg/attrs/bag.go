package attrs

// Bag is an attribute bag.
type Bag map[string]any

// AsBag returns v as a Bag when it is a string-keyed map.
func AsBag(v any) (Bag, bool) {
	switch m := v.(type) {
	case Bag:
		return m, m != nil
	case map[string]any:
		return Bag(m), m != nil
	case map[string]string:
		if m == nil {
			return nil, false
		}
		b := make(Bag, len(m))
		for k, s := range m {
			b[k] = s
		}
		return b, true
	}
	return nil, false
}

// Copy returns a deep copy of v's nested maps and slices. A value that is
// not a bag yields an empty Bag.
func Copy(v any) Bag {
	src, ok := AsBag(v)
	if !ok {
		return Bag{}
	}
	out := make(Bag, len(src))
	for k, val := range src {
		out[k] = copyValue(val)
	}
	return out
}

func copyValue(v any) any {
	if b, ok := AsBag(v); ok {
		return Copy(b)
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = copyValue(e)
		}
		return out
	}
	return v
}

// Merge deep-merges src into dst and returns dst.
//
// Scalars from src replace those in dst. Nested bags merge key by key, so a
// subtree missing from src leaves dst's subtree alone. Nested bags of dst are
// replaced by merged copies rather than modified; only dst's top level is
// written to. src is never modified.
func Merge(dst Bag, src any) Bag {
	if dst == nil {
		dst = Bag{}
	}
	s, ok := AsBag(src)
	if !ok {
		return dst
	}
	for k, v := range s {
		if nested, ok := AsBag(v); ok {
			base := Bag{}
			if existing, ok := AsBag(dst[k]); ok {
				base = Copy(existing)
			}
			dst[k] = Merge(base, nested)
			continue
		}
		dst[k] = copyValue(v)
	}
	return dst
}

// Pick returns a copy of the entries of b whose key satisfies keep.
func Pick(b Bag, keep func(key string) bool) Bag {
	out := Bag{}
	for k, v := range b {
		if keep(k) {
			out[k] = copyValue(v)
		}
	}
	return out
}

// String returns the value under key when it is a string.
func (b Bag) String(key string) string {
	s, _ := b[key].(string)
	return s
}
