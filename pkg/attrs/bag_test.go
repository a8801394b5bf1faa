package attrs

import (
	"reflect"
	"testing"
)

func TestCopyIsDeep(t *testing.T) {
	src := Bag{
		"a":    1,
		"nest": map[string]any{"b": "x", "deeper": Bag{"c": true}},
		"list": []any{Bag{"d": 1}},
	}
	dup := Copy(src)

	dup["nest"].(Bag)["b"] = "changed"
	dup["nest"].(Bag)["deeper"].(Bag)["c"] = false
	dup["list"].([]any)[0].(Bag)["d"] = 2

	if src["nest"].(map[string]any)["b"] != "x" {
		t.Error("nested map was shared")
	}
	if src["nest"].(map[string]any)["deeper"].(Bag)["c"] != true {
		t.Error("second-level map was shared")
	}
	if src["list"].([]any)[0].(Bag)["d"] != 1 {
		t.Error("slice element was shared")
	}
}

func TestCopyNonBag(t *testing.T) {
	for _, v := range []any{nil, "str", 3, []any{1}, Bag(nil)} {
		got := Copy(v)
		if got == nil || len(got) != 0 {
			t.Errorf("Copy(%#v) = %#v, want empty bag", v, got)
		}
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  Bag
		src  any
		want Bag
	}{
		{
			name: "scalar override",
			dst:  Bag{"x": 1, "y": 2},
			src:  Bag{"x": 3},
			want: Bag{"x": 3, "y": 2},
		},
		{
			name: "nested merge keeps missing subtree",
			dst:  Bag{"dom": Bag{"a": 1, "b": 2}, "keep": Bag{"k": 1}},
			src:  map[string]any{"dom": map[string]any{"b": 3, "c": 4}},
			want: Bag{"dom": Bag{"a": 1, "b": 3, "c": 4}, "keep": Bag{"k": 1}},
		},
		{
			name: "map replaces scalar",
			dst:  Bag{"x": "scalar"},
			src:  Bag{"x": Bag{"n": 1}},
			want: Bag{"x": Bag{"n": 1}},
		},
		{
			name: "scalar replaces map",
			dst:  Bag{"x": Bag{"n": 1}},
			src:  Bag{"x": false},
			want: Bag{"x": false},
		},
		{
			name: "non-bag source ignored",
			dst:  Bag{"x": 1},
			src:  "child",
			want: Bag{"x": 1},
		},
		{
			name: "nil destination",
			dst:  nil,
			src:  Bag{"x": 1},
			want: Bag{"x": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotTouchSourceOrNestedDestination(t *testing.T) {
	nested := Bag{"a": 1}
	dst := Bag{"dom": nested}
	src := Bag{"dom": Bag{"b": 2}}

	out := Merge(dst, src)
	out["dom"].(Bag)["c"] = 3

	if !reflect.DeepEqual(nested, Bag{"a": 1}) {
		t.Errorf("nested destination mutated: %#v", nested)
	}
	if !reflect.DeepEqual(src, Bag{"dom": Bag{"b": 2}}) {
		t.Errorf("source mutated: %#v", src)
	}
}

func TestPick(t *testing.T) {
	b := Bag{"id": "x", "title": "t", "onclick": "h", "data-x": Bag{"n": 1}}
	got := Pick(b, IsRootKey)
	want := Bag{"id": "x", "onclick": "h", "data-x": Bag{"n": 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pick() = %#v, want %#v", got, want)
	}

	got["data-x"].(Bag)["n"] = 2
	if b["data-x"].(Bag)["n"] != 1 {
		t.Error("Pick shared a nested bag")
	}
}

func TestAsBagStringMap(t *testing.T) {
	b, ok := AsBag(map[string]string{"id": "x"})
	if !ok || b["id"] != "x" {
		t.Errorf("AsBag(map[string]string) = %#v, %v", b, ok)
	}
	if _, ok := AsBag(map[string]any(nil)); ok {
		t.Error("nil map should not be a bag")
	}
}

func TestBagString(t *testing.T) {
	b := Bag{"class": "a", "n": 3}
	if b.String("class") != "a" {
		t.Errorf("String(class) = %q", b.String("class"))
	}
	if b.String("n") != "" || b.String("missing") != "" {
		t.Error("String should be empty for non-strings and missing keys")
	}
}
