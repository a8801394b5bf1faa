package component

import (
	"reflect"
	"testing"

	"github.com/vango-dev/componentx/pkg/attrs"
)

func TestReconcileEmptyCallerKeepsDefaults(t *testing.T) {
	c := &Component{Mixin: Mixin{
		DefaultAttrs: func() attrs.Bag { return attrs.Bag{"x": 1} },
	}}

	got := Reconcile(attrs.Bag{}, c)
	want := attrs.Bag{"x": 1, RootKey: attrs.Bag{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reconcile = %v, want %v", got, want)
	}
}

func TestReconcileClassOnly(t *testing.T) {
	c := &Component{}

	got := Reconcile(attrs.Bag{"class": "a"}, c)
	root, ok := got[RootKey].(attrs.Bag)
	if !ok {
		t.Fatalf("rootAttrs = %T, want attrs.Bag", got[RootKey])
	}
	if root["class"] != "a" {
		t.Errorf("rootAttrs.class = %v, want %q", root["class"], "a")
	}
	if got["class"] != "a" {
		t.Errorf("class = %v, want %q", got["class"], "a")
	}
}

func TestReconcile(t *testing.T) {
	handler := "handler"
	tests := []struct {
		name     string
		comp     *Component
		caller   any
		wantRoot attrs.Bag
	}{
		{
			name:     "marker for named component",
			comp:     &Component{Name: "Foo"},
			caller:   nil,
			wantRoot: attrs.Bag{"data-component": "Foo"},
		},
		{
			name:     "caller marker wins",
			comp:     &Component{Name: "Foo"},
			caller:   attrs.Bag{"data-component": "Bar"},
			wantRoot: attrs.Bag{"data-component": "Bar"},
		},
		{
			name:     "prior rootAttrs marker wins",
			comp:     &Component{Name: "Foo"},
			caller:   attrs.Bag{RootKey: attrs.Bag{"data-component": "Baz"}},
			wantRoot: attrs.Bag{"data-component": "Baz"},
		},
		{
			name:   "root keys hoisted, content keys stay",
			comp:   &Component{Name: "Foo"},
			caller: attrs.Bag{"id": "x", "style": "color: red", "onclick": handler, "data-k": "1", "label": "hi", "oninit": handler},
			wantRoot: attrs.Bag{
				"data-component": "Foo",
				"id":             "x",
				"style":          "color: red",
				"onclick":        handler,
				"data-k":         "1",
			},
		},
		{
			name: "class composed at second position",
			comp: &Component{Mixin: Mixin{
				ClassList: func(attrs.Bag) []string { return []string{"btn", "", "btn-lg"} },
			}},
			caller:   attrs.Bag{"class": "wide"},
			wantRoot: attrs.Bag{"class": "btn wide btn-lg"},
		},
		{
			name: "class list sees merged attrs",
			comp: &Component{Mixin: Mixin{
				DefaultAttrs: func() attrs.Bag { return attrs.Bag{"size": "sm"} },
				ClassList: func(a attrs.Bag) []string {
					return []string{"btn-" + a.String("size")}
				},
			}},
			caller:   attrs.Bag{"size": "lg"},
			wantRoot: attrs.Bag{"class": "btn-lg"},
		},
		{
			name:     "non-bag caller ignored",
			comp:     &Component{Mixin: Mixin{DefaultAttrs: func() attrs.Bag { return attrs.Bag{"id": "d"} }}},
			caller:   "child",
			wantRoot: attrs.Bag{"id": "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.caller, tt.comp)
			if root := got[RootKey]; !reflect.DeepEqual(root, tt.wantRoot) {
				t.Errorf("rootAttrs = %v, want %v", root, tt.wantRoot)
			}
		})
	}
}

func TestReconcileDeepMerge(t *testing.T) {
	c := &Component{Mixin: Mixin{
		DefaultAttrs: func() attrs.Bag {
			return attrs.Bag{"opts": attrs.Bag{"a": 1, "b": 2}, "title": "default"}
		},
	}}

	got := Reconcile(attrs.Bag{"opts": attrs.Bag{"b": 3}, "title": "caller"}, c)
	want := attrs.Bag{"a": 1, "b": 3}
	if !reflect.DeepEqual(got["opts"], want) {
		t.Errorf("opts = %v, want %v", got["opts"], want)
	}
	if got["title"] != "caller" {
		t.Errorf("title = %v, want %q", got["title"], "caller")
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	defaults := attrs.Bag{"opts": attrs.Bag{"a": 1}}
	c := &Component{Name: "Foo", Mixin: Mixin{
		DefaultAttrs: func() attrs.Bag { return defaults },
		ClassList:    func(attrs.Bag) []string { return []string{"foo"} },
	}}
	caller := attrs.Bag{"id": "x", "opts": attrs.Bag{"b": 2}, RootKey: attrs.Bag{"style": "s"}}

	got := Reconcile(caller, c)
	got["opts"].(attrs.Bag)["c"] = 3
	got[RootKey].(attrs.Bag)["extra"] = true

	wantCaller := attrs.Bag{"id": "x", "opts": attrs.Bag{"b": 2}, RootKey: attrs.Bag{"style": "s"}}
	if !reflect.DeepEqual(caller, wantCaller) {
		t.Errorf("caller = %v, want %v", caller, wantCaller)
	}
	if !reflect.DeepEqual(defaults, attrs.Bag{"opts": attrs.Bag{"a": 1}}) {
		t.Errorf("defaults = %v, want unchanged", defaults)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	c := &Component{Name: "Card", Mixin: Mixin{
		ClassList: func(attrs.Bag) []string { return []string{"card"} },
	}}

	once := Reconcile(attrs.Bag{"id": "a", "class": "x"}, c)
	twice := Reconcile(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Reconcile(Reconcile(x)) = %v, want %v", twice, once)
	}
}
