package classlist

import (
	"reflect"
	"testing"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		list []string
		user string
		want []string
	}{
		{"empty list", nil, "a", []string{"a"}},
		{"empty list empty user", []string{}, "", []string{""}},
		{"single element prepends", []string{"b"}, "a", []string{"a", "b"}},
		{"two elements inserts second", []string{"a", "c"}, "b", []string{"a", "b", "c"}},
		{"many elements", []string{"a", "c", "d", "e"}, "b", []string{"a", "b", "c", "d", "e"}},
		{"duplicates kept", []string{"a", "a"}, "a", []string{"a", "a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.list, tt.user)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Insert(%q, %q) = %q, want %q", tt.list, tt.user, got, tt.want)
			}
		})
	}
}

func TestInsertDoesNotMutate(t *testing.T) {
	list := make([]string, 2, 8)
	list[0], list[1] = "a", "c"

	_ = Insert(list, "b")
	_ = Insert(list, "x")

	if !reflect.DeepEqual(list, []string{"a", "c"}) {
		t.Errorf("input list mutated: %q", list)
	}
	if got := Insert(list, "b"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("second call = %q", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		list []string
		user string
		want string
	}{
		{"falsy tokens dropped", []string{"a", "", "", "", ""}, "", "a"},
		{"user in second position", []string{"a", "c"}, "b", "a b c"},
		{"user before single base", []string{"root"}, "extra", "extra root"},
		{"only user", nil, "solo", "solo"},
		{"everything empty", nil, "", ""},
		{"whitespace token kept", []string{"a", " ", "c"}, "", "a   c"},
		{"conditional placeholder", []string{"btn", When(false, "off"), When(true, "on")}, "", "btn on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.list, tt.user); got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.list, tt.user, got, tt.want)
			}
		})
	}
}
