package errors

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "component error",
			code:    "E101",
			wantMsg: "Component has no view",
			wantCat: CategoryComponent,
		},
		{
			name:    "style error",
			code:    "E110",
			wantMsg: "Invalid style description",
			wantCat: CategoryStyle,
		},
		{
			name:    "publish error",
			code:    "E130",
			wantMsg: "Stylesheet upload failed",
			wantCat: CategoryPublish,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := New("E103")
	if got, want := err.Error(), "E103: Styled component has no name"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.WithDetail(`component "" returned styles`)
	if got, want := err.Error(), `E103: Styled component has no name: component "" returned styles`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := Newf(CategoryCLI, "no input files")
	if plain.Error() != "no input files" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "no input files")
	}
}

func TestError_Is(t *testing.T) {
	sentinel := New("E102")
	err := New("E102").WithDetail("title is required")

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New("E101")) {
		t.Error("errors.Is should not match a different code")
	}
	if stderrors.Is(Newf(CategoryCLI, "x"), Newf(CategoryCLI, "x")) {
		t.Error("uncoded errors should not match each other")
	}
}

func TestError_Wrap(t *testing.T) {
	inner := stderrors.New("boom")
	outer := New("E102").Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
	if !strings.HasSuffix(outer.Error(), ": boom") {
		t.Errorf("Error() = %q, want wrapped message suffix", outer.Error())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E110") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ce := New("E110")
	if FromError(ce, "E111") != ce {
		t.Error("FromError should return *Error as-is")
	}

	std := stderrors.New("bad")
	if got := FromError(std, "E110"); got.Wrapped != std || got.Code != "E110" {
		t.Errorf("FromError = %+v, want E110 wrapping std error", got)
	}
}

func TestError_WithLocation(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "card.style.yaml")
	content := "div:\n  color: red\n  margin: [1, 2]\n"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E110").WithLocation(tmp, 3, 11)
	if err.Location.String() != tmp+":3:11" {
		t.Errorf("Location = %q, want %q", err.Location.String(), tmp+":3:11")
	}
	if len(err.Context) == 0 {
		t.Error("Context should not be empty")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil location", nil, ""},
		{"with column", &Location{File: "a.yaml", Line: 10, Column: 5}, "a.yaml:10:5"},
		{"without column", &Location{File: "a.yaml", Line: 10}, "a.yaml:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E103").
		WithDetail("component returned a style sheet without a name").
		WithSuggestion(`component.New("Card", ...)`)

	formatted := err.Format()
	for _, want := range []string{"ERROR E103: Styled component has no name", "without a name", "Hint: component.New"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q in:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E110").WithDetail("bad")
	err.Location = &Location{File: "x.json", Line: 2}
	if got, want := err.FormatCompact(), "x.json:2: E110: Invalid style description: bad"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("alpha beta gamma delta", 11)
	want := []string{"alpha beta", "gamma delta"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestCodes(t *testing.T) {
	for _, code := range Codes() {
		tmpl, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%q) not found", code)
		}
		if tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("template %s is incomplete: %+v", code, tmpl)
		}
	}
}
