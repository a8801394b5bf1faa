// Package errors provides structured, coded errors for componentx.
//
// Every error raised by the component and style layers carries a short code
// (e.g. "E101") that maps to a registered template:
//   - a category (component, style, config, publish)
//   - a one-line message
//   - a longer explanation
//
// # Usage
//
//	err := errors.New("E103").
//	    WithDetail(`component "" returned a style sheet`).
//	    WithSuggestion("Give the component a name with component.New(\"Card\", ...)")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E103: Styled component has no name
//	//
//	//   component "" returned a style sheet
//	//
//	//   Hint: Give the component a name with component.New("Card", ...)
//
// Errors compare by code, so a bare template works as a sentinel:
//
//	if errors.Is(err, errors.New("E102")) { ... }
package errors
