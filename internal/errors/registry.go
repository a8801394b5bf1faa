package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
//
// Templates carry no Detail by default: the detail slot is filled per call
// site so Error() stays specific.
var registry = map[string]Template{
	// Component errors (E101-E109)
	"E101": {
		Category: CategoryComponent,
		Message:  "Component has no view",
	},
	"E102": {
		Category: CategoryComponent,
		Message:  "Attribute validation failed",
	},
	"E103": {
		Category: CategoryComponent,
		Message:  "Styled component has no name",
	},

	// Style errors (E110-E119)
	"E110": {
		Category: CategoryStyle,
		Message:  "Invalid style description",
	},
	"E111": {
		Category: CategoryStyle,
		Message:  "Unsupported style file",
	},

	// Config errors (E120-E129)
	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Publish errors (E130-E139)
	"E130": {
		Category: CategoryPublish,
		Message:  "Stylesheet upload failed",
	},
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// Lookup returns the template for an error code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
