package style

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/componentx/internal/errors"
)

// Extensions lists the file suffixes LoadFile understands.
var Extensions = []string{".json", ".yaml", ".yml"}

// LoadFile reads a style description from path. The format is picked by
// extension.
func LoadFile(path string) (Sheet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsStyleFile(path) {
		return nil, errors.New("E111").
			WithDetail("cannot read " + path + " (" + ext + ")").
			WithSuggestion("Use a .json, .yaml or .yml file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E110").WithDetail("cannot read " + path).Wrap(err)
	}

	var sheet Sheet
	if ext == ".json" {
		sheet, err = ParseJSON(data)
	} else {
		sheet, err = ParseYAML(data)
	}
	if err != nil {
		if ce, ok := err.(*errors.Error); ok && ce.Location != nil && ce.Location.File == "" {
			ce.WithLocation(path, ce.Location.Line, ce.Location.Column)
		}
		return nil, err
	}
	return sheet, nil
}

// IsStyleFile reports whether path has a supported extension.
func IsStyleFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ComponentName derives a component name from a style file path:
// "styles/Card.style.yaml" names the component "Card".
func ComponentName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSuffix(name, ".style")
}
