package style

import (
	"fmt"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/componentx/internal/errors"
)

// ParseJSON decodes a JSON style description, keeping key order.
//
// Objects become blocks; strings, numbers and booleans become declaration
// values (numbers and booleans as written). Arrays and null are rejected.
func ParseJSON(data []byte) (Sheet, error) {
	return parseJSONObject(data, "")
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sheet) UnmarshalJSON(data []byte) error {
	sheet, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*s = sheet
	return nil
}

func parseJSONObject(data []byte, path string) (Sheet, error) {
	sheet := Sheet{}
	err := jsonparser.ObjectEach(data, func(rawKey, value []byte, dt jsonparser.ValueType, _ int) error {
		// ObjectEach hands over keys already unescaped.
		key := string(rawKey)
		keyPath := joinPath(path, key)

		switch dt {
		case jsonparser.Object:
			rules, err := parseJSONObject(value, keyPath)
			if err != nil {
				return err
			}
			sheet = append(sheet, Entry{Key: key, Rules: rules})
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return errors.New("E110").WithDetail(fmt.Sprintf("bad string at %q", keyPath)).Wrap(err)
			}
			sheet = append(sheet, Decl(key, s))
		case jsonparser.Number, jsonparser.Boolean:
			sheet = append(sheet, Decl(key, string(value)))
		default:
			return errors.New("E110").
				WithDetail(fmt.Sprintf("%q: unsupported %s value", keyPath, dt)).
				WithSuggestion("Use an object for nested selectors and a string for declaration values")
		}
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.Error); ok {
			return nil, err
		}
		return nil, errors.New("E110").WithDetail("malformed JSON object").Wrap(err)
	}
	return sheet, nil
}

// ParseYAML decodes a YAML style description, keeping key order.
func ParseYAML(data []byte) (Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		if ce, ok := err.(*errors.Error); ok {
			return nil, ce
		}
		return nil, errors.New("E110").WithDetail("malformed YAML").Wrap(err)
	}
	if s == nil {
		s = Sheet{}
	}
	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sheet) UnmarshalYAML(node *yaml.Node) error {
	sheet, err := sheetFromNode(node, "")
	if err != nil {
		return err
	}
	*s = sheet
	return nil
}

func sheetFromNode(node *yaml.Node, path string) (Sheet, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, fmt.Sprintf("%q: expected a mapping", path))
	}

	sheet := make(Sheet, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		keyPath := joinPath(path, key)

		if valNode.Kind == yaml.AliasNode {
			valNode = valNode.Alias
		}
		switch valNode.Kind {
		case yaml.MappingNode:
			rules, err := sheetFromNode(valNode, keyPath)
			if err != nil {
				return nil, err
			}
			sheet = append(sheet, Entry{Key: key, Rules: rules})
		case yaml.ScalarNode:
			if valNode.Tag == "!!null" {
				return nil, nodeError(keyNode, fmt.Sprintf("%q: missing value", keyPath))
			}
			sheet = append(sheet, Decl(key, valNode.Value))
		default:
			return nil, nodeError(valNode, fmt.Sprintf("%q: unsupported value", keyPath))
		}
	}
	return sheet, nil
}

func nodeError(node *yaml.Node, detail string) *errors.Error {
	err := errors.New("E110").WithDetail(detail)
	err.Location = &errors.Location{Line: node.Line, Column: node.Column}
	return err
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + " > " + key
}
