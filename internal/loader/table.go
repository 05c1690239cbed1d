package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a rules index file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension. Anything that is not
// YAML is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadTable reads a rules index file mapping canonical names to
// {"url": "<slug>"} objects.
func LoadTable(path string, logger hclog.Logger) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules index: %w", err)
	}

	entries, err := ParseTable(data, FormatForPath(path), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules index %s: %w", path, err)
	}
	return entries, nil
}

// ParseTable decodes a rules index. The document must be an object; entries
// whose url is missing, empty or not a string are skipped.
func ParseTable(data []byte, format Format, logger hclog.Logger) (map[string]string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	switch format {
	case FormatYAML:
		return parseYAMLTable(data, logger)
	case FormatJSON, "":
		return parseJSONTable(data, logger)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", format)
	}
}

func parseJSONTable(data []byte, logger hclog.Logger) (map[string]string, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("rules index must be an object, got %s", jsonKind(doc))
	}

	entries := make(map[string]string)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		url := value.Get("url")
		if !value.IsObject() || url.Type != gjson.String || url.String() == "" {
			logger.Debug("skipping rules index entry without url", "name", name)
			return true
		}
		entries[name] = url.String()
		return true
	})
	return entries, nil
}

func parseYAMLTable(data []byte, logger hclog.Logger) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make(map[string]string)
	if doc.Kind == 0 {
		return entries, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rules index must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		url, ok := yamlURL(root.Content[i+1])
		if !ok {
			logger.Debug("skipping rules index entry without url", "name", name)
			continue
		}
		entries[name] = url
	}
	return entries, nil
}

func yamlURL(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value != "url" {
			continue
		}
		if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" || v.Value == "" {
			return "", false
		}
		return v.Value, true
	}
	return "", false
}

// jsonKind names the JSON type of a parsed document
func jsonKind(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	if r.IsArray() {
		return "array"
	}
	return "object"
}
