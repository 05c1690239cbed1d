package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"

	"github.com/jokarl/owbrules/internal/types"
)

// DefaultLabelKeys are the object keys whose string values hold rule labels
var DefaultLabelKeys = []string{"name_en"}

// LoadLabels reads an army data file and returns every non-blank string
// stored under one of keys, at any depth, in document order.
func LoadLabels(path string, keys []string, logger hclog.Logger) ([]types.Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read army data: %w", err)
	}

	labels, err := ParseLabels(data, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to parse army data %s: %w", path, err)
	}

	if logger != nil {
		logger.Debug("loaded army data", "path", path, "labels", len(labels))
	}
	return labels, nil
}

// ParseLabels extracts labels from army data JSON
func ParseLabels(data []byte, keys []string) ([]types.Label, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	if len(keys) == 0 {
		keys = DefaultLabelKeys
	}

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	var labels []types.Label
	collectLabels(gjson.ParseBytes(data), "", want, &labels)
	return labels, nil
}

func collectLabels(value gjson.Result, pointer string, keys map[string]bool, labels *[]types.Label) {
	switch {
	case value.IsObject():
		value.ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			p := pointer + "/" + escapePointer(key)
			if keys[key] && v.Type == gjson.String {
				if text := v.String(); strings.TrimSpace(text) != "" {
					*labels = append(*labels, types.Label{Text: text, Pointer: p})
				}
				return true
			}
			collectLabels(v, p, keys, labels)
			return true
		})
	case value.IsArray():
		i := 0
		value.ForEach(func(_, v gjson.Result) bool {
			collectLabels(v, pointer+"/"+strconv.Itoa(i), keys, labels)
			i++
			return true
		})
	}
}

// escapePointer escapes a reference token per RFC 6901
func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
