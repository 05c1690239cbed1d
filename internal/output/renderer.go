package output

import (
	"fmt"
	"io"

	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

// Renderer defines the interface for audit output renderers
type Renderer interface {
	// Render writes the check result to the writer
	Render(w io.Writer, result *types.CheckResult) error
}

// LookupRenderer renders the results of resolve, explain and list
type LookupRenderer interface {
	RenderResolutions(w io.Writer, resolutions []*types.Resolution) error
	RenderExplanation(w io.Writer, e *rules.Explanation) error
	RenderList(w io.Writer, items []ListItem) error
}

// ListItem is one row of a table listing
type ListItem struct {
	// Name is the canonical name or synonym
	Name string `json:"name"`

	// Target is the slug of a canonical entry or the canonical name of a synonym
	Target string `json:"target"`

	// Source is the layer of a canonical entry; empty for synonyms
	Source string `json:"source,omitempty"`
}

// Format represents an output format
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatCompact    Format = "compact"
	FormatCheckstyle Format = "checkstyle"
)

// NewRenderer creates an audit renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatCompact:
		return &CompactRenderer{}
	case FormatCheckstyle:
		return &CheckstyleRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}

// NewLookupRenderer creates a lookup renderer for the given format.
// Checkstyle describes files and has no lookup form.
func NewLookupRenderer(format Format, colorEnabled bool) (LookupRenderer, error) {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatCompact:
		return &CompactRenderer{}, nil
	case FormatCheckstyle:
		return nil, fmt.Errorf("format %q is only supported by check", format)
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}, nil
	}
}

// ValidFormats returns every supported format name
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatCompact),
		string(FormatCheckstyle),
	}
}

// IsValidFormat reports whether format names a supported format
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}
