package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Source identifies the table layer that supplied a rule entry
type Source int

const (
	// SourceBase is the generated rules index
	SourceBase Source = iota
	// SourceOverlay is the hand-curated overlay merged on top of the index
	SourceOverlay
	// SourceConfig is a rule declared in the user's configuration file
	SourceConfig
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceBase:
		return "base"
	case SourceOverlay:
		return "overlay"
	case SourceConfig:
		return "config"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Source) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSource(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSource parses a string into a Source
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return SourceBase, nil
	case "overlay":
		return SourceOverlay, nil
	case "config":
		return SourceConfig, nil
	default:
		return SourceBase, fmt.Errorf("unknown source: %s", s)
	}
}
