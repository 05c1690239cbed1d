package types

// Resolution is the outcome of resolving one label against the rule tables
type Resolution struct {
	// Input is the label as supplied by the caller
	Input string `json:"input"`

	// Name is the normalized label used for lookup
	Name string `json:"name"`

	// Canonical is the table key that was looked up after synonym rewriting
	Canonical string `json:"canonical,omitempty"`

	// Slug is the relative rules-page path; empty when unresolved
	Slug string `json:"slug,omitempty"`

	// URL is Slug joined to the configured base URL
	URL string `json:"url,omitempty"`

	// Source is the table layer the entry came from; nil when unresolved
	Source *Source `json:"source,omitempty"`

	// Synonym reports whether a synonym rewrite happened
	Synonym bool `json:"synonym,omitempty"`

	// Suggestion is the closest known name for an unresolved label
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Resolved reports whether a slug was found
func (r *Resolution) Resolved() bool {
	return r != nil && r.Slug != ""
}

// Suggestion is a "did you mean" candidate
type Suggestion struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// Label is a rule-bearing string found in an army data file
type Label struct {
	// Text is the raw label
	Text string `json:"text"`

	// Pointer is the RFC 6901 JSON pointer of the value within its file
	Pointer string `json:"pointer"`
}

// LabelFile holds the labels extracted from one army data file
type LabelFile struct {
	// Path is relative to the audited directory
	Path   string  `json:"path"`
	Labels []Label `json:"labels"`
}
