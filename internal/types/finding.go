package types

// Status classifies how well a label resolved
type Status string

const (
	StatusResolved   Status = "resolved"
	StatusPartial    Status = "partial"
	StatusUnresolved Status = "unresolved"
)

// Finding records the resolution of a single label found during an audit
type Finding struct {
	// File is the army data file, relative to the audited directory
	File string `json:"file"`

	// Pointer locates the label inside File
	Pointer string `json:"pointer"`

	// Label is the raw label text
	Label string `json:"label"`

	// Resolution is the outcome for the whole label
	Resolution *Resolution `json:"resolution"`

	// Parts holds per-item outcomes when an unresolved label was split as a list
	Parts []*Resolution `json:"parts,omitempty"`
}

// Status returns the finding's status
func (f *Finding) Status() Status {
	if f.Resolution.Resolved() {
		return StatusResolved
	}
	if len(f.Parts) == 0 {
		return StatusUnresolved
	}
	resolved := 0
	for _, p := range f.Parts {
		if p.Resolved() {
			resolved++
		}
	}
	switch resolved {
	case len(f.Parts):
		return StatusResolved
	case 0:
		return StatusUnresolved
	default:
		return StatusPartial
	}
}

// Suggested reports whether any unresolved part of the finding carries a suggestion
func (f *Finding) Suggested() bool {
	if f.Resolution.Resolved() {
		return false
	}
	if f.Resolution != nil && f.Resolution.Suggestion != nil {
		return true
	}
	for _, p := range f.Parts {
		if !p.Resolved() && p.Suggestion != nil {
			return true
		}
	}
	return false
}

// CheckResult represents the result of auditing a directory of army data
type CheckResult struct {
	// Path is the audited directory
	Path string `json:"path"`

	// Files is the number of files scanned
	Files int `json:"files"`

	// Findings is the list of all findings
	Findings []*Finding `json:"findings"`

	// Summary contains counts by status
	Summary Summary `json:"summary"`

	// Result is PASS or FAIL based on the policy
	Result string `json:"result"`

	// FailOnUnresolved is the policy used for the result
	FailOnUnresolved bool `json:"fail_on_unresolved"`
}

// Summary contains counts of findings by status
type Summary struct {
	Resolved   int `json:"resolved"`
	Partial    int `json:"partial"`
	Unresolved int `json:"unresolved"`
	Suggested  int `json:"suggested"`
	Total      int `json:"total"`
}

// NewCheckResult creates a new CheckResult
func NewCheckResult(path string, failOnUnresolved bool) *CheckResult {
	return &CheckResult{
		Path:             path,
		Findings:         make([]*Finding, 0),
		FailOnUnresolved: failOnUnresolved,
	}
}

// AddFinding adds a finding to the result
func (r *CheckResult) AddFinding(f *Finding) {
	r.Findings = append(r.Findings, f)
}

// Compute calculates the summary and result
func (r *CheckResult) Compute() {
	r.Summary = Summary{}
	for _, f := range r.Findings {
		switch f.Status() {
		case StatusResolved:
			r.Summary.Resolved++
		case StatusPartial:
			r.Summary.Partial++
		case StatusUnresolved:
			r.Summary.Unresolved++
		}
		if f.Suggested() {
			r.Summary.Suggested++
		}
	}
	r.Summary.Total = len(r.Findings)

	failed := r.FailOnUnresolved && (r.Summary.Unresolved > 0 || r.Summary.Partial > 0)
	if failed {
		r.Result = "FAIL"
	} else {
		r.Result = "PASS"
	}
}
