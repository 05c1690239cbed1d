package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

// CompactRenderer renders output in a condensed single-line-per-item format
// This format is useful for logs and scripting
type CompactRenderer struct{}

// Render writes the check result in compact format
// Format: file:pointer: status: "label" [hint]
func (r *CompactRenderer) Render(w io.Writer, result *types.CheckResult) error {
	for _, f := range result.Findings {
		status := f.Status()
		if status == types.StatusResolved {
			continue
		}

		fmt.Fprintf(w, "%s:%s: %s: %q%s\n", f.File, f.Pointer, status, f.Label, findingHint(f))
	}

	return nil
}

// findingHint lists the suggestions of a finding's unresolved items
func findingHint(f *types.Finding) string {
	var hints []string
	if len(f.Parts) == 0 {
		if s := f.Resolution.Suggestion; s != nil {
			hints = append(hints, s.Name)
		}
	}
	for _, p := range f.Parts {
		if !p.Resolved() && p.Suggestion != nil {
			hints = append(hints, p.Suggestion.Name)
		}
	}
	if len(hints) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", strings.Join(hints, ", "))
}

// RenderResolutions writes "input<TAB>slug" per resolution, "-" when unresolved
func (r *CompactRenderer) RenderResolutions(w io.Writer, resolutions []*types.Resolution) error {
	for _, res := range resolutions {
		slug := res.Slug
		if !res.Resolved() {
			slug = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", res.Input, slug)
	}
	return nil
}

// RenderExplanation writes the synonym chain and the outcome on one line
func (r *CompactRenderer) RenderExplanation(w io.Writer, e *rules.Explanation) error {
	chain := append([]string{e.Trace.Name}, e.Trace.Hops...)
	outcome := "-"
	switch {
	case e.Trace.Cycle:
		outcome = "cycle"
	case e.Resolution.Resolved():
		outcome = e.Resolution.Slug
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", strings.Join(chain, " -> "), outcome)
	return err
}

// RenderList writes "name<TAB>target" per item
func (r *CompactRenderer) RenderList(w io.Writer, items []ListItem) error {
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item.Name, item.Target)
	}
	return nil
}
