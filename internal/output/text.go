package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the check result in text format. Resolved labels are counted
// but not listed.
func (r *TextRenderer) Render(w io.Writer, result *types.CheckResult) error {
	// Header
	fmt.Fprintf(w, "owbrules: checking %s (%d files)\n\n", result.Path, result.Files)

	// Findings
	for _, f := range result.Findings {
		if f.Status() == types.StatusResolved {
			continue
		}
		r.renderFinding(w, f)
	}

	// Separator
	fmt.Fprintln(w, strings.Repeat("-", 60))

	// Summary
	r.renderSummary(w, result)

	// Result
	r.renderResult(w, result)

	return nil
}

func (r *TextRenderer) renderFinding(w io.Writer, f *types.Finding) {
	status := f.Status()
	fmt.Fprintf(w, "%s  %s\n", r.colorStatus(status), f.File)
	fmt.Fprintf(w, "  %s  %q\n", f.Pointer, f.Label)

	if len(f.Parts) == 0 {
		if s := f.Resolution.Suggestion; s != nil {
			fmt.Fprintf(w, "  %s\n", r.didYouMean(s))
		}
		fmt.Fprintln(w)
		return
	}

	for _, p := range f.Parts {
		if p.Resolved() {
			fmt.Fprintf(w, "    %s -> %s\n", p.Name, p.Slug)
			continue
		}
		line := fmt.Sprintf("    %s: %s", p.Name, r.colorStatus(types.StatusUnresolved))
		if p.Suggestion != nil {
			line += ", " + r.didYouMean(p.Suggestion)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

func (r *TextRenderer) renderSummary(w io.Writer, result *types.CheckResult) {
	s := result.Summary
	if s.Total == 0 {
		fmt.Fprintln(w, "Summary: no labels found")
		return
	}

	parts := []string{fmt.Sprintf("%d resolved", s.Resolved)}
	if s.Partial > 0 {
		parts = append(parts, fmt.Sprintf("%d partial", s.Partial))
	}
	if s.Unresolved > 0 {
		parts = append(parts, fmt.Sprintf("%d unresolved", s.Unresolved))
	}
	summary := strings.Join(parts, ", ")
	if s.Suggested > 0 {
		summary += fmt.Sprintf(" (%d with suggestions)", s.Suggested)
	}

	fmt.Fprintf(w, "Summary: %s of %d labels\n", summary, s.Total)
}

func (r *TextRenderer) renderResult(w io.Writer, result *types.CheckResult) {
	if result.Result == "PASS" {
		fmt.Fprintf(w, "Result: %s\n", r.paint("PASS", color.FgGreen))
	} else {
		fmt.Fprintf(w, "Result: %s (unresolved labels)\n", r.paint("FAIL", color.FgRed))
	}
}

// RenderResolutions writes one aligned row per resolution
func (r *TextRenderer) RenderResolutions(w io.Writer, resolutions []*types.Resolution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range resolutions {
		if !res.Resolved() {
			row := fmt.Sprintf("%s\t%s", res.Input, r.colorStatus(types.StatusUnresolved))
			if res.Suggestion != nil {
				row += "\t" + r.didYouMean(res.Suggestion)
			}
			fmt.Fprintln(tw, row)
			continue
		}

		target := res.Slug
		if res.URL != "" {
			target = res.URL
		}
		detail := res.Source.String()
		if res.Synonym {
			detail = "via " + res.Canonical + ", " + detail
		}
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", res.Input, target, detail)
	}
	return tw.Flush()
}

// RenderExplanation writes each step of a resolution
func (r *TextRenderer) RenderExplanation(w io.Writer, e *rules.Explanation) error {
	res := e.Resolution
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "input:\t%q\n", res.Input)
	fmt.Fprintf(tw, "normalized:\t%q\n", res.Name)
	if len(e.Trace.Hops) > 0 {
		chain := append([]string{e.Trace.Name}, e.Trace.Hops...)
		fmt.Fprintf(tw, "synonyms:\t%s\t(max %d hops)\n", strings.Join(chain, " -> "), e.MaxHops)
	}
	if e.Trace.Cycle {
		fmt.Fprintf(tw, "result:\t%s\t(synonym cycle)\n", r.colorStatus(types.StatusUnresolved))
		return tw.Flush()
	}
	fmt.Fprintf(tw, "lookup:\t%q\n", e.Trace.Canonical)

	if !res.Resolved() {
		fmt.Fprintf(tw, "result:\t%s\n", r.colorStatus(types.StatusUnresolved))
		if res.Suggestion != nil {
			fmt.Fprintf(tw, "hint:\t%s\n", r.didYouMean(res.Suggestion))
		}
		return tw.Flush()
	}

	fmt.Fprintf(tw, "result:\t%s\t(%s)\n", res.Slug, res.Source)
	if res.URL != "" {
		fmt.Fprintf(tw, "url:\t%s\n", res.URL)
	}
	return tw.Flush()
}

// RenderList writes one aligned row per item
func (r *TextRenderer) RenderList(w io.Writer, items []ListItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range items {
		if item.Source != "" {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Name, item.Target, item.Source)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", item.Name, item.Target)
		}
	}
	return tw.Flush()
}

func (r *TextRenderer) didYouMean(s *types.Suggestion) string {
	return fmt.Sprintf("did you mean %s? (%.2f)", r.paint(fmt.Sprintf("%q", s.Name), color.FgCyan), s.Similarity)
}

func (r *TextRenderer) colorStatus(s types.Status) string {
	str := strings.ToUpper(string(s))
	switch s {
	case types.StatusUnresolved:
		return r.paint(str, color.FgRed, color.Bold)
	case types.StatusPartial:
		return r.paint(str, color.FgYellow)
	default:
		return r.paint(str, color.FgGreen)
	}
}

// paint colors s when color is enabled, regardless of whether stdout is a terminal
func (r *TextRenderer) paint(s string, attrs ...color.Attribute) string {
	if !r.ColorEnabled {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
