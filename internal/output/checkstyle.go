package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	"github.com/jokarl/owbrules/internal/types"
)

// CheckstyleRenderer renders audit output in Checkstyle XML format
// This format is compatible with many CI/CD tools and code quality platforms
type CheckstyleRenderer struct{}

// checkstyleOutput is the root element for Checkstyle XML
type checkstyleOutput struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

// checkstyleFile represents a file element in Checkstyle XML
type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

// checkstyleError represents an error element in Checkstyle XML.
// Army data has no line information, so the JSON pointer goes in the message.
type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// Render writes the check result in Checkstyle XML format
func (r *CheckstyleRenderer) Render(w io.Writer, result *types.CheckResult) error {
	// Group findings by file
	fileMap := make(map[string][]checkstyleError)

	for _, f := range result.Findings {
		status := f.Status()
		if status == types.StatusResolved {
			continue
		}

		message := fmt.Sprintf("%s: %s label %q%s", f.Pointer, status, f.Label, findingHint(f))
		fileMap[f.File] = append(fileMap[f.File], checkstyleError{
			Severity: mapToCheckstyleSeverity(status, result.FailOnUnresolved),
			Message:  message,
			Source:   "owbrules." + string(status),
		})
	}

	// Build the output structure
	output := checkstyleOutput{
		Version: "1.0",
		Files:   make([]checkstyleFile, 0, len(fileMap)),
	}

	names := make([]string, 0, len(fileMap))
	for name := range fileMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		output.Files = append(output.Files, checkstyleFile{
			Name:   name,
			Errors: fileMap[name],
		})
	}

	// Write XML header
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	// Encode XML
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// mapToCheckstyleSeverity maps a finding status to a Checkstyle severity.
// Findings are errors only when the policy fails on them.
func mapToCheckstyleSeverity(s types.Status, failOnUnresolved bool) string {
	switch {
	case failOnUnresolved:
		return "error"
	case s == types.StatusUnresolved:
		return "warning"
	default:
		return "info"
	}
}
