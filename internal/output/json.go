package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON audit output
type jsonOutput struct {
	Version          string         `json:"version"`
	Path             string         `json:"path"`
	Files            int            `json:"files"`
	Findings         []*jsonFinding `json:"findings"`
	Summary          types.Summary  `json:"summary"`
	Result           string         `json:"result"`
	FailOnUnresolved bool           `json:"fail_on_unresolved"`
}

// jsonFinding adds the computed status to a finding
type jsonFinding struct {
	Status types.Status `json:"status"`
	*types.Finding
}

type jsonResolutions struct {
	Version     string              `json:"version"`
	Resolutions []*types.Resolution `json:"resolutions"`
}

type jsonList struct {
	Version string     `json:"version"`
	Items   []ListItem `json:"items"`
}

// Render writes the check result in JSON format
func (r *JSONRenderer) Render(w io.Writer, result *types.CheckResult) error {
	findings := make([]*jsonFinding, 0, len(result.Findings))
	for _, f := range result.Findings {
		findings = append(findings, &jsonFinding{Status: f.Status(), Finding: f})
	}

	output := jsonOutput{
		Version:          "1.0",
		Path:             result.Path,
		Files:            result.Files,
		Findings:         findings,
		Summary:          result.Summary,
		Result:           result.Result,
		FailOnUnresolved: result.FailOnUnresolved,
	}
	return encode(w, output)
}

// RenderResolutions writes the resolutions as a JSON document
func (r *JSONRenderer) RenderResolutions(w io.Writer, resolutions []*types.Resolution) error {
	if resolutions == nil {
		resolutions = []*types.Resolution{}
	}
	return encode(w, jsonResolutions{Version: "1.0", Resolutions: resolutions})
}

// RenderExplanation writes the explanation as a JSON document
func (r *JSONRenderer) RenderExplanation(w io.Writer, e *rules.Explanation) error {
	return encode(w, e)
}

// RenderList writes the items as a JSON document
func (r *JSONRenderer) RenderList(w io.Writer, items []ListItem) error {
	if items == nil {
		items = []ListItem{}
	}
	return encode(w, jsonList{Version: "1.0", Items: items})
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
