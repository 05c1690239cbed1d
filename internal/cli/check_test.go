package cli

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func scenarioDir(name string) string {
	return filepath.Join("..", "..", "testdata", "scenarios", name)
}

func TestCheck_Clean(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--fail-on-unresolved", scenarioDir("clean"))
	if err != nil {
		t.Fatalf("check error: %v\n%s", err, out)
	}

	if !strings.Contains(out, "(1 files)") {
		t.Errorf("expected file count in header:\n%s", out)
	}
	if !strings.Contains(out, "Summary: 8 resolved of 8 labels") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "Result: PASS") {
		t.Errorf("expected PASS:\n%s", out)
	}
}

func TestCheck_UnresolvedPassesByDefault(t *testing.T) {
	out, err := executeCommand(t, "", "check", scenarioDir("unresolved"))
	if err != nil {
		t.Fatalf("check error: %v", err)
	}

	for _, want := range []string{"UNRESOLVED  bretonnia.json", "PARTIAL  bretonnia.json", "Result: PASS"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Not checked") {
		t.Error("dump files should be excluded")
	}
}

func TestCheck_FailOnUnresolved(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--fail-on-unresolved", scenarioDir("unresolved"))
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if !strings.Contains(out, "Result: FAIL") {
		t.Errorf("expected FAIL:\n%s", out)
	}
}

func TestCheck_PolicyFromConfig(t *testing.T) {
	path := writeConfig(t, "policy {\n  fail_on_unresolved = true\n}\n")

	_, err := executeCommand(t, "", "check", "--config", path, scenarioDir("unresolved"))
	if !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}
}

func TestCheck_QuietOnPass(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--quiet", scenarioDir("clean"))
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got:\n%s", out)
	}
}

func TestCheck_Formats(t *testing.T) {
	dir := scenarioDir("unresolved")

	out, err := executeCommand(t, "", "check", "--format", "json", dir)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Errorf("invalid JSON: %v", err)
	}
	if parsed["result"] != "PASS" {
		t.Errorf("result = %v", parsed["result"])
	}

	out, err = executeCommand(t, "", "check", "--format", "checkstyle", dir)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.HasPrefix(out, xml.Header) {
		t.Errorf("expected XML output, got:\n%s", out)
	}

	out, err = executeCommand(t, "", "check", "--format", "compact", dir)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 2 {
		t.Errorf("expected 2 compact lines, got:\n%s", out)
	}
}

func TestCheck_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.json")

	out, err := executeCommand(t, "", "check", "--format", "json", "-o", outPath, scenarioDir("clean"))
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout, got:\n%s", out)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(content), `"result": "PASS"`) {
		t.Errorf("unexpected report:\n%s", content)
	}
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing directory", []string{"check", filepath.Join(t.TempDir(), "missing")}},
		{"no arguments", []string{"check"}},
		{"invalid color", []string{"check", "--color", "rainbow", scenarioDir("clean")}},
		{"missing config", []string{"check", "--config", "/nonexistent/.owbrules.hcl", scenarioDir("clean")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(t, "", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestShouldUseColor(t *testing.T) {
	var buf strings.Builder
	if !shouldUseColor(&buf, "always") {
		t.Error("always should enable color")
	}
	if shouldUseColor(os.Stdout, "never") {
		t.Error("never should disable color")
	}
	if shouldUseColor(&buf, "auto") {
		t.Error("auto should disable color for non-terminal writers")
	}
}
