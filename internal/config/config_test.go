package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.BasePath() != "" {
		t.Errorf("expected built-in index, got %s", cfg.BasePath())
	}
	if cfg.MaxHops() != 1 {
		t.Errorf("expected max_hops 1, got %d", cfg.MaxHops())
	}
	if !cfg.SuggestEnabled() {
		t.Error("expected suggestions to be enabled by default")
	}
	if cfg.SuggestThreshold() != DefaultSuggestThreshold {
		t.Errorf("expected threshold %v, got %v", DefaultSuggestThreshold, cfg.SuggestThreshold())
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected format 'text', got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected color 'auto', got %s", cfg.Output.Color)
	}
	if cfg.BaseURL() != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, cfg.BaseURL())
	}
	if diff := cmp.Diff([]string{"name_en"}, cfg.Paths.LabelKeys); diff != "" {
		t.Errorf("label keys mismatch (-want +got):\n%s", diff)
	}
	if cfg.Policy.FailOnUnresolved {
		t.Error("expected fail_on_unresolved to be false by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	configContent := `
version = 1

tables {
  base = "data/rules-index-export.json"
}

resolver {
  max_hops = 2
}

suggest {
  enabled   = false
  threshold = 0.9
}

output {
  format   = "json"
  color    = "never"
  base_url = "https://rules.example/"
}

paths {
  include    = ["armies/**/*.json"]
  label_keys = ["name_en", "name_de"]
}

policy {
  fail_on_unresolved = true
}

rule "Halberd" {
  url = "${category.weapons_of_war}/${slug("Halberd")}"
}

rule "Great Weapon" {
  url = format("%s/%s", category.weapons_of_war, "great-weapon")
}

synonym "Bucklers" {
  canonical = lower("Shield")
}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ConfigPath() != configPath {
		t.Errorf("ConfigPath() = %s, want %s", cfg.ConfigPath(), configPath)
	}
	if want := filepath.Join(tmpDir, "data", "rules-index-export.json"); cfg.BasePath() != want {
		t.Errorf("BasePath() = %s, want %s", cfg.BasePath(), want)
	}
	if cfg.MaxHops() != 2 {
		t.Errorf("MaxHops() = %d, want 2", cfg.MaxHops())
	}
	if cfg.SuggestEnabled() {
		t.Error("expected suggestions to be disabled")
	}
	if cfg.SuggestThreshold() != 0.9 {
		t.Errorf("SuggestThreshold() = %v, want 0.9", cfg.SuggestThreshold())
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "never" {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
	if cfg.BaseURL() != "https://rules.example/" {
		t.Errorf("BaseURL() = %s", cfg.BaseURL())
	}

	// include overridden, exclude defaulted
	if diff := cmp.Diff([]string{"armies/**/*.json"}, cfg.Paths.Include); diff != "" {
		t.Errorf("include mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.Paths.Exclude) != 2 {
		t.Errorf("expected default excludes, got %v", cfg.Paths.Exclude)
	}
	if !cfg.Policy.FailOnUnresolved {
		t.Error("expected fail_on_unresolved")
	}

	wantRules := map[string]string{
		"halberd":      "weapons-of-war/halberd",
		"great weapon": "weapons-of-war/great-weapon",
	}
	if diff := cmp.Diff(wantRules, cfg.RuleMap()); diff != "" {
		t.Errorf("RuleMap mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"bucklers": "shield"}, cfg.SynonymMap()); diff != "" {
		t.Errorf("SynonymMap mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.owbrules.hcl", "")
	if err == nil {
		t.Error("expected error for nonexistent config")
	}
}

func TestLoadDefaultsWhenNoConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load("", tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ConfigPath() != "" {
		t.Errorf("expected no config path, got %s", cfg.ConfigPath())
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %s", cfg.Output.Format)
	}
}

func TestLoadFindsConfigInDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output {\n  format = \"compact\"\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load("", tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ConfigPath() != configPath {
		t.Errorf("ConfigPath() = %s, want %s", cfg.ConfigPath(), configPath)
	}
	if cfg.Version != 1 {
		t.Errorf("expected version to default to 1, got %d", cfg.Version)
	}
	if cfg.Output.Format != "compact" || cfg.Output.Color != "auto" {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid syntax",
			content: "version = 1\nthis is not valid HCL {\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "unsupported version",
			content: "version = 2",
			wantErr: "unsupported config version",
		},
		{
			name:    "unknown block",
			content: "plugins {}\n",
			wantErr: "failed to decode config",
		},
		{
			name:    "unknown function",
			content: "rule \"halberd\" {\n  url = nope(\"x\")\n}\n",
			wantErr: "failed to decode config",
		},
		{
			name:    "invalid format",
			content: "output {\n  format = \"sarif\"\n}\n",
			wantErr: "invalid output format",
		},
		{
			name:    "invalid color",
			content: "output {\n  color = \"sometimes\"\n}\n",
			wantErr: "invalid color mode",
		},
		{
			name:    "relative base url",
			content: "output {\n  base_url = \"rules/\"\n}\n",
			wantErr: "invalid base_url",
		},
		{
			name:    "max hops too large",
			content: "resolver {\n  max_hops = 9\n}\n",
			wantErr: "invalid max_hops",
		},
		{
			name:    "threshold zero",
			content: "suggest {\n  threshold = 0\n}\n",
			wantErr: "invalid suggest threshold",
		},
		{
			name:    "bad glob",
			content: "paths {\n  include = [\"[oops\"]\n}\n",
			wantErr: "invalid path pattern",
		},
		{
			name:    "absolute slug",
			content: "rule \"halberd\" {\n  url = \"/weapons-of-war/halberd\"\n}\n",
			wantErr: "invalid url for rule",
		},
		{
			name:    "url as slug",
			content: "rule \"halberd\" {\n  url = \"https://tow.whfb.app/halberd\"\n}\n",
			wantErr: "invalid url for rule",
		},
		{
			name:    "blank rule name",
			content: "rule \" \" {\n  url = \"a/b\"\n}\n",
			wantErr: "rule name must not be empty",
		},
		{
			name:    "missing rule url",
			content: "rule \"halberd\" {}\n",
			wantErr: "failed to decode config",
		},
		{
			name:    "blank canonical",
			content: "synonym \"bucklers\" {\n  canonical = \"\"\n}\n",
			wantErr: "must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), "test.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigHCLParses(t *testing.T) {
	cfg, err := Parse([]byte(DefaultConfigHCL()), "starter.hcl")
	if err != nil {
		t.Fatalf("starter config does not parse: %v", err)
	}
	if diff := cmp.Diff(Default().Paths, cfg.Paths); diff != "" {
		t.Errorf("starter paths differ from defaults (-want +got):\n%s", diff)
	}
	if cfg.BaseURL() != DefaultBaseURL || cfg.MaxHops() != DefaultMaxHops {
		t.Errorf("starter config differs from defaults: %s, %d", cfg.BaseURL(), cfg.MaxHops())
	}
}

func TestRuleMapLastBlockWins(t *testing.T) {
	cfg, err := Parse([]byte(`
rule "halberd" {
  url = "a/first"
}
rule "HALBERD" {
  url = "a/second"
}
`), "test.hcl")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := cfg.RuleMap()["halberd"]; got != "a/second" {
		t.Errorf("halberd = %q, want a/second", got)
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr bool
	}{
		{"weapons-of-war/halberd", false},
		{"magic", false},
		{"", true},
		{"/magic", true},
		{"magic/", true},
		{"a//b", true},
		{"a/../b", true},
		{"http://x/y", true},
	}

	for _, tt := range tests {
		err := ValidateSlug(tt.slug)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSlug(%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
		}
	}
}
