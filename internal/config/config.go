// Package config handles loading and validating owbrules configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jokarl/owbrules/internal/label"
)

// FileName is the configuration file searched for by Load
const FileName = ".owbrules.hcl"

// Config represents the owbrules configuration
type Config struct {
	Version  int              `hcl:"version,optional"`
	Tables   *TablesConfig    `hcl:"tables,block"`
	Resolver *ResolverConfig  `hcl:"resolver,block"`
	Suggest  *SuggestConfig   `hcl:"suggest,block"`
	Output   *OutputConfig    `hcl:"output,block"`
	Paths    *PathsConfig     `hcl:"paths,block"`
	Policy   *PolicyConfig    `hcl:"policy,block"`
	Rules    []*RuleConfig    `hcl:"rule,block"`
	Synonyms []*SynonymConfig `hcl:"synonym,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// TablesConfig selects the rules index
type TablesConfig struct {
	// Base is a rules index file replacing the built-in one
	Base string `hcl:"base,optional"`
}

// ResolverConfig defines synonym resolution settings
type ResolverConfig struct {
	MaxHops *int `hcl:"max_hops,optional"`
}

// SuggestConfig defines "did you mean" settings
type SuggestConfig struct {
	Enabled   *bool    `hcl:"enabled,optional"`
	Threshold *float64 `hcl:"threshold,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format  string  `hcl:"format,optional"`
	Color   string  `hcl:"color,optional"`
	BaseURL *string `hcl:"base_url,optional"`
}

// PathsConfig defines which army data files are audited
type PathsConfig struct {
	Include   []string `hcl:"include,optional"`
	Exclude   []string `hcl:"exclude,optional"`
	LabelKeys []string `hcl:"label_keys,optional"`
}

// PolicyConfig defines CI policy settings
type PolicyConfig struct {
	FailOnUnresolved bool `hcl:"fail_on_unresolved,optional"`
}

// RuleConfig declares an extra canonical name and its rules page
type RuleConfig struct {
	Name string `hcl:"name,label"`
	URL  string `hcl:"url,attr"`
}

// SynonymConfig declares an extra synonym
type SynonymConfig struct {
	Name      string `hcl:"name,label"`
	Canonical string `hcl:"canonical,attr"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// BasePath returns the rules index path, resolved against the config file's
// directory when relative. Empty means the built-in index.
func (c *Config) BasePath() string {
	if c.Tables == nil || c.Tables.Base == "" {
		return ""
	}
	if filepath.IsAbs(c.Tables.Base) || c.configPath == "" {
		return c.Tables.Base
	}
	return filepath.Join(filepath.Dir(c.configPath), c.Tables.Base)
}

// MaxHops returns the configured synonym chain length
func (c *Config) MaxHops() int {
	if c.Resolver == nil || c.Resolver.MaxHops == nil {
		return DefaultMaxHops
	}
	return *c.Resolver.MaxHops
}

// SuggestEnabled returns whether suggestions are enabled
func (c *Config) SuggestEnabled() bool {
	if c.Suggest == nil || c.Suggest.Enabled == nil {
		return true // enabled by default
	}
	return *c.Suggest.Enabled
}

// SuggestThreshold returns the minimum suggestion similarity
func (c *Config) SuggestThreshold() float64 {
	if c.Suggest == nil || c.Suggest.Threshold == nil {
		return DefaultSuggestThreshold
	}
	return *c.Suggest.Threshold
}

// BaseURL returns the rules site URL used to build page links
func (c *Config) BaseURL() string {
	if c.Output == nil || c.Output.BaseURL == nil {
		return DefaultBaseURL
	}
	return *c.Output.BaseURL
}

// RuleMap returns configured rules keyed by normalized name. Later blocks
// win over earlier ones with the same name.
func (c *Config) RuleMap() map[string]string {
	result := make(map[string]string, len(c.Rules))
	for _, r := range c.Rules {
		result[label.Normalize(r.Name)] = strings.TrimSpace(r.URL)
	}
	return result
}

// SynonymMap returns configured synonyms with normalized names and targets
func (c *Config) SynonymMap() map[string]string {
	result := make(map[string]string, len(c.Synonyms))
	for _, s := range c.Synonyms {
		result[label.Normalize(s.Name)] = label.Normalize(s.Canonical)
	}
	return result
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .owbrules.hcl in cwd, .owbrules.hcl in dir
func Load(configPath, dir string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(dir)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .owbrules.hcl in standard locations
func findConfigFile(dir string) string {
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	if dir != "" {
		dirPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(dirPath); err == nil {
			return dirPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes configuration source. filename is used in diagnostics and to
// resolve relative table paths.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = filename

	// Apply defaults for missing optional blocks
	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}

	if cfg.Tables == nil {
		cfg.Tables = defaults.Tables
	}

	if cfg.Resolver == nil {
		cfg.Resolver = defaults.Resolver
	} else if cfg.Resolver.MaxHops == nil {
		cfg.Resolver.MaxHops = defaults.Resolver.MaxHops
	}

	if cfg.Suggest == nil {
		cfg.Suggest = defaults.Suggest
	} else {
		if cfg.Suggest.Enabled == nil {
			cfg.Suggest.Enabled = defaults.Suggest.Enabled
		}
		if cfg.Suggest.Threshold == nil {
			cfg.Suggest.Threshold = defaults.Suggest.Threshold
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
		if cfg.Output.BaseURL == nil {
			cfg.Output.BaseURL = defaults.Output.BaseURL
		}
	}

	if cfg.Paths == nil {
		cfg.Paths = defaults.Paths
	} else {
		if len(cfg.Paths.Include) == 0 {
			cfg.Paths.Include = defaults.Paths.Include
		}
		if len(cfg.Paths.Exclude) == 0 {
			cfg.Paths.Exclude = defaults.Paths.Exclude
		}
		if len(cfg.Paths.LabelKeys) == 0 {
			cfg.Paths.LabelKeys = defaults.Paths.LabelKeys
		}
	}

	if cfg.Policy == nil {
		cfg.Policy = defaults.Policy
	}
}
