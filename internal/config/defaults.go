package config

import (
	"github.com/jokarl/owbrules/internal/loader"
	"github.com/jokarl/owbrules/internal/pathfilter"
	"github.com/jokarl/owbrules/internal/rules"
)

const (
	// DefaultBaseURL is the rules reference site that slugs are relative to
	DefaultBaseURL = "https://tow.whfb.app/"

	DefaultMaxHops          = rules.DefaultMaxHops
	DefaultSuggestThreshold = rules.DefaultSuggestThreshold
)

// Default returns the default configuration
func Default() *Config {
	enabled := true
	maxHops := DefaultMaxHops
	threshold := DefaultSuggestThreshold
	baseURL := DefaultBaseURL
	return &Config{
		Version: 1,
		Tables:  &TablesConfig{},
		Resolver: &ResolverConfig{
			MaxHops: &maxHops,
		},
		Suggest: &SuggestConfig{
			Enabled:   &enabled,
			Threshold: &threshold,
		},
		Output: &OutputConfig{
			Format:  "text",
			Color:   "auto",
			BaseURL: &baseURL,
		},
		Paths: &PathsConfig{
			Include:   append([]string{}, pathfilter.DefaultInclude...),
			Exclude:   append([]string{}, pathfilter.DefaultExclude...),
			LabelKeys: append([]string{}, loader.DefaultLabelKeys...),
		},
		Policy: &PolicyConfig{
			FailOnUnresolved: false,
		},
		Rules:    []*RuleConfig{},
		Synonyms: []*SynonymConfig{},
	}
}

// DefaultConfigHCL returns a documented starter configuration
func DefaultConfigHCL() string {
	return `# owbrules configuration
version = 1

# Rules index. Leave unset to use the built-in index; relative paths are
# resolved against this file. JSON (comments allowed) and YAML are accepted.
tables {
  # base = "rules-index-export.json"
}

resolver {
  # Number of synonym rewrites applied before lookup (1-8).
  max_hops = 1
}

suggest {
  enabled   = true
  threshold = 0.75
}

output {
  # text, json, compact or checkstyle (checkstyle is only used by "check")
  format   = "text"
  color    = "auto"
  base_url = "https://tow.whfb.app/"
}

# Army data audited by "owbrules check".
paths {
  include    = ["**/*.json"]
  exclude    = ["**/*-dump.json", "**/node_modules/**"]
  label_keys = ["name_en"]
}

policy {
  fail_on_unresolved = false
}

# Extra rules pages, applied on top of the built-in overlay.
# rule "halberd" {
#   url = "${category.weapons_of_war}/${slug("Halberd")}"
# }

# Extra synonyms.
# synonym "bucklers" {
#   canonical = "shield"
# }
`
}
