package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jokarl/owbrules/internal/label"
	"github.com/jokarl/owbrules/internal/pathfilter"
	"github.com/jokarl/owbrules/internal/rules"
)

// ValidFormats contains all output formats
var ValidFormats = map[string]bool{
	"text":       true,
	"json":       true,
	"compact":    true,
	"checkstyle": true,
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil {
		if cfg.Output.Format != "" && !ValidFormats[cfg.Output.Format] {
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json', 'compact' or 'checkstyle')", cfg.Output.Format)
		}

		switch cfg.Output.Color {
		case "", "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}

		if cfg.Output.BaseURL != nil && *cfg.Output.BaseURL != "" {
			if err := validateBaseURL(*cfg.Output.BaseURL); err != nil {
				return err
			}
		}
	}

	if cfg.Resolver != nil && cfg.Resolver.MaxHops != nil {
		if n := *cfg.Resolver.MaxHops; n < 1 || n > rules.MaxHopsLimit {
			return fmt.Errorf("invalid max_hops: %d (must be between 1 and %d)", n, rules.MaxHopsLimit)
		}
	}

	if cfg.Suggest != nil && cfg.Suggest.Threshold != nil {
		if t := *cfg.Suggest.Threshold; t <= 0 || t > 1 {
			return fmt.Errorf("invalid suggest threshold: %g (must be greater than 0 and at most 1)", t)
		}
	}

	if cfg.Paths != nil {
		if err := pathfilter.New(cfg.Paths.Include, cfg.Paths.Exclude).Validate(); err != nil {
			return fmt.Errorf("invalid path pattern: %w", err)
		}
	}

	for _, r := range cfg.Rules {
		if err := ValidateSlug(r.URL); err != nil {
			return fmt.Errorf("invalid url for rule %q: %w", r.Name, err)
		}
		if label.Normalize(r.Name) == "" {
			return fmt.Errorf("rule name must not be empty")
		}
	}

	for _, s := range cfg.Synonyms {
		if label.Normalize(s.Name) == "" {
			return fmt.Errorf("synonym name must not be empty")
		}
		if label.Normalize(s.Canonical) == "" {
			return fmt.Errorf("canonical name for synonym %q must not be empty", s.Name)
		}
	}

	return nil
}

// ValidateSlug checks that s is a relative rules-page path
func ValidateSlug(s string) error {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return fmt.Errorf("slug must not be empty")
	case strings.HasPrefix(s, "/"):
		return fmt.Errorf("slug must be relative: %s", s)
	case strings.Contains(s, "://"):
		return fmt.Errorf("slug must be a path, not a URL: %s", s)
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("slug has an empty or relative segment: %s", s)
		}
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %s (must be an absolute URL)", raw)
	}
	return nil
}
