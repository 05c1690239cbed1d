// Package rulesdata holds the built-in rule tables and assembles resolvers
// from them.
package rulesdata

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/owbrules/internal/loader"
	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

// rulesIndex is the generated rules index export
//
//go:embed rules-index-export.json
var rulesIndex []byte

// Index parses the embedded rules index
func Index(logger hclog.Logger) (map[string]string, error) {
	entries, err := loader.ParseTable(rulesIndex, loader.FormatJSON, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded rules index: %w", err)
	}
	return entries, nil
}

// Options controls how New assembles a resolver
type Options struct {
	// BasePath replaces the embedded rules index when set
	BasePath string

	// Rules are extra entries applied after the overlay
	Rules map[string]string

	// Synonyms are extra synonyms applied after the built-in ones
	Synonyms map[string]string

	// MaxHops is the synonym chain length; zero means rules.DefaultMaxHops
	MaxHops int

	Logger hclog.Logger
}

// New builds a resolver from the base index, the curated overlay and any
// configured entries, in that order of precedence.
func New(opts Options) (*rules.Resolver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var base map[string]string
	var err error
	if opts.BasePath != "" {
		base, err = loader.LoadTable(opts.BasePath, logger)
	} else {
		base, err = Index(logger)
	}
	if err != nil {
		return nil, err
	}

	table := rules.Merge(
		rules.Layer{Source: types.SourceBase, Entries: base},
		rules.Layer{Source: types.SourceOverlay, Entries: Overlay()},
		rules.Layer{Source: types.SourceConfig, Entries: opts.Rules},
	)
	synonyms := rules.NewSynonyms(Synonyms(), opts.Synonyms)

	maxHops := opts.MaxHops
	if maxHops == 0 {
		maxHops = rules.DefaultMaxHops
	}

	counts := table.CountBySource()
	logger.Debug("built rule tables",
		"base", counts[types.SourceBase],
		"overlay", counts[types.SourceOverlay],
		"config", counts[types.SourceConfig],
		"synonyms", synonyms.Len(),
		"max_hops", maxHops,
	)

	return rules.NewResolver(table, synonyms, rules.WithMaxHops(maxHops)), nil
}

// Default builds a resolver from the built-in tables only
func Default() (*rules.Resolver, error) {
	return New(Options{})
}
