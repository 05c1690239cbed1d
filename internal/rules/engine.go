package rules

import (
	"net/url"

	"github.com/jokarl/owbrules/internal/label"
	"github.com/jokarl/owbrules/internal/types"
)

// EngineConfig holds the presentation settings applied on top of a Resolver
type EngineConfig struct {
	// BaseURL is joined with slugs to build rule-page URLs; empty disables URLs
	BaseURL string

	// Suggest enables "did you mean" suggestions for unresolved labels
	Suggest bool

	// Threshold is the minimum similarity for a suggestion
	Threshold float64
}

// DefaultEngineConfig returns the default engine settings
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Suggest:   true,
		Threshold: DefaultSuggestThreshold,
	}
}

// Engine turns raw labels into resolutions and audits army data
type Engine struct {
	resolver *Resolver
	config   EngineConfig
}

// NewEngine creates a new Engine around resolver
func NewEngine(resolver *Resolver, config EngineConfig) *Engine {
	return &Engine{
		resolver: resolver,
		config:   config,
	}
}

// Resolver returns the engine's resolver
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// ResolveLabel normalizes input and resolves it
func (e *Engine) ResolveLabel(input string) *types.Resolution {
	name := label.Normalize(input)
	res := &types.Resolution{Input: input, Name: name}

	t := e.resolver.Trace(name)
	res.Synonym = len(t.Hops) > 0
	res.Canonical = t.Canonical
	if t.Found {
		src := t.Entry.Source
		res.Slug = t.Entry.Slug
		res.Source = &src
		res.URL = e.pageURL(t.Entry.Slug)
		return res
	}

	if e.config.Suggest {
		if s, ok := e.resolver.Suggest(name, e.config.Threshold); ok {
			res.Suggestion = &s
		}
	}
	return res
}

// ResolveAll resolves each input in order
func (e *Engine) ResolveAll(inputs []string) []*types.Resolution {
	result := make([]*types.Resolution, 0, len(inputs))
	for _, in := range inputs {
		result = append(result, e.ResolveLabel(in))
	}
	return result
}

// Evaluate resolves a label found in a file. A label that does not resolve as
// a whole and reads as a comma-separated list is resolved part by part.
func (e *Engine) Evaluate(file string, l types.Label) *types.Finding {
	f := &types.Finding{
		File:       file,
		Pointer:    l.Pointer,
		Label:      l.Text,
		Resolution: e.ResolveLabel(l.Text),
	}
	if f.Resolution.Resolved() || !label.IsList(l.Text) {
		return f
	}

	for _, part := range label.Split(l.Text) {
		f.Parts = append(f.Parts, e.ResolveLabel(part))
	}
	return f
}

// Check evaluates every label of every file and returns a complete CheckResult
func (e *Engine) Check(root string, files []types.LabelFile, failOnUnresolved bool) *types.CheckResult {
	result := types.NewCheckResult(root, failOnUnresolved)
	result.Files = len(files)

	for _, file := range files {
		for _, l := range file.Labels {
			result.AddFinding(e.Evaluate(file.Path, l))
		}
	}

	result.Compute()
	return result
}

func (e *Engine) pageURL(slug string) string {
	if e.config.BaseURL == "" {
		return ""
	}
	u, err := url.JoinPath(e.config.BaseURL, slug)
	if err != nil {
		return ""
	}
	return u
}
