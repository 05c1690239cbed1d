// Package rules resolves unit, weapon and special-rule labels to the slugs of
// their rules-reference pages.
//
// Resolution consults two read-only tables. A Synonyms table rewrites plural,
// variant and equivalent spellings to canonical names, and a Table, merged
// from a generated index and curated overlays, maps canonical names to slugs.
// A label with no known page is a normal negative result, not an error.
package rules

import "github.com/jokarl/owbrules/internal/types"

// Explanation describes how a label was resolved
type Explanation struct {
	Resolution *types.Resolution `json:"resolution"`
	Trace      Trace             `json:"trace"`
	MaxHops    int               `json:"max_hops"`
}

// Explain resolves input and returns the resolution with its trace
func (e *Engine) Explain(input string) *Explanation {
	res := e.ResolveLabel(input)
	return &Explanation{
		Resolution: res,
		Trace:      e.resolver.Trace(res.Name),
		MaxHops:    e.resolver.MaxHops(),
	}
}
