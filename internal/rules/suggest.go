package rules

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jokarl/owbrules/internal/types"
)

// DefaultSuggestThreshold is the minimum similarity for a suggestion
const DefaultSuggestThreshold = 0.75

// Similarity calculates a normalized similarity score between two strings.
// Returns a value between 0.0 (completely different) and 1.0 (identical).
// The formula is: 1 - (levenshtein_distance / max(runes(a), runes(b)))
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

// FindBestMatch finds the string in candidates that has the highest similarity to target.
// Returns the best matching string, its similarity score, and whether a match was found
// above the given threshold. Ties go to the earliest candidate.
func FindBestMatch(target string, candidates []string, threshold float64) (string, float64, bool) {
	var bestMatch string
	var bestSimilarity float64

	for _, candidate := range candidates {
		sim := Similarity(target, candidate)
		if sim > bestSimilarity {
			bestSimilarity = sim
			bestMatch = candidate
		}
	}

	if bestMatch != "" && bestSimilarity >= threshold {
		return bestMatch, bestSimilarity, true
	}

	return "", 0, false
}

// Suggest returns the known name closest to name. Only names that resolve are
// offered, and name itself is never suggested.
func (r *Resolver) Suggest(name string, threshold float64) (types.Suggestion, bool) {
	if name == "" {
		return types.Suggestion{}, false
	}

	candidates := r.candidates
	if i := sort.SearchStrings(candidates, name); i < len(candidates) && candidates[i] == name {
		candidates = make([]string, 0, len(r.candidates)-1)
		candidates = append(candidates, r.candidates[:i]...)
		candidates = append(candidates, r.candidates[i+1:]...)
	}

	match, sim, ok := FindBestMatch(name, candidates, threshold)
	if !ok {
		return types.Suggestion{}, false
	}
	return types.Suggestion{Name: match, Similarity: sim}, true
}

func (r *Resolver) suggestionCandidates() []string {
	names := append(r.table.Names(), r.synonyms.Names()...)
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := r.Resolve(name); ok {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
