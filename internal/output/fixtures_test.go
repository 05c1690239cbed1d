package output

import "github.com/jokarl/owbrules/internal/types"

func sourcePtr(s types.Source) *types.Source {
	return &s
}

func resolved(input, name, canonical, slug string, src types.Source) *types.Resolution {
	return &types.Resolution{
		Input:     input,
		Name:      name,
		Canonical: canonical,
		Slug:      slug,
		URL:       "https://tow.whfb.app/" + slug,
		Source:    sourcePtr(src),
		Synonym:   name != canonical,
	}
}

func unresolved(input, name, suggestion string) *types.Resolution {
	res := &types.Resolution{Input: input, Name: name, Canonical: name}
	if suggestion != "" {
		res.Suggestion = &types.Suggestion{Name: suggestion, Similarity: 0.9}
	}
	return res
}

// testCheckResult builds an audit with one finding of each status
func testCheckResult(failOnUnresolved bool) *types.CheckResult {
	result := types.NewCheckResult("/armies", failOnUnresolved)
	result.Files = 2
	result.AddFinding(&types.Finding{
		File:       "empire.json",
		Pointer:    "/characters/0/name_en",
		Label:      "Halberds",
		Resolution: resolved("Halberds", "halberds", "halberd", "weapons-of-war/halberd", types.SourceOverlay),
	})
	result.AddFinding(&types.Finding{
		File:       "empire.json",
		Pointer:    "/core/1/name_en",
		Label:      "Halbred",
		Resolution: unresolved("Halbred", "halbred", "halberd"),
	})
	result.AddFinding(&types.Finding{
		File:       "bretonnia.json",
		Pointer:    "/core/0/equipment/0/name_en",
		Label:      "Shield, Wibble",
		Resolution: unresolved("Shield, Wibble", "shield, wibble", ""),
		Parts: []*types.Resolution{
			resolved("Shield", "shield", "shield", "weapons-of-war/shield", types.SourceBase),
			unresolved("Wibble", "wibble", ""),
		},
	})
	result.Compute()
	return result
}
