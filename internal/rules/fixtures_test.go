package rules

import "github.com/jokarl/owbrules/internal/types"

func testBase() map[string]string {
	return map[string]string{
		"shield":       "weapons-of-war/shields",
		"spears":       "weapons-of-war/spear-generated",
		"great weapon": "weapons-of-war/great-weapon",
		"constructor":  "special-rules/constructor",
	}
}

func testOverlay() map[string]string {
	return map[string]string{
		"halberd":   "weapons-of-war/halberd",
		"champions": "command-groups/champions",
		"spears":    "weapons-of-war/spears",
	}
}

func testSynonyms() map[string]string {
	return map[string]string{
		"halberds":     "halberd",
		"shields":      "shield",
		"boss":         "champions",
		"great axe":    "missing weapon",
		"jezzails":     "jezzails",
		"ping":         "pong",
		"pong":         "ping",
		"launcher":     "bolt thrower",
		"bolt thrower": "bolt throwers",
	}
}

func testTable() *Table {
	return Merge(
		Layer{Source: types.SourceBase, Entries: testBase()},
		Layer{Source: types.SourceOverlay, Entries: testOverlay()},
	)
}

func testResolver(opts ...Option) *Resolver {
	table := Merge(
		Layer{Source: types.SourceBase, Entries: testBase()},
		Layer{Source: types.SourceOverlay, Entries: testOverlay()},
		Layer{Source: types.SourceConfig, Entries: map[string]string{
			"bolt throwers": "war-machines/bolt-throwers",
			"jezzails":      "weapons-of-war/jezzail",
			"pong":          "misc/pong",
		}},
	)
	return NewResolver(table, NewSynonyms(testSynonyms()), opts...)
}
