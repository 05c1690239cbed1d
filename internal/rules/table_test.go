package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/owbrules/internal/types"
)

func TestMergeOverlayWins(t *testing.T) {
	table := testTable()

	e, ok := table.Lookup("spears")
	if !ok {
		t.Fatal("spears missing after merge")
	}
	if e.Slug != "weapons-of-war/spears" || e.Source != types.SourceOverlay {
		t.Errorf("spears = %+v, want overlay slug", e)
	}

	// base 4 + overlay 3, one collision
	if table.Len() != 6 {
		t.Errorf("Len() = %d, want 6", table.Len())
	}
}

func TestMergeSkipsEmptySlug(t *testing.T) {
	table := Merge(
		Layer{Source: types.SourceBase, Entries: map[string]string{"shield": "weapons-of-war/shields"}},
		Layer{Source: types.SourceOverlay, Entries: map[string]string{"shield": "", "blank": ""}},
	)

	e, ok := table.Lookup("shield")
	if !ok || e.Source != types.SourceBase {
		t.Errorf("shield = (%+v, %v), want base entry kept", e, ok)
	}
	if _, ok := table.Lookup("blank"); ok {
		t.Error("entry with empty slug should be absent")
	}
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	base := map[string]string{"shield": "weapons-of-war/shields"}
	table := Merge(Layer{Source: types.SourceBase, Entries: base})

	base["shield"] = "changed"
	base["added"] = "later"

	if e, _ := table.Lookup("shield"); e.Slug != "weapons-of-war/shields" {
		t.Errorf("table changed with its input: %q", e.Slug)
	}
	if _, ok := table.Lookup("added"); ok {
		t.Error("table gained a key added to its input")
	}
}

func TestTableAll(t *testing.T) {
	table := Merge(
		Layer{Source: types.SourceBase, Entries: map[string]string{"b": "x/b", "a": "x/a"}},
		Layer{Source: types.SourceConfig, Entries: map[string]string{"c": "x/c"}},
	)

	want := []NamedEntry{
		{Name: "a", Entry: Entry{Slug: "x/a", Source: types.SourceBase}},
		{Name: "b", Entry: Entry{Slug: "x/b", Source: types.SourceBase}},
		{Name: "c", Entry: Entry{Slug: "x/c", Source: types.SourceConfig}},
	}
	if diff := cmp.Diff(want, table.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	counts := table.CountBySource()
	if counts[types.SourceBase] != 2 || counts[types.SourceConfig] != 1 || counts[types.SourceOverlay] != 0 {
		t.Errorf("CountBySource() = %v", counts)
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if table.Len() != 0 {
		t.Error("nil table has entries")
	}
	if _, ok := table.Lookup("x"); ok {
		t.Error("nil table found an entry")
	}
	if len(table.All()) != 0 {
		t.Error("nil table listed entries")
	}
}

func TestSynonymsLastLayerWins(t *testing.T) {
	s := NewSynonyms(
		map[string]string{"boss": "champions", "shields": "shield"},
		map[string]string{"boss": "musician", "empty": ""},
	)

	if got, _ := s.Target("boss"); got != "musician" {
		t.Errorf("Target(boss) = %q, want musician", got)
	}
	if _, ok := s.Target("empty"); ok {
		t.Error("empty target should be skipped")
	}
	if diff := cmp.Diff([]string{"boss", "shields"}, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
