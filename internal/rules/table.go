package rules

import (
	"sort"

	"github.com/jokarl/owbrules/internal/types"
)

// Entry associates a canonical name with the slug of its rules page
type Entry struct {
	// Slug is the relative page path, e.g. "weapons-of-war/halberd"
	Slug string `json:"slug"`

	// Source is the layer that supplied the entry
	Source types.Source `json:"source"`
}

// NamedEntry is an Entry together with its canonical name
type NamedEntry struct {
	Name string `json:"name"`
	Entry
}

// Layer is one set of canonical name to slug mappings
type Layer struct {
	Source  types.Source
	Entries map[string]string
}

// Table maps canonical names to entries. A Table is never modified after
// Merge returns, so it may be read from any number of goroutines.
type Table struct {
	entries map[string]Entry
}

// Merge builds a Table from layers applied in order. Each layer overwrites
// entries of earlier layers that share a name. Entries with an empty slug are
// treated as absent and leave any earlier entry in place.
func Merge(layers ...Layer) *Table {
	size := 0
	for _, l := range layers {
		size += len(l.Entries)
	}

	t := &Table{entries: make(map[string]Entry, size)}
	for _, l := range layers {
		for name, slug := range l.Entries {
			if slug == "" {
				continue
			}
			t.entries[name] = Entry{Slug: slug, Source: l.Source}
		}
	}
	return t
}

// Lookup returns the entry for a canonical name
func (t *Table) Lookup(name string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[name]
	return e, ok
}

// Len returns the number of entries
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns all canonical names in sorted order
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every entry sorted by name
func (t *Table) All() []NamedEntry {
	names := t.Names()
	result := make([]NamedEntry, len(names))
	for i, name := range names {
		result[i] = NamedEntry{Name: name, Entry: t.entries[name]}
	}
	return result
}

// CountBySource returns the number of entries each layer contributed after merging
func (t *Table) CountBySource() map[types.Source]int {
	counts := make(map[types.Source]int)
	if t == nil {
		return counts
	}
	for _, e := range t.entries {
		counts[e.Source]++
	}
	return counts
}
