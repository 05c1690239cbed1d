package rules

import "sort"

// Synonyms maps alternate spellings, plurals and equivalent labels to
// canonical names. Targets are not required to exist in any Table.
type Synonyms struct {
	targets map[string]string
}

// NewSynonyms builds a synonym table from layers applied in order; later
// layers overwrite earlier ones. Entries with an empty target are skipped.
func NewSynonyms(layers ...map[string]string) *Synonyms {
	size := 0
	for _, l := range layers {
		size += len(l)
	}

	s := &Synonyms{targets: make(map[string]string, size)}
	for _, l := range layers {
		for name, target := range l {
			if target == "" {
				continue
			}
			s.targets[name] = target
		}
	}
	return s
}

// Target returns the canonical name a synonym points to
func (s *Synonyms) Target(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	target, ok := s.targets[name]
	return target, ok
}

// Len returns the number of synonyms
func (s *Synonyms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.targets)
}

// Names returns all synonym keys in sorted order
func (s *Synonyms) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.targets))
	for name := range s.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
