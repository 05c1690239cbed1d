package rules

// DefaultMaxHops is the number of synonym rewrites applied before lookup
const DefaultMaxHops = 1

// MaxHopsLimit bounds the configurable synonym chain length
const MaxHopsLimit = 8

// Resolver resolves rule labels to rules-page slugs through a synonym table
// and a canonical table. It holds no mutable state.
type Resolver struct {
	table    *Table
	synonyms *Synonyms
	maxHops  int

	// candidates are the names Suggest may offer, sorted
	candidates []string
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMaxHops sets how many synonym rewrites may be chained. Values outside
// 1..MaxHopsLimit are clamped.
func WithMaxHops(n int) Option {
	return func(r *Resolver) {
		switch {
		case n < 1:
			r.maxHops = 1
		case n > MaxHopsLimit:
			r.maxHops = MaxHopsLimit
		default:
			r.maxHops = n
		}
	}
}

// NewResolver creates a Resolver over the given tables. Either table may be nil.
func NewResolver(table *Table, synonyms *Synonyms, opts ...Option) *Resolver {
	if table == nil {
		table = Merge()
	}
	if synonyms == nil {
		synonyms = NewSynonyms()
	}

	r := &Resolver{
		table:    table,
		synonyms: synonyms,
		maxHops:  DefaultMaxHops,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.candidates = r.suggestionCandidates()
	return r
}

// Table returns the canonical table
func (r *Resolver) Table() *Table {
	return r.table
}

// Synonyms returns the synonym table
func (r *Resolver) Synonyms() *Synonyms {
	return r.synonyms
}

// MaxHops returns the configured synonym chain length
func (r *Resolver) MaxHops() int {
	return r.maxHops
}

// Trace records each step of a resolution
type Trace struct {
	// Name is the name that was resolved
	Name string `json:"name"`

	// Hops lists the names reached through synonyms, in order
	Hops []string `json:"hops,omitempty"`

	// Canonical is the name that was looked up; empty when a cycle was hit
	Canonical string `json:"canonical,omitempty"`

	// Entry is the matched entry; nil unless Found
	Entry *Entry `json:"entry,omitempty"`

	Found bool `json:"found"`

	// Cycle reports that the synonym chain revisited a name
	Cycle bool `json:"cycle,omitempty"`
}

// Trace resolves name and reports every step taken. A synonym mapping a name
// to itself ends the walk; a chain that returns to an earlier name is a cycle
// and leaves the name unresolved.
func (r *Resolver) Trace(name string) Trace {
	t := Trace{Name: name}

	current := name
	visited := map[string]bool{name: true}
	for hop := 0; hop < r.maxHops; hop++ {
		next, ok := r.synonyms.Target(current)
		if !ok || next == current {
			break
		}
		t.Hops = append(t.Hops, next)
		if visited[next] {
			t.Cycle = true
			return t
		}
		visited[next] = true
		current = next
	}

	t.Canonical = current
	if e, ok := r.table.Lookup(current); ok {
		t.Entry = &e
		t.Found = true
	}
	return t
}

// Resolve returns the slug for name, or false when no rules page is known.
// name must already be normalized; Resolve does not change case or spacing.
func (r *Resolver) Resolve(name string) (string, bool) {
	t := r.Trace(name)
	if !t.Found {
		return "", false
	}
	return t.Entry.Slug, true
}

// Dangling returns the synonym keys that do not resolve, sorted. These are
// reported, never rejected.
func (r *Resolver) Dangling() []string {
	var result []string
	for _, name := range r.synonyms.Names() {
		if _, ok := r.Resolve(name); !ok {
			result = append(result, name)
		}
	}
	return result
}
