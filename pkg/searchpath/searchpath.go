// Package searchpath turns the active package and the package dependency
// graph into the ordered list of roots consulted during resolution.
//
// The traversal is a pre-order depth-first walk: a package's own roots come
// first, then each dependency in declaration order, recursively. Packages
// already visited are skipped, so dependency cycles and shared dependencies
// contribute their roots exactly once. The global roots always come last.
package searchpath

import (
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/types"
)

// Lookup resolves a package name to its metadata
type Lookup interface {
	Lookup(name string) (packages.Package, bool)
}

// Entry is a search path entry together with the package that contributed
// it. Package is empty for the global roots.
type Entry struct {
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	types.RootPair `yaml:",inline"`
}

// Build returns the search path for current. An empty current yields only
// the global pair.
func Build(lookup Lookup, current string, global types.RootPair) []types.RootPair {
	entries := BuildEntries(lookup, current, global)
	pairs := make([]types.RootPair, len(entries))
	for i, e := range entries {
		pairs[i] = e.RootPair
	}
	return pairs
}

// BuildEntries is Build keeping track of which package contributed each
// entry.
func BuildEntries(lookup Lookup, current string, global types.RootPair) []Entry {
	w := walker{lookup: lookup, visited: make(map[string]struct{})}
	if current != "" {
		w.visit(current)
	}
	return append(w.entries, Entry{RootPair: global})
}

type walker struct {
	lookup  Lookup
	visited map[string]struct{}
	entries []Entry
}

func (w *walker) visit(name string) {
	if _, seen := w.visited[name]; seen {
		return
	}
	p, ok := w.lookup.Lookup(name)
	if !ok {
		return
	}
	w.visited[name] = struct{}{}
	w.entries = append(w.entries, Entry{Package: name, RootPair: p.Roots()})

	for _, dep := range p.Dependencies {
		w.visit(dep)
	}
}

// Missing returns the names reachable from current that are not known to
// lookup, in traversal order. They are silently skipped by Build; callers
// may want to warn about them.
func Missing(lookup Lookup, current string) []string {
	var missing []string
	seen := make(map[string]struct{})
	var visit func(name string)
	visit = func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		p, ok := lookup.Lookup(name)
		if !ok {
			missing = append(missing, name)
			return
		}
		for _, dep := range p.Dependencies {
			visit(dep)
		}
	}
	if current != "" {
		visit(current)
	}
	return missing
}
