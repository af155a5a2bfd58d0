package packages

import (
	"sort"

	"github.com/arthur-debert/datapacks/pkg/types"
)

// Package is the metadata of one discovered package
type Package struct {
	// Name is the package identity, e.g. "contrib/night"
	Name string `json:"name" yaml:"name"`

	// UserRoot is the writable data directory of the package
	UserRoot string `json:"user_root" yaml:"user_root"`

	// ShippedRoot is the read-only data directory of the package
	ShippedRoot string `json:"shipped_root" yaml:"shipped_root"`

	// Dependencies lists other package names in declaration order
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Descriptor is the descriptor file the dependencies were read from
	Descriptor string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

// Roots returns the search path entry contributed by the package.
func (p Package) Roots() types.RootPair {
	return types.RootPair{User: p.UserRoot, Shipped: p.ShippedRoot}
}

// Index is an immutable name -> Package mapping. A new Index is built on
// every scan; existing values are never modified in place.
type Index struct {
	packages map[string]Package
}

// Lookup returns the package with the given name.
func (idx Index) Lookup(name string) (Package, bool) {
	p, ok := idx.packages[name]
	if !ok {
		return Package{}, false
	}
	p.Dependencies = append([]string(nil), p.Dependencies...)
	return p, true
}

// Names returns all package names, sorted lexicographically.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx.packages))
	for name := range idx.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of packages.
func (idx Index) Len() int {
	return len(idx.packages)
}

// WithDependencies returns a copy of idx in which the named package has the
// given dependency list. It reports false if the package is unknown.
func (idx Index) WithDependencies(name string, deps []string) (Index, bool) {
	p, ok := idx.packages[name]
	if !ok {
		return idx, false
	}
	p.Dependencies = append([]string(nil), deps...)

	m := make(map[string]Package, len(idx.packages))
	for k, v := range idx.packages {
		m[k] = v
	}
	m[name] = p
	return Index{packages: m}, true
}
