package output

import (
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/searchpath"
)

// PackageList is the result of listing known packages.
type PackageList struct {
	Active   string             `json:"active,omitempty" yaml:"active,omitempty"`
	Packages []packages.Package `json:"packages" yaml:"packages"`
}

// SearchPath is the ordered list of roots for the active package.
type SearchPath struct {
	Active  string             `json:"active,omitempty" yaml:"active,omitempty"`
	Entries []searchpath.Entry `json:"entries" yaml:"entries"`
}

// Resolution is the outcome of mapping a resource name to a file.
type Resolution struct {
	Category string `json:"category" yaml:"category"`
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Found    bool   `json:"found" yaml:"found"`
}

// Savegame describes one savegame slot.
type Savegame struct {
	Slot   uint     `json:"slot" yaml:"slot"`
	Path   string   `json:"path" yaml:"path"`
	Found  string   `json:"found,omitempty" yaml:"found,omitempty"`
	Legacy []string `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}
