package types

import (
	"fmt"
	"strings"
)

// Category is a kind of resource. Each category lives in its own
// subdirectory under every user root and every shipped root.
type Category int

const (
	CategoryPixmap Category = iota
	CategoryLevel
	CategorySound
	CategoryMusic
	CategoryCampaign
	CategoryOverworld
)

// categoryDirs maps each category to its (user, shipped) subdirectory names.
// Shipped data uses "campaign" and "world" while user data uses the plural
// forms. Existing content depends on this layout; do not normalize it.
var categoryDirs = map[Category][2]string{
	CategoryPixmap:    {"pixmaps", "pixmaps"},
	CategoryLevel:     {"levels", "levels"},
	CategorySound:     {"sounds", "sounds"},
	CategoryMusic:     {"music", "music"},
	CategoryCampaign:  {"campaigns", "campaign"},
	CategoryOverworld: {"worlds", "world"},
}

var categoryNames = map[Category]string{
	CategoryPixmap:    "pixmap",
	CategoryLevel:     "level",
	CategorySound:     "sound",
	CategoryMusic:     "music",
	CategoryCampaign:  "campaign",
	CategoryOverworld: "overworld",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryPixmap,
		CategoryLevel,
		CategorySound,
		CategoryMusic,
		CategoryCampaign,
		CategoryOverworld,
	}
}

// UserDir returns the subdirectory name used under user roots.
func (c Category) UserDir() string {
	return categoryDirs[c][0]
}

// ShippedDir returns the subdirectory name used under shipped roots.
func (c Category) ShippedDir() string {
	return categoryDirs[c][1]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryDirs[c]
	return ok
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a category name to its Category. Plural forms and
// "world" are accepted as aliases.
func ParseCategory(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "world", "worlds", "overworlds":
		return CategoryOverworld, nil
	case "pixmaps", "levels", "sounds", "campaigns":
		n = strings.TrimSuffix(n, "s")
	}
	for c, cn := range categoryNames {
		if cn == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown resource category %q", name)
}
