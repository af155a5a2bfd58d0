package paths

import (
	"path"
	"strings"

	"github.com/arthur-debert/datapacks/pkg/errors"
)

// ValidatePackageName ensures a discovered package name is usable.
// Package names are slash-separated relative paths, so nesting is allowed,
// but each segment must be a real name:
// - Not empty
// - Not "." or ".."
// - No backslashes, NUL or other control characters
func ValidatePackageName(name string) error {
	if name == "" {
		return errors.New(errors.ErrPackageInvalid, "package name cannot be empty")
	}
	if strings.HasPrefix(name, "/") {
		return errors.New(errors.ErrPackageInvalid, "package name must be relative")
	}
	if strings.Contains(name, "\\") {
		return errors.New(errors.ErrPackageInvalid, "package name cannot contain backslashes")
	}

	for _, segment := range strings.Split(name, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return errors.Newf(errors.ErrPackageInvalid, "package name has an invalid segment %q", segment)
		}
	}

	for _, r := range name {
		if r < 32 || r == 127 {
			return errors.New(errors.ErrPackageInvalid, "package name contains control characters")
		}
	}

	if path.Clean(name) != name {
		return errors.New(errors.ErrPackageInvalid, "package name is not in canonical form")
	}

	return nil
}
