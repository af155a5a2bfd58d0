package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/types"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// On-disk layout. These names are part of the content format and are
// NOT user-configurable.
const (
	// AppDirName is the directory name used under XDG locations
	AppDirName = "datapacks"

	// PackagesDir is the subdirectory of a data root holding packages
	PackagesDir = "packages"

	// ArchiveExt is the package archive extension
	ArchiveExt = ".smcpkg"

	// SavegamesDir is the subdirectory of the top user root holding savegames
	SavegamesDir = "savegames"

	// LevelExt is the current level file extension
	LevelExt = ".smclvl"

	// LegacyLevelExt is the plain-text level extension of older content
	LegacyLevelExt = ".txt"

	// DescriptorTOML and DescriptorXML name package descriptor files
	DescriptorTOML = "package.toml"
	DescriptorXML  = "package.xml"

	// GameDataSubdir is the default shipped data directory next to the executable
	GameDataSubdir = "data"
)

// Roots holds the two global data roots every search path ends with.
type Roots struct {
	// UserData is the writable, per-user data root
	UserData string

	// GameData is the read-only data root shipped with the application
	GameData string
}

// NewRoots resolves the global roots. Empty arguments fall back to the
// defaults. Both roots are made absolute.
func NewRoots(userData, gameData string) (Roots, error) {
	if userData == "" {
		userData = DefaultUserDataDir()
	}
	if gameData == "" {
		gameData = DefaultGameDataDir()
	}
	if userData == "" {
		return Roots{}, errors.New(errors.ErrInvalidInput, "user data directory cannot be determined")
	}
	if gameData == "" {
		return Roots{}, errors.New(errors.ErrInvalidInput, "game data directory cannot be determined")
	}

	var r Roots
	var err error
	if r.UserData, err = Normalize(userData); err != nil {
		return Roots{}, err
	}
	if r.GameData, err = Normalize(gameData); err != nil {
		return Roots{}, err
	}
	return r, nil
}

// Global returns the catch-all search path entry.
func (r Roots) Global() types.RootPair {
	return types.RootPair{User: r.UserData, Shipped: r.GameData}
}

// UserPackagesDir returns the directory scanned for user-installed packages
func (r Roots) UserPackagesDir() string {
	return filepath.Join(r.UserData, PackagesDir)
}

// GamePackagesDir returns the directory scanned for shipped packages
func (r Roots) GamePackagesDir() string {
	return filepath.Join(r.GameData, PackagesDir)
}

// PackageRoots returns the user and shipped data directories of a package.
func (r Roots) PackageRoots(name string) types.RootPair {
	archive := ArchiveName(name)
	return types.RootPair{
		User:    filepath.Join(r.UserPackagesDir(), archive),
		Shipped: filepath.Join(r.GamePackagesDir(), archive),
	}
}

// DefaultUserDataDir returns the datapacks directory in the XDG data home.
func DefaultUserDataDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultGameDataDir returns the data directory next to the running
// executable.
func DefaultGameDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), GameDataSubdir)
}

// ConfigDir returns the XDG config directory for datapacks
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ArchiveName converts a package name into its slash-separated archive path,
// "castle/night" -> "castle/night.smcpkg".
func ArchiveName(name string) string {
	return filepath.FromSlash(name) + ArchiveExt
}

// Normalize expands ~, makes path absolute and cleans it.
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome expands a leading ~ in path.
func ExpandHome(path string) string {
	return expandHome(path)
}

// RelativeWithin returns target relative to dir when target lies lexically
// inside dir. Trailing "." segments on dir are dropped first. No filesystem
// access takes place.
func RelativeWithin(dir, target string) (string, bool) {
	dir = filepath.Clean(dir)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
