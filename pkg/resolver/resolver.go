package resolver

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/filesystem"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/searchpath"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/rs/zerolog"
)

// userDirs are created under the top user root whenever the active package
// changes. Always the plural names, whatever the shipped layout uses.
var userDirs = []string{"levels", "worlds", "campaigns"}

// Options configures a Resolver
type Options struct {
	// FS is the filesystem to probe. Defaults to the OS filesystem.
	FS types.FS

	// Roots are the global user and shipped data roots. Required.
	Roots paths.Roots

	// ActivePackage is selected after the initial scan when not empty.
	ActivePackage string

	// RegistryOptions are passed to every package registry scan.
	RegistryOptions []packages.Option
}

// Resolver resolves resources against the current search path
type Resolver struct {
	fs          types.FS
	roots       paths.Roots
	registryOpt []packages.Option
	logger      zerolog.Logger

	// mu serialises writers; readers only load state.
	mu    sync.Mutex
	state atomic.Pointer[snapshot]
}

type snapshot struct {
	active  string
	index   packages.Index
	entries []searchpath.Entry
}

// New scans the installed packages and builds the initial search path.
// It fails only when the global roots are unusable.
func New(opts Options) (*Resolver, error) {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Roots.UserData == "" || opts.Roots.GameData == "" {
		return nil, errors.New(errors.ErrInvalidInput, "global user and game data roots are required")
	}
	for _, root := range []string{opts.Roots.UserData, opts.Roots.GameData} {
		if err := checkRoot(opts.FS, root); err != nil {
			return nil, err
		}
	}

	r := &Resolver{
		fs:          opts.FS,
		roots:       opts.Roots,
		registryOpt: opts.RegistryOptions,
		logger:      logging.GetLogger("resolver"),
	}
	r.state.Store(&snapshot{
		entries: searchpath.BuildEntries(packages.Index{}, "", r.roots.Global()),
	})

	if err := r.Rescan(); err != nil {
		r.logger.Warn().Err(err).Msg("Package scan incomplete")
	}

	if opts.ActivePackage != "" {
		if err := r.SetActivePackage(opts.ActivePackage); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// checkRoot accepts a missing root but rejects one that cannot be used as a
// directory.
func checkRoot(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access data root").WithDetail("path", root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrFileAccess, "data root is not a directory").WithDetail("path", root)
	}
	return nil
}

func (r *Resolver) current() *snapshot {
	return r.state.Load()
}

// install builds the search path for active over index and swaps it in.
// Callers hold r.mu.
func (r *Resolver) install(active string, index packages.Index) *snapshot {
	s := &snapshot{
		active:  active,
		index:   index,
		entries: searchpath.BuildEntries(index, active, r.roots.Global()),
	}
	r.state.Store(s)

	if missing := searchpath.Missing(index, active); len(missing) > 0 {
		r.logger.Warn().Str("package", active).Strs("missing", missing).Msg("Unknown packages in dependency graph")
	}
	r.logger.Debug().Str("package", active).Int("entries", len(s.entries)).Msg("Search path built")
	return s
}

// Rescan rediscovers all packages and rebuilds the search path for the
// current selection. Packages directories that could not be read are
// reported in the returned error; everything else is still installed.
func (r *Resolver) Rescan() error {
	reg := packages.NewRegistry(r.fs, r.roots, r.registryOpt...)
	scanErr := reg.Scan()

	r.mu.Lock()
	r.install(r.current().active, reg.Index())
	r.mu.Unlock()

	return scanErr
}

// SetActivePackage selects the package whose roots take precedence, or
// none for an empty name. The search path is rebuilt and the standard user
// directories are created under the new top user root.
func (r *Resolver) SetActivePackage(name string) error {
	r.mu.Lock()
	cur := r.current()
	if name != "" {
		if _, ok := cur.index.Lookup(name); !ok {
			r.mu.Unlock()
			return errors.New(errors.ErrPackageNotFound, "unknown package").WithDetail("package", name)
		}
	}
	s := r.install(name, cur.index)
	r.mu.Unlock()

	r.logger.Info().Str("package", name).Msg("Active package set")
	return r.ensureUserDirs(s.entries[0].User)
}

func (r *Resolver) ensureUserDirs(base string) error {
	for _, dir := range userDirs {
		p := filepath.Join(base, dir)
		if types.IsDir(r.fs, p) {
			continue
		}
		if err := r.fs.MkdirAll(p, 0755); err != nil {
			return errors.Wrap(err, errors.ErrDirCreate, "cannot create user directory").WithDetail("path", p)
		}
		r.logger.Debug().Str("path", p).Msg("Created user directory")
	}
	return nil
}

// SetDependencies fills the dependency slot of a known package and
// rebuilds the search path.
func (r *Resolver) SetDependencies(name string, deps []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current()
	index, ok := cur.index.WithDependencies(name, deps)
	if !ok {
		return errors.New(errors.ErrPackageNotFound, "unknown package").WithDetail("package", name)
	}
	r.install(cur.active, index)
	return nil
}

// ActivePackage returns the selected package name, empty for none.
func (r *Resolver) ActivePackage() string {
	return r.current().active
}

// KnownPackageNames returns every discovered package name, sorted.
func (r *Resolver) KnownPackageNames() []string {
	return r.current().index.Names()
}

// Package returns the metadata of a known package.
func (r *Resolver) Package(name string) (packages.Package, bool) {
	return r.current().index.Lookup(name)
}

// Roots returns the global data roots.
func (r *Resolver) Roots() paths.Roots {
	return r.roots
}

// FS returns the filesystem the resolver probes.
func (r *Resolver) FS() types.FS {
	return r.fs
}

// SearchPath returns a copy of the current search path.
func (r *Resolver) SearchPath() []types.RootPair {
	entries := r.current().entries
	pairs := make([]types.RootPair, len(entries))
	for i, e := range entries {
		pairs[i] = e.RootPair
	}
	return pairs
}

// Entries returns a copy of the current search path with the package that
// contributed each entry.
func (r *Resolver) Entries() []searchpath.Entry {
	return append([]searchpath.Entry(nil), r.current().entries...)
}

// UserRoot returns the user root of search path entry n, or "" when n is
// out of range.
func (r *Resolver) UserRoot(n int) string {
	entries := r.current().entries
	if n < 0 || n >= len(entries) {
		return ""
	}
	return entries[n].User
}

// ShippedRoot returns the shipped root of search path entry n, or "" when
// n is out of range.
func (r *Resolver) ShippedRoot(n int) string {
	entries := r.current().entries
	if n < 0 || n >= len(entries) {
		return ""
	}
	return entries[n].Shipped
}

// UserCategoryDir returns the category directory under user root n.
func (r *Resolver) UserCategoryDir(c types.Category, n int) string {
	root := r.UserRoot(n)
	if root == "" || !c.Valid() {
		return ""
	}
	return filepath.Join(root, c.UserDir())
}

// ShippedCategoryDir returns the category directory under shipped root n.
func (r *Resolver) ShippedCategoryDir(c types.Category, n int) string {
	root := r.ShippedRoot(n)
	if root == "" || !c.Valid() {
		return ""
	}
	return filepath.Join(root, c.ShippedDir())
}

// SavegameDir returns the savegame directory of the top user root.
func (r *Resolver) SavegameDir() string {
	return filepath.Join(r.UserRoot(0), paths.SavegamesDir)
}
