package packages

import (
	stderrors "errors"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/rs/zerolog"
)

// Registry owns the set of known packages. Each Scan builds a fresh Index
// and replaces the previous one wholesale.
type Registry struct {
	fs          types.FS
	roots       paths.Roots
	descriptors bool
	index       Index
	logger      zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithDescriptors enables or disables reading package descriptors during
// Scan. Enabled by default.
func WithDescriptors(enabled bool) Option {
	return func(r *Registry) {
		r.descriptors = enabled
	}
}

// NewRegistry creates an empty registry over the given global roots.
// Call Scan to populate it.
func NewRegistry(fsys types.FS, roots paths.Roots, opts ...Option) *Registry {
	r := &Registry{
		fs:          fsys,
		roots:       roots,
		descriptors: true,
		logger:      logging.GetLogger("packages.registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scan forgets all known packages and rediscovers them, user packages
// directory first, then the shipped one. The first package found under a
// name wins. A packages directory that exists but cannot be read is
// reported in the returned error; packages found elsewhere are still
// installed.
func (r *Registry) Scan() error {
	idx, err := r.build()
	r.index = idx
	return err
}

func (r *Registry) build() (Index, error) {
	done := logging.LogOperationStart(r.logger, "scan")
	defer done()

	found := make(map[string]Package)
	var errs []error

	for _, dir := range []string{r.roots.UserPackagesDir(), r.roots.GamePackagesDir()} {
		names, err := Discover(r.fs, dir)
		if err != nil {
			r.logger.Warn().Err(err).Str("root", dir).Msg("Failed to scan packages directory")
			errs = append(errs, err)
			continue
		}
		for _, name := range names {
			if _, exists := found[name]; exists {
				r.logger.Debug().Str("package", name).Str("root", dir).Msg("Package already known, keeping first")
				continue
			}
			found[name] = r.LoadMetadata(name)
			r.logger.Info().Str("package", name).Msg("Found package")
		}
	}

	return Index{packages: found}, stderrors.Join(errs...)
}

// LoadMetadata computes the metadata of a package from its name. The data
// directories are named exactly like the archive, extension included.
// When descriptors are enabled the dependency list is read from the
// package's descriptor; a bad descriptor leaves it empty.
func (r *Registry) LoadMetadata(name string) Package {
	pr := r.roots.PackageRoots(name)
	p := Package{
		Name:        name,
		UserRoot:    pr.User,
		ShippedRoot: pr.Shipped,
	}
	if !r.descriptors {
		return p
	}

	d, file, ok, err := LoadDescriptor(r.fs, p)
	if err != nil {
		r.logger.Warn().Err(err).Str("package", name).Str("path", file).Msg("Ignoring unreadable package descriptor")
		return p
	}
	if ok {
		p.Title = d.Title
		p.Description = d.Description
		p.Dependencies = d.Depends
		p.Descriptor = file
		r.logger.Debug().
			Str("package", name).
			Strs("dependencies", d.Depends).
			Str("path", file).
			Msg("Loaded package descriptor")
	}
	return p
}

// Index returns the current immutable package index.
func (r *Registry) Index() Index {
	return r.index
}

// Names returns all known package names, sorted.
func (r *Registry) Names() []string {
	return r.index.Names()
}

// Lookup returns the metadata of a known package.
func (r *Registry) Lookup(name string) (Package, bool) {
	return r.index.Lookup(name)
}

// SetDependencies stores a parsed dependency list for a known package. The
// index is replaced rather than modified so earlier Index values are
// unaffected.
func (r *Registry) SetDependencies(name string, deps []string) error {
	idx, ok := r.index.WithDependencies(name, deps)
	if !ok {
		return errors.New(errors.ErrPackageNotFound, "unknown package").WithDetail("package", name)
	}
	r.index = idx
	return nil
}
