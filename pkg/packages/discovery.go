package packages

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/rs/zerolog"
)

// maxDepth bounds recursion through symlinked directory loops
const maxDepth = 32

// Discover walks root recursively and returns the names of every package
// archive found below it, in walk order. Entries carrying the archive
// extension are packages and are not descended into; other directories are
// walked with their relative path as prefix.
//
// A missing root yields no names and no error. A root that exists but cannot
// be read returns an error. Problems below the root are logged and skipped.
func Discover(fsys types.FS, root string) ([]string, error) {
	logger := logging.GetLogger("packages.discovery").With().Str("root", root).Logger()

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("Packages directory does not exist")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access packages directory").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrFileAccess, "packages directory is not a directory").
			WithDetail("path", root)
	}

	names, err := walk(fsys, root, "", 0, logger)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read packages directory").
			WithDetail("path", root)
	}
	logger.Debug().Int("count", len(names)).Msg("Discovered packages")
	return names, nil
}

// walk returns the packages below root/rel. Only a failure to read
// root/rel itself is returned; failures further down are logged.
func walk(fsys types.FS, root, rel string, depth int, logger zerolog.Logger) ([]string, error) {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		entryRel := path.Join(rel, entry.Name())

		if filepath.Ext(entry.Name()) == paths.ArchiveExt {
			name := strings.TrimSuffix(entryRel, paths.ArchiveExt)
			if err := paths.ValidatePackageName(name); err != nil {
				logger.Warn().Err(err).Str("entry", entryRel).Msg("Skipping malformed package archive name")
				continue
			}
			logger.Trace().Str("package", name).Msg("Found package")
			names = append(names, name)
			continue
		}

		if !isDir(fsys, dir, entry) {
			continue
		}
		if depth >= maxDepth {
			logger.Warn().Str("path", entryRel).Msg("Package directory nesting too deep, skipping")
			continue
		}
		sub, err := walk(fsys, root, entryRel, depth+1, logger)
		if err != nil {
			logger.Warn().Err(err).Str("path", entryRel).Msg("Cannot read directory, skipping")
			continue
		}
		names = append(names, sub...)
	}
	return names, nil
}

func isDir(fsys types.FS, dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink != 0 {
		return types.IsDir(fsys, filepath.Join(dir, entry.Name()))
	}
	return false
}
