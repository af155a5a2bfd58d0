// Package savegame locates savegame slot files in the user data of the
// active package. Reading and writing the savegame format itself is done
// by the game.
package savegame

import (
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// Ext is the extension savegames are written with
	Ext = ".tscsav"

	// LegacyExt is the extension of savegames from older releases
	LegacyExt = ".smcsav"

	// AncientExt predates LegacyExt
	AncientExt = ".save"
)

// extensions lists every readable format, newest first.
var extensions = []string{Ext, LegacyExt, AncientExt}

// Locator provides the savegame directory of the active package.
// *resolver.Resolver satisfies it.
type Locator interface {
	SavegameDir() string
}

// Slots maps slot numbers to files.
type Slots struct {
	fs      types.FS
	locator Locator
	logger  zerolog.Logger
}

// New returns Slots reading through fsys. The directory is asked from
// locator on every call so package switches are picked up.
func New(fsys types.FS, locator Locator) *Slots {
	return &Slots{
		fs:      fsys,
		locator: locator,
		logger:  logging.GetLogger("savegame"),
	}
}

// Dir returns the current savegame directory.
func (s *Slots) Dir() string {
	return s.locator.SavegameDir()
}

func (s *Slots) file(slot uint, ext string) string {
	return filepath.Join(s.Dir(), strconv.FormatUint(uint64(slot), 10)+ext)
}

// Path returns where slot is saved. The file need not exist.
func (s *Slots) Path(slot uint) string {
	return s.file(slot, Ext)
}

// Find returns the existing file for slot, preferring the current format
// over the legacy ones.
func (s *Slots) Find(slot uint) (string, bool) {
	for _, ext := range extensions {
		if p := s.file(slot, ext); types.Exists(s.fs, p) {
			return p, true
		}
	}
	s.logger.Trace().Uint("slot", slot).Str("dir", s.Dir()).Msg("No savegame in slot")
	return "", false
}

// IsValid reports whether slot holds a savegame in any format.
func (s *Slots) IsValid(slot uint) bool {
	_, ok := s.Find(slot)
	return ok
}

// LegacyPaths returns the old-format files of slot that should be removed
// once the slot has been written in the current format. Only existing
// files are returned.
func (s *Slots) LegacyPaths(slot uint) []string {
	var found []string
	for _, ext := range extensions[1:] {
		if p := s.file(slot, ext); types.Exists(s.fs, p) {
			found = append(found, p)
		}
	}
	return found
}

// EnsureDir creates the savegame directory.
func (s *Slots) EnsureDir() error {
	dir := s.Dir()
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create savegame directory").
			WithDetail("path", dir)
	}
	return nil
}
