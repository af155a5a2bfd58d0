package resolver

import (
	"path/filepath"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/types"
)

// ResolveRead returns the first existing file for name in category c.
// For each search path entry the user root is probed before the shipped
// root; the next entry is only tried when both miss.
func (r *Resolver) ResolveRead(c types.Category, name string) (string, bool) {
	rel, ok := resourceName(c, name)
	if !ok {
		return "", false
	}

	for _, e := range r.current().entries {
		if p := filepath.Join(e.User, c.UserDir(), rel); types.Exists(r.fs, p) {
			return p, true
		}
		if p := filepath.Join(e.Shipped, c.ShippedDir(), rel); types.Exists(r.fs, p) {
			return p, true
		}
	}

	r.logger.Trace().Stringer("category", c).Str("name", name).Msg("Resource not found")
	return "", false
}

// PixmapPath resolves an image.
func (r *Resolver) PixmapPath(name string) (string, bool) {
	return r.ResolveRead(types.CategoryPixmap, name)
}

// LevelPath resolves a level by name without extension. The current level
// format is tried over the whole search path before the legacy one.
func (r *Resolver) LevelPath(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if p, ok := r.ResolveRead(types.CategoryLevel, name+paths.LevelExt); ok {
		return p, true
	}
	return r.ResolveRead(types.CategoryLevel, name+paths.LegacyLevelExt)
}

// SoundPath resolves a sound effect.
func (r *Resolver) SoundPath(name string) (string, bool) {
	return r.ResolveRead(types.CategorySound, name)
}

// MusicPath resolves a music track.
func (r *Resolver) MusicPath(name string) (string, bool) {
	return r.ResolveRead(types.CategoryMusic, name)
}

// CampaignPath resolves a campaign file.
func (r *Resolver) CampaignPath(name string) (string, bool) {
	return r.ResolveRead(types.CategoryCampaign, name)
}

// OverworldPath resolves an overworld.
func (r *Resolver) OverworldPath(name string) (string, bool) {
	return r.ResolveRead(types.CategoryOverworld, name)
}

// resourceName converts a slash separated resource name to a relative OS
// path. Names that are empty, absolute or climb out of the category
// directory are refused.
func resourceName(c types.Category, name string) (string, bool) {
	if !c.Valid() {
		return "", false
	}
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return rel, true
}

// ResolveWrite returns where name in category c is written: always under
// the first user root, never in a dependency or shipped data. The file
// does not need to exist.
func (r *Resolver) ResolveWrite(c types.Category, name string) (string, error) {
	rel, ok := resourceName(c, name)
	if !ok {
		return "", errors.New(errors.ErrInvalidInput, "invalid resource name").
			WithDetail("category", c.String()).
			WithDetail("name", name)
	}
	return filepath.Join(r.UserRoot(0), c.UserDir(), rel), nil
}

// LevelWritePath returns the save location of a level given without
// extension.
func (r *Resolver) LevelWritePath(name string) (string, error) {
	if name == "" {
		return r.ResolveWrite(types.CategoryLevel, "")
	}
	return r.ResolveWrite(types.CategoryLevel, name+paths.LevelExt)
}

// OverworldWritePath returns the save location of an overworld.
func (r *Resolver) OverworldWritePath(name string) (string, error) {
	return r.ResolveWrite(types.CategoryOverworld, name)
}

// Relativize returns the portable name of an absolute file in category c:
// its path relative to the category directory of the first search path
// root that lexically contains it. It reports false when no root does.
func (r *Resolver) Relativize(c types.Category, abs string) (string, bool) {
	if !c.Valid() || abs == "" {
		return "", false
	}

	for _, e := range r.current().entries {
		candidates := [2]string{
			filepath.Join(e.User, c.UserDir()),
			filepath.Join(e.Shipped, c.ShippedDir()),
		}
		for _, dir := range candidates {
			if rel, ok := paths.RelativeWithin(dir, abs); ok {
				return filepath.ToSlash(rel), true
			}
		}
	}
	return "", false
}

// MustRelativize is Relativize for callers that store portable names and
// cannot fall back to an absolute path.
func (r *Resolver) MustRelativize(c types.Category, abs string) (string, error) {
	rel, ok := r.Relativize(c, abs)
	if !ok {
		return "", errors.New(errors.ErrRelativize, "file is outside every search path root").
			WithDetail("category", c.String()).
			WithDetail("path", abs)
	}
	return rel, nil
}

// RelativePixmapPath returns the portable name of an image file.
func (r *Resolver) RelativePixmapPath(abs string) (string, bool) {
	return r.Relativize(types.CategoryPixmap, abs)
}

// RelativeSoundPath returns the portable name of a sound file.
func (r *Resolver) RelativeSoundPath(abs string) (string, bool) {
	return r.Relativize(types.CategorySound, abs)
}

// RelativeMusicPath returns the portable name of a music file.
func (r *Resolver) RelativeMusicPath(abs string) (string, bool) {
	return r.Relativize(types.CategoryMusic, abs)
}
