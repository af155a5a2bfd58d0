// Package testutil builds data root layouts for tests, either in memory
// or on disk below a temporary directory.
//
// Layouts map slash-separated paths to file contents. Paths ending in "/"
// become empty directories.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/datapacks/pkg/filesystem"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Roots are the global roots used with MemoryLayout
var Roots = paths.Roots{UserData: "/user", GameData: "/game"}

// MemoryLayout creates an in-memory filesystem holding layout. The afero
// filesystem is returned as well for assertions on what code wrote.
func MemoryLayout(t testing.TB, layout map[string]string) (types.FS, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for p, content := range layout {
		if strings.HasSuffix(p, "/") {
			require.NoError(t, mem.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, afero.WriteFile(mem, p, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(mem), mem
}

// WriteTree writes layout below dir on the real filesystem.
func WriteTree(t testing.TB, dir string, layout map[string]string) {
	t.Helper()
	for rel, content := range layout {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// DiskRoots creates "user" and "game" data roots in a fresh temp dir and
// writes layout relative to that dir, so keys start with "user/" or
// "game/".
func DiskRoots(t testing.TB, layout map[string]string) paths.Roots {
	t.Helper()
	tmp := t.TempDir()
	roots := paths.Roots{
		UserData: filepath.Join(tmp, "user"),
		GameData: filepath.Join(tmp, "game"),
	}
	require.NoError(t, os.MkdirAll(roots.UserData, 0755))
	require.NoError(t, os.MkdirAll(roots.GameData, 0755))
	WriteTree(t, tmp, layout)
	return roots
}
