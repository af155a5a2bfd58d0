package resolver

import (
	"io/fs"
	"sync"
	"testing"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var global = types.RootPair{User: "/user", Shipped: "/game"}

func TestNewWithoutPackageHasOnlyGlobalEntry(t *testing.T) {
	r := newResolver(t, map[string]string{
		"/game/packages/castle.smcpkg": "zip",
	}, "")

	assert.Equal(t, []types.RootPair{global}, r.SearchPath())
	assert.Equal(t, "", r.ActivePackage())
	assert.Equal(t, []string{"castle"}, r.KnownPackageNames())
}

func TestNewRejectsUnusableRoots(t *testing.T) {
	fsys, _ := memFS(t, map[string]string{"/user": "a file"})

	_, err := New(Options{FS: fsys, Roots: testRoots})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	_, err = New(Options{FS: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewWithUnknownActivePackage(t *testing.T) {
	fsys, _ := memFS(t, nil)

	_, err := New(Options{FS: fsys, Roots: testRoots, ActivePackage: "ghost"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageNotFound))
}

func TestSetActivePackage(t *testing.T) {
	fsys, mem := memFS(t, map[string]string{
		"/game/packages/p.smcpkg/package.toml": `depends = ["a", "b"]`,
		"/game/packages/a.smcpkg":              "zip",
		"/user/packages/b.smcpkg/":             "",
	})
	r, err := New(Options{FS: fsys, Roots: testRoots})
	require.NoError(t, err)

	require.NoError(t, r.SetActivePackage("p"))
	assert.Equal(t, "p", r.ActivePackage())
	assert.Equal(t, []types.RootPair{
		{User: "/user/packages/p.smcpkg", Shipped: "/game/packages/p.smcpkg"},
		{User: "/user/packages/a.smcpkg", Shipped: "/game/packages/a.smcpkg"},
		{User: "/user/packages/b.smcpkg", Shipped: "/game/packages/b.smcpkg"},
		global,
	}, r.SearchPath())

	for _, dir := range []string{"levels", "worlds", "campaigns"} {
		ok, err := afero.DirExists(mem, "/user/packages/p.smcpkg/"+dir)
		require.NoError(t, err)
		assert.True(t, ok, dir)
	}

	entries := r.Entries()
	assert.Equal(t, "p", entries[0].Package)
	assert.Equal(t, "", entries[len(entries)-1].Package)

	require.NoError(t, r.SetActivePackage(""))
	assert.Equal(t, []types.RootPair{global}, r.SearchPath())
	ok, _ := afero.DirExists(mem, "/user/levels")
	assert.True(t, ok)
}

func TestSetActivePackageUnknownKeepsState(t *testing.T) {
	r := newResolver(t, map[string]string{"/game/packages/a.smcpkg": "zip"}, "a")

	err := r.SetActivePackage("ghost")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageNotFound))
	assert.Equal(t, "a", r.ActivePackage())
	assert.Len(t, r.SearchPath(), 2)
}

func TestSetActivePackageDirCreateFailure(t *testing.T) {
	fsys, _ := memFS(t, map[string]string{"/game/packages/a.smcpkg": "zip"})
	ro := &readOnlyFS{FS: fsys}
	r, err := New(Options{FS: ro, Roots: testRoots})
	require.NoError(t, err)

	err = r.SetActivePackage("a")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	// The new search path is installed regardless.
	assert.Equal(t, "a", r.ActivePackage())
	assert.Equal(t, "/user/packages/a.smcpkg", r.UserRoot(0))
}

type readOnlyFS struct {
	types.FS
}

func (readOnlyFS) MkdirAll(string, fs.FileMode) error {
	return fs.ErrPermission
}

func TestCycleSafety(t *testing.T) {
	r := newResolver(t, map[string]string{
		"/game/packages/a.smcpkg/package.toml": `depends = ["b"]`,
		"/game/packages/b.smcpkg/package.toml": `depends = ["a"]`,
	}, "a")

	assert.Equal(t, []types.RootPair{
		{User: "/user/packages/a.smcpkg", Shipped: "/game/packages/a.smcpkg"},
		{User: "/user/packages/b.smcpkg", Shipped: "/game/packages/b.smcpkg"},
		global,
	}, r.SearchPath())
}

func TestRescan(t *testing.T) {
	fsys, mem := memFS(t, map[string]string{"/game/packages/a.smcpkg": "zip"})
	r, err := New(Options{FS: fsys, Roots: testRoots, ActivePackage: "a"})
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(mem, "/user/packages/b.smcpkg", []byte("zip"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/user/packages/a.smcpkg/package.toml", []byte(`depends = ["b"]`), 0644))
	require.NoError(t, r.Rescan())

	assert.Equal(t, []string{"a", "b"}, r.KnownPackageNames())
	assert.Equal(t, "a", r.ActivePackage())
	assert.Len(t, r.SearchPath(), 3)
	assert.Equal(t, "/user/packages/b.smcpkg", r.UserRoot(1))
}

func TestSetDependencies(t *testing.T) {
	r := newResolver(t, map[string]string{
		"/game/packages/p.smcpkg": "zip",
		"/game/packages/a.smcpkg": "zip",
	}, "p")
	require.Len(t, r.SearchPath(), 2)

	require.NoError(t, r.SetDependencies("p", []string{"a"}))
	assert.Len(t, r.SearchPath(), 3)
	p, ok := r.Package("p")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, p.Dependencies)

	err := r.SetDependencies("ghost", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageNotFound))
}

func TestIndexedRoots(t *testing.T) {
	r := newResolver(t, map[string]string{"/game/packages/p.smcpkg": "zip"}, "p")

	assert.Equal(t, "/user/packages/p.smcpkg", r.UserRoot(0))
	assert.Equal(t, "/game/packages/p.smcpkg", r.ShippedRoot(0))
	assert.Equal(t, "/user", r.UserRoot(1))
	assert.Equal(t, "/game", r.ShippedRoot(1))
	assert.Equal(t, "", r.UserRoot(2))
	assert.Equal(t, "", r.ShippedRoot(-1))

	assert.Equal(t, "/user/packages/p.smcpkg/campaigns", r.UserCategoryDir(types.CategoryCampaign, 0))
	assert.Equal(t, "/game/campaign", r.ShippedCategoryDir(types.CategoryCampaign, 1))
	assert.Equal(t, "/game/world", r.ShippedCategoryDir(types.CategoryOverworld, 1))
	assert.Equal(t, "", r.UserCategoryDir(types.CategoryLevel, 5))

	assert.Equal(t, "/user/packages/p.smcpkg/savegames", r.SavegameDir())
}

func TestDisabledDescriptors(t *testing.T) {
	fsys, _ := memFS(t, map[string]string{
		"/game/packages/p.smcpkg/package.toml": `depends = ["a"]`,
		"/game/packages/a.smcpkg":              "zip",
	})
	r, err := New(Options{
		FS:              fsys,
		Roots:           testRoots,
		ActivePackage:   "p",
		RegistryOptions: []packages.Option{packages.WithDescriptors(false)},
	})
	require.NoError(t, err)
	assert.Len(t, r.SearchPath(), 2)
}

func TestConcurrentReadersDuringSwitch(t *testing.T) {
	r := newResolver(t, map[string]string{
		"/game/packages/a.smcpkg/pixmaps/x.png": "a",
		"/game/packages/b.smcpkg/pixmaps/x.png": "b",
	}, "a")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				p, ok := r.PixmapPath("x.png")
				assert.True(t, ok)
				assert.Contains(t, []string{
					"/game/packages/a.smcpkg/pixmaps/x.png",
					"/game/packages/b.smcpkg/pixmaps/x.png",
				}, p)
			}
		}()
	}
	for j := 0; j < 50; j++ {
		pkg := "a"
		if j%2 == 0 {
			pkg = "b"
		}
		require.NoError(t, r.SetActivePackage(pkg))
	}
	wg.Wait()
}
