package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoots(t *testing.T) {
	tests := []struct {
		name     string
		userData string
		gameData string
		want     Roots
	}{
		{
			name:     "explicit roots",
			userData: "/home/u/.local/share/datapacks",
			gameData: "/usr/share/game/data",
			want:     Roots{UserData: "/home/u/.local/share/datapacks", GameData: "/usr/share/game/data"},
		},
		{
			name:     "roots are cleaned",
			userData: "/a/b/../user/.",
			gameData: "/game//data/",
			want:     Roots{UserData: "/a/user", GameData: "/game/data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRoots(tt.userData, tt.gameData)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootsExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	got, err := NewRoots("~/data", "/game")
	require.NoError(t, err)

	homeDir, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(homeDir, "data"), got.UserData)
}

func TestRootsLayout(t *testing.T) {
	r := Roots{UserData: "/user", GameData: "/game"}

	assert.Equal(t, types.RootPair{User: "/user", Shipped: "/game"}, r.Global())
	assert.Equal(t, "/user/packages", r.UserPackagesDir())
	assert.Equal(t, "/game/packages", r.GamePackagesDir())
	assert.Equal(t, types.RootPair{
		User:    "/user/packages/castle/night.smcpkg",
		Shipped: "/game/packages/castle/night.smcpkg",
	}, r.PackageRoots("castle/night"))
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "mypack.smcpkg", ArchiveName("mypack"))
	assert.Equal(t, filepath.Join("sub", "mypack.smcpkg"), ArchiveName("sub/mypack"))
}

func TestNormalize(t *testing.T) {
	_, err := Normalize("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	got, err := Normalize("/x/./y/../z")
	require.NoError(t, err)
	assert.Equal(t, "/x/z", got)
}

func TestRelativeWithin(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		target string
		want   string
		ok     bool
	}{
		{"direct child", "/game/pixmaps", "/game/pixmaps/a.png", "a.png", true},
		{"nested child", "/game/pixmaps", "/game/pixmaps/enemy/turtle/1.png", "enemy/turtle/1.png", true},
		{"trailing dot on dir", "/game/pixmaps/.", "/game/pixmaps/a.png", "a.png", true},
		{"sibling with common prefix", "/game/pixmaps", "/game/pixmaps2/a.png", "", false},
		{"outside", "/game/pixmaps", "/other/a.png", "", false},
		{"dir itself", "/game/pixmaps", "/game/pixmaps", "", false},
		{"parent escape", "/game/pixmaps", "/game/pixmaps/../sounds/a.ogg", "", false},
		{"dotted file name", "/game/pixmaps", "/game/pixmaps/..hidden.png", "..hidden.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RelativeWithin(tt.dir, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
