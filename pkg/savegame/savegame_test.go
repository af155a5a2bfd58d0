package savegame

import (
	"testing"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDir string

func (d fixedDir) SavegameDir() string { return string(d) }

func newSlots(t *testing.T, files ...string) (*Slots, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("<savegame/>"), 0644))
	}
	return New(filesystem.NewAferoFS(mem), fixedDir("/user/savegames")), mem
}

func TestPath(t *testing.T) {
	s, _ := newSlots(t)
	assert.Equal(t, "/user/savegames/3.tscsav", s.Path(3))
	assert.Equal(t, "/user/savegames", s.Dir())
}

func TestFind(t *testing.T) {
	s, _ := newSlots(t,
		"/user/savegames/1.tscsav",
		"/user/savegames/1.smcsav",
		"/user/savegames/2.smcsav",
		"/user/savegames/2.save",
		"/user/savegames/3.save",
	)

	tests := []struct {
		slot  uint
		want  string
		found bool
	}{
		{1, "/user/savegames/1.tscsav", true},
		{2, "/user/savegames/2.smcsav", true},
		{3, "/user/savegames/3.save", true},
		{4, "", false},
	}

	for _, tt := range tests {
		got, ok := s.Find(tt.slot)
		assert.Equal(t, tt.found, ok, "slot %d", tt.slot)
		assert.Equal(t, tt.want, got, "slot %d", tt.slot)
		assert.Equal(t, tt.found, s.IsValid(tt.slot), "slot %d", tt.slot)
	}
}

func TestLegacyPaths(t *testing.T) {
	s, _ := newSlots(t,
		"/user/savegames/1.tscsav",
		"/user/savegames/1.smcsav",
		"/user/savegames/1.save",
		"/user/savegames/2.tscsav",
	)

	assert.Equal(t, []string{"/user/savegames/1.smcsav", "/user/savegames/1.save"}, s.LegacyPaths(1))
	assert.Empty(t, s.LegacyPaths(2))
	assert.Empty(t, s.LegacyPaths(9))
}

func TestEnsureDir(t *testing.T) {
	s, mem := newSlots(t)
	require.NoError(t, s.EnsureDir())

	ok, err := afero.DirExists(mem, "/user/savegames")
	require.NoError(t, err)
	assert.True(t, ok)

	ro := New(filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs())), fixedDir("/x/savegames"))
	err = ro.EnsureDir()
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}
