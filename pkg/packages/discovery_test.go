package packages

import (
	"testing"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	tests := []struct {
		name   string
		layout map[string]string
		want   []string
	}{
		{
			name:   "missing root",
			layout: map[string]string{"/user/": ""},
			want:   nil,
		},
		{
			name: "archive files and data directories",
			layout: map[string]string{
				"/user/packages/castle.smcpkg":         "zip",
				"/user/packages/forest.smcpkg/levels/": "",
				"/user/packages/readme.txt":            "hello",
			},
			want: []string{"castle", "forest"},
		},
		{
			name: "nested packages",
			layout: map[string]string{
				"/user/packages/contrib/night.smcpkg":    "zip",
				"/user/packages/contrib/deep/day.smcpkg": "zip",
				"/user/packages/empty/":                  "",
			},
			want: []string{"contrib/deep/day", "contrib/night"},
		},
		{
			name: "package directories are not descended into",
			layout: map[string]string{
				"/user/packages/outer.smcpkg/inner.smcpkg": "zip",
			},
			want: []string{"outer"},
		},
		{
			name: "malformed archive names are skipped",
			layout: map[string]string{
				"/user/packages/.smcpkg":     "zip",
				"/user/packages/sub/.smcpkg": "zip",
				"/user/packages/good.smcpkg": "zip",
			},
			want: []string{"good"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS(t, tt.layout)

			got, err := Discover(fsys, "/user/packages")
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDiscoverRootIsFile(t *testing.T) {
	fsys := memFS(t, map[string]string{"/user/packages": "not a directory"})

	_, err := Discover(fsys, "/user/packages")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
