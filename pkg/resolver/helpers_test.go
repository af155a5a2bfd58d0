package resolver

import (
	"testing"

	"github.com/arthur-debert/datapacks/pkg/testutil"
	"github.com/stretchr/testify/require"
)

var (
	testRoots = testutil.Roots
	memFS     = testutil.MemoryLayout
)

func newResolver(t *testing.T, layout map[string]string, active string) *Resolver {
	t.Helper()
	fsys, _ := memFS(t, layout)
	r, err := New(Options{FS: fsys, Roots: testRoots, ActivePackage: active})
	require.NoError(t, err)
	return r
}
