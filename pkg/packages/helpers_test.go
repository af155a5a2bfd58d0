package packages

import (
	"testing"

	"github.com/arthur-debert/datapacks/pkg/testutil"
	"github.com/arthur-debert/datapacks/pkg/types"
)

var testRoots = testutil.Roots

func memFS(t *testing.T, layout map[string]string) types.FS {
	t.Helper()
	fsys, _ := testutil.MemoryLayout(t, layout)
	return fsys
}
