package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/layout.md":      {Data: []byte("# Layout\n\nData roots")},
		"help/packages.txt":   {Data: []byte("Packages are directories")},
		"help/sub/deep.txt":   {Data: []byte("nested")},
		"help/ignored.json":   {Data: []byte("{}")},
		"elsewhere/other.txt": {Data: []byte("not a topic")},
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string {
	return strings.ToUpper(content) + ext
}

func TestLoad(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"deep", "layout", "packages"}, m.Names())

	topic, ok := m.Get("layout")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Ext)
	assert.Equal(t, "# Layout\n\nData roots", m.Render(topic))

	_, ok = m.Get("ignored")
	assert.False(t, ok)
	_, ok = m.Get("other")
	assert.False(t, ok)
}

func TestLoadCustomOptions(t *testing.T) {
	m, err := Load(testFS(), "help", Options{Extensions: []string{".json"}, Renderer: upperRenderer{}})
	require.NoError(t, err)

	assert.Equal(t, []string{"ignored"}, m.Names())
	topic, _ := m.Get("ignored")
	assert.Equal(t, "{}.json", m.Render(topic))
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(testFS(), "nope", Options{})
	assert.Error(t, err)
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := r.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")
}

func TestInstall(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "app", Short: "root short", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "sub", Short: "sub short", Run: func(*cobra.Command, []string) {}})
		m.Install(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		return root, &buf
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic", []string{"help", "packages"}, "Packages are directories"},
		{"list", []string{"help", "topics"}, "  layout\n"},
		{"command", []string{"help", "sub"}, "sub short"},
		{"root", []string{"help"}, "root short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newRoot()
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
