package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"Header", "Package", "Dependency", "Path", "Label",
		"Muted", "Found", "Missing", "Error",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.Equal(t, StyleRegistry["Path"], GetStyle("Path"))
	assert.Equal(t, lipgloss.NewStyle(), GetStyle("NonExistentStyle"))
}

func TestBuildStyle(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{"red": {Light: "#FF0000", Dark: "#FF8888"}}

	style := buildStyle(StyleDef{Bold: true, Foreground: "red", Width: 7}, colors)
	assert.True(t, style.GetBold())
	assert.Equal(t, colors["red"], style.GetForeground())
	assert.Equal(t, 7, style.GetWidth())

	// Unknown color names are ignored
	style = buildStyle(StyleDef{Foreground: "nope"}, colors)
	assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Parse(defaultStyles)) })

	path := filepath.Join(t.TempDir(), "styles.yaml")
	content := "colors:\n  c:\n    light: \"#000000\"\n    dark: \"#FFFFFF\"\nstyles:\n  Only:\n    italic: true\n    foreground: c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, LoadStyles(path))
	assert.Len(t, StyleRegistry, 1)
	assert.True(t, GetStyle("Only").GetItalic())

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, Parse([]byte("styles: [")))
}
