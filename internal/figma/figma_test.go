package figma

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	v, err := DefaultValues()
	require.NoError(t, err)

	assert.Equal(t, "#0ea5e9", v.Colors.Primary)
	assert.Equal(t, "#0284c7", v.Colors.PrimaryHover)
	assert.Equal(t, TextStyle{Size: 72, Weight: 700, LineHeight: 1.1}, v.Typography.H1)
	assert.Equal(t, 1440, v.Spacing.ContainerMaxWidth)
	assert.Equal(t, Button{Height: 56, PaddingX: 32, PaddingY: 16, BorderRadius: 8}, v.Components.Button)
	assert.Equal(t, Card{Padding: 24, BorderRadius: 12}, v.Components.Card)
}

func TestLoadValuesOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  primary: "#ff0000"
  background: white
components:
  button:
    borderRadius: 12
`), 0o644))

	v, err := LoadValues(path)
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", v.Colors.Primary)
	assert.Equal(t, "#ffffff", v.Colors.Background)
	assert.Equal(t, "#64748b", v.Colors.Secondary, "untouched keys keep defaults")
	assert.Equal(t, 12, v.Components.Button.BorderRadius)
	assert.Equal(t, 56, v.Components.Button.Height)
}

func TestLoadValuesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"colors": {"accent": "#123456"}}`), 0o644))

	v, err := LoadValues(path)
	require.NoError(t, err)
	assert.Equal(t, "#123456", v.Colors.Accent)
}

func TestLoadValuesRejectsBadColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  primary: "#12345"
  accent: "not-a-color"
`), 0o644))

	_, err := LoadValues(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, style.ErrInvalidColorFormat)
	assert.Contains(t, err.Error(), "colors.primary")
	assert.Contains(t, err.Error(), "colors.accent")
}

func TestLoadValuesMissingFile(t *testing.T) {
	_, err := LoadValues(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGeneratorCSSVariables(t *testing.T) {
	v, err := DefaultValues()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewGenerator(v, nil).WriteSection(&buf, SectionCSS))

	want := `
=== CSS Variables for app/globals.css ===

:root {
  --primary: 199 89% 48%;
  --primary-foreground: 0 0% 100%;
  --background: 0 0% 100%;
  --foreground: 222 47% 11%;
  --secondary: 215 16% 47%;
  --accent: 258 90% 66%;
  --destructive: 0 84% 60%;
  --radius: 0.5rem;
}

`
	assert.Equal(t, want, buf.String())
}

func TestGeneratorSections(t *testing.T) {
	v, err := DefaultValues()
	require.NoError(t, err)
	g := NewGenerator(v, nil)

	var buf bytes.Buffer
	require.NoError(t, g.WriteAll(&buf))
	out := buf.String()

	for _, want := range []string{
		"=== CSS Variables for app/globals.css ===",
		"=== Design Tokens for assets/tokens/design-tokens.yaml ===",
		`    "600": "#0284c7"`,
		"const buttonPadding = 32px 16px;",
		"const buttonFontWeight = 600;",
		"const inputHeight = 48px;",
		"const cardRadius = 12px;",
		`<div className="max-w-[1440px] mx-auto px-[80px]">`,
		`<button className="h-[56px] px-[32px] py-[16px] rounded-[8px] text-[16px] font-[600]">`,
		`<h1 className="text-[72px] font-[700] leading-[1.1]">`,
	} {
		assert.Contains(t, out, want)
	}

	// Sections come out in a fixed order.
	last := -1
	for _, title := range []string{"CSS Variables", "Design Tokens", "Component Code Snippets", "Tailwind Class Examples"} {
		i := strings.Index(out, title)
		assert.Greater(t, i, last, title)
		last = i
	}
}

func TestGeneratorUnknownSection(t *testing.T) {
	v, err := DefaultValues()
	require.NoError(t, err)

	err = NewGenerator(v, nil).WriteSection(&bytes.Buffer{}, "fonts")
	assert.Error(t, err)
}

func TestGeneratorReportsBadColor(t *testing.T) {
	v, err := DefaultValues()
	require.NoError(t, err)
	v.Colors.Accent = "#zzzzzz"

	var buf bytes.Buffer
	err = NewGenerator(v, nil).WriteSection(&buf, SectionCSS)
	assert.ErrorIs(t, err, style.ErrInvalidColorFormat)
	assert.Empty(t, buf.String())
}

func TestWriteGuide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGuide(&buf))
	assert.Contains(t, buf.String(), "Enable Dev Mode")
	assert.Contains(t, buf.String(), "5. Border Radius")
}

func TestExtractTables(t *testing.T) {
	for name, hex := range ExtractColors() {
		_, err := style.ParseHex(hex)
		assert.NoError(t, err, name)
	}
	assert.Equal(t, "48px", ExtractTypography()["h1"].FontSize)
	assert.Equal(t, "16px", ExtractSpacing()["md"])
}
