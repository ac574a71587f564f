package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args. Flags keep their values
// between runs, so every test passes the flags it depends on.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParsePadding(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    style.Padding
		wantErr bool
	}{
		{name: "single value", input: "8", want: style.UniformPadding(8)},
		{name: "vertical horizontal", input: "24,16", want: style.Padding{Top: 24, Right: 16, Bottom: 24, Left: 16}},
		{name: "four sides with units", input: "1px, 2px, 3px, 4px", want: style.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{name: "three values", input: "1,2,3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePadding(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePadding(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parsePadding(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("parsePadding(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorCommands(t *testing.T) {
	out, err := executeCommand(t, "hsl", "#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "0 100% 50%\n", out)

	out, err = executeCommand(t, "hsl", "000000", "ffffff")
	require.NoError(t, err)
	assert.Equal(t, "000000: 0 0% 0%\nffffff: 0 0% 100%\n", out)

	out, err = executeCommand(t, "rgba", "ff0000", "--alpha", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "rgba(255, 0, 0, 0.5)\n", out)

	_, err = executeCommand(t, "hsl", "#fff")
	assert.ErrorIs(t, err, style.ErrInvalidColorFormat)

	out, err = executeCommand(t, "shadow", "--x", "0", "--y", "1", "--blur", "2", "--spread", "0", "--color", "#000000", "--opacity", "0.05")
	require.NoError(t, err)
	assert.Equal(t, "0px 1px 2px 0px rgba(0, 0, 0, 0.05)\n", out)
}

func TestScaleCommands(t *testing.T) {
	out, err := executeCommand(t, "spacing", "--class=false", "16", "17px")
	require.NoError(t, err)
	assert.Equal(t, "16: 4\n17px: [17px]\n", out)

	out, err = executeCommand(t, "spacing", "--class=true", "16")
	require.NoError(t, err)
	assert.Equal(t, "p-4\n", out)

	out, err = executeCommand(t, "type", "16")
	require.NoError(t, err)
	assert.Equal(t, "base\n", out)

	out, err = executeCommand(t, "rem", "--base", "16", "24")
	require.NoError(t, err)
	assert.Equal(t, "1.5rem\n", out)

	out, err = executeCommand(t, "responsive", "--breakpoint", "tablet", "p", "2", "4", "8")
	require.NoError(t, err)
	assert.Equal(t, "p-2 md:p-4\n", out)

	_, err = executeCommand(t, "type", "large")
	assert.Error(t, err)
}

func TestLayoutCommand(t *testing.T) {
	out, err := executeCommand(t, "layout", "--file", "", "--json=false",
		"--direction", "horizontal", "--alignment", "center", "--gap", "16", "--padding", "8")
	require.NoError(t, err)
	assert.Equal(t, "flex flex-row gap-4 items-center justify-center pt-2 pr-2 pb-2 pl-2\n", out)

	out, err = executeCommand(t, "layout", "--file", "", "--json=true",
		"--direction", "VERTICAL", "--alignment", "STRETCH", "--gap", "0", "--padding", "0")
	require.NoError(t, err)
	var classes style.LayoutClasses
	require.NoError(t, json.Unmarshal([]byte(out), &classes))
	assert.Equal(t, "flex flex-col items-stretch pt-0 pr-0 pb-0 pl-0", classes.Container)
	assert.Empty(t, classes.Items)

	_, err = executeCommand(t, "layout", "--file", "", "--json=false",
		"--direction", "horizontal", "--alignment", "space-between", "--gap", "0", "--padding", "0")
	assert.ErrorIs(t, err, style.ErrInvalidLayout)
}

func TestLayoutCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
direction: VERTICAL
alignment: MAX
gap: 24
padding: {top: 16, right: 0, bottom: 16, left: 0}
`), 0o644))

	out, err := executeCommand(t, "layout", "--json=false", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "flex flex-col gap-6 items-end justify-end pt-4 pr-0 pb-4 pl-0\n", out)
}

func TestTokensAndCheck(t *testing.T) {
	css, err := executeCommand(t, "tokens", "--format", "css")
	require.NoError(t, err)
	assert.Contains(t, css, "--primary-500: 199 89% 48%;")

	dir := t.TempDir()
	good := filepath.Join(dir, "globals.css")
	require.NoError(t, os.WriteFile(good, []byte(css), 0o644))

	out, err := executeCommand(t, "check", "--selector", ":root", good)
	require.NoError(t, err)
	assert.Empty(t, out)

	bad := filepath.Join(dir, "stale.css")
	require.NoError(t, os.WriteFile(bad, []byte(":root { --primary-500: 200 89% 48%; }"), 0o644))

	out, err = executeCommand(t, "check", "--selector", ":root", bad)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "--primary-500: got 200 89% 48%, want 199 89% 48%")
	assert.Contains(t, out, "--accent: missing")
}

func TestTokensJSON(t *testing.T) {
	out, err := executeCommand(t, "tokens", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = executeCommand(t, "tokens", "--format", "xml")
	assert.Error(t, err)
}

func TestSnippetsCommand(t *testing.T) {
	out, err := executeCommand(t, "snippets", "--values", "", "--section", "css")
	require.NoError(t, err)
	assert.Contains(t, out, "--primary: 199 89% 48%;")
	assert.NotContains(t, out, "Component Code Snippets")

	_, err = executeCommand(t, "snippets", "--values", "", "--section", "fonts")
	assert.Error(t, err)
}

func TestSwatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	_, err := executeCommand(t, "swatch", "-o", path, "--columns", "4", "--cell-size", "20")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
