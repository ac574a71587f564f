// Package assets embeds the default design-token table and the default
// design-tool values used by the snippet generator.
package assets

import "embed"

// FS holds tokens/*.yaml and figma/*.yaml.
//
//go:embed tokens/*.yaml figma/*.yaml
var FS embed.FS

const (
	// DesignTokensPath is the default design-token table inside FS.
	DesignTokensPath = "tokens/design-tokens.yaml"
	// FigmaValuesPath is the default snippet-generator input inside FS.
	FigmaValuesPath = "figma/values.yaml"
)
