package figma

import (
	"fmt"
	"io"
)

// TextStyleSpec is a text style as read from Dev Mode, with CSS units kept.
type TextStyleSpec struct {
	FontSize   string `json:"fontSize" yaml:"fontSize"`
	FontWeight string `json:"fontWeight" yaml:"fontWeight"`
	LineHeight string `json:"lineHeight" yaml:"lineHeight"`
	FontFamily string `json:"fontFamily" yaml:"fontFamily"`
}

// ExtractColors returns the example color table to fill from color styles.
func ExtractColors() map[string]string {
	return map[string]string{
		"primary":   "#0ea5e9",
		"secondary": "#64748b",
		"accent":    "#8b5cf6",
		"success":   "#10b981",
		"warning":   "#f59e0b",
		"error":     "#ef4444",
	}
}

// ExtractTypography returns the example text-style table.
func ExtractTypography() map[string]TextStyleSpec {
	return map[string]TextStyleSpec{
		"h1":   {FontSize: "48px", FontWeight: "700", LineHeight: "1.2", FontFamily: "Inter"},
		"h2":   {FontSize: "36px", FontWeight: "600", LineHeight: "1.3", FontFamily: "Inter"},
		"body": {FontSize: "16px", FontWeight: "400", LineHeight: "1.5", FontFamily: "Inter"},
	}
}

// ExtractSpacing returns the example spacing table. Designs usually follow a
// 4px or 8px grid.
func ExtractSpacing() map[string]string {
	return map[string]string{
		"xs":  "4px",
		"sm":  "8px",
		"md":  "16px",
		"lg":  "24px",
		"xl":  "32px",
		"2xl": "48px",
		"3xl": "64px",
	}
}

const guide = `
Figma Token Extraction Guide:
==============================

1. Open your Figma file
2. Enable Dev Mode (View > Developer Mode)
3. Select elements to see their properties
4. Copy values to assets/tokens/design-tokens.yaml

For automated extraction:
- Use Figma API (requires API token)
- Use Figma plugins (Figma Tokens, etc.)
- Export design tokens JSON from Figma

Manual Steps:
1. Colors: Copy hex codes from color styles
2. Typography: Copy font properties from text styles
3. Spacing: Note padding/margin values from auto-layout
4. Shadows: Copy shadow properties from effects panel
5. Border Radius: Copy corner radius values
`

// WriteGuide prints the manual extraction guide.
func WriteGuide(w io.Writer) error {
	_, err := fmt.Fprint(w, guide)
	return err
}
