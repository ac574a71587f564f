package style

import (
	"fmt"
	"strconv"
)

// ScaleStep maps a canonical pixel value to its token label.
type ScaleStep struct {
	Px    int
	Label string
}

// Scale is an immutable, ascending pixel→label table.
type Scale []ScaleStep

// Lookup returns the label for px and whether px is canonical.
func (s Scale) Lookup(px int) (string, bool) {
	for _, step := range s {
		if step.Px == px {
			return step.Label, true
		}
		if step.Px > px {
			break
		}
	}
	return "", false
}

// Token returns the label for px, or the literal "[Npx]" when px is off-scale.
func (s Scale) Token(px int) string {
	if label, ok := s.Lookup(px); ok {
		return label
	}
	return literalPx(px)
}

// Values returns the canonical pixel values in ascending order.
func (s Scale) Values() []int {
	out := make([]int, len(s))
	for i, step := range s {
		out[i] = step.Px
	}
	return out
}

func literalPx(px int) string {
	return fmt.Sprintf("[%dpx]", px)
}

// SpacingScale is the 4px-based spacing scale.
var SpacingScale = Scale{
	{0, "0"},
	{4, "1"},
	{8, "2"},
	{12, "3"},
	{16, "4"},
	{20, "5"},
	{24, "6"},
	{32, "8"},
	{40, "10"},
	{48, "12"},
	{64, "16"},
	{80, "20"},
	{96, "24"},
	{128, "32"},
}

// TypeScale is the font-size scale.
var TypeScale = Scale{
	{12, "xs"},
	{14, "sm"},
	{16, "base"},
	{18, "lg"},
	{20, "xl"},
	{24, "2xl"},
	{30, "3xl"},
	{36, "4xl"},
	{48, "5xl"},
	{60, "6xl"},
	{72, "7xl"},
}

// paddingScale backs SpacingClass.
// It stops at 64px and has no zero step.
var paddingScale = Scale{
	{4, "1"},
	{8, "2"},
	{12, "3"},
	{16, "4"},
	{20, "5"},
	{24, "6"},
	{32, "8"},
	{40, "10"},
	{48, "12"},
	{64, "16"},
}

// PxToSpacingToken maps a pixel value to a spacing step, e.g. 16 → "4".
// Off-scale values degrade to "[17px]" rather than failing.
func PxToSpacingToken(px int) string {
	return SpacingScale.Token(px)
}

// PxToTypeToken maps a pixel font size to a type step, e.g. 16 → "base".
func PxToTypeToken(px int) string {
	return TypeScale.Token(px)
}

// SpacingClass returns a padding class such as "p-4" or "p-[18px]".
func SpacingClass(px int) string {
	return "p-" + paddingScale.Token(px)
}

// DefaultBaseFontSize is the root font size PxToRem divides by.
const DefaultBaseFontSize = 16.0

// PxToRem converts pixels to a rem string, e.g. 24 → "1.5rem".
// A non-positive base falls back to DefaultBaseFontSize.
func PxToRem(px, base float64) string {
	if base <= 0 {
		base = DefaultBaseFontSize
	}
	return strconv.FormatFloat(px/base, 'f', -1, 64) + "rem"
}
