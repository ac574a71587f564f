// Package style converts design-tool values (hex colors, pixel sizes, shadows,
// auto-layout frames) into CSS values and utility-class strings.
//
// Every function in this package is pure: no state is kept between calls, so
// the functions are safe for concurrent use without coordination.
package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for color strings that are not exactly six
// hexadecimal digits after an optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in integer degrees and percentages.
type HSL struct {
	H int // [0,360)
	S int // [0,100]
	L int // [0,100]
}

// String formats the triple the way CSS variables consume it: "H S% L%".
// There is no hsl() wrapper; callers add it themselves.
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// ParseHex parses a 6-digit hex color, with or without a leading '#'.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColorFormat, hex)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q has non-hex digits", ErrInvalidColorFormat, hex)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Hex returns the color as 6 lowercase hex digits without '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts the color to rounded hue, saturation and lightness.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	var h, s float64
	if maxv != minv {
		d := maxv - minv
		if l > 0.5 {
			s = d / (2 - maxv - minv)
		} else {
			s = d / (maxv + minv)
		}

		// Hue accumulates on the unit circle and is scaled to degrees at the end.
		switch maxv {
		case r:
			wrap := 0.0
			if g < b {
				wrap = 6
			}
			h = ((g-b)/d + wrap) / 6
		case g:
			h = ((b-r)/d + 2) / 6
		case b:
			h = ((r-g)/d + 4) / 6
		}
	}

	return HSL{
		H: roundHalfUp(h*360) % 360,
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// roundHalfUp rounds .5 towards +Inf. All callers pass non-negative values.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// HexToHSL parses hex and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return c.HSL(), nil
}

// MustHexToHSL is like HexToHSL but panics on malformed input.
// It is meant for compile-time constant colors.
func MustHexToHSL(hex string) HSL {
	c, err := HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHSL returns hex as an "H S% L%" string.
func FormatHSL(hex string) (string, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// HexToRGBA returns "rgba(R, G, B, A)". Alpha is written as given, without rounding.
func HexToRGBA(hex string, alpha float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(alpha)), nil
}

// formatNumber writes the shortest decimal that round-trips, so 0.5 stays "0.5"
// and 1 stays "1".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
