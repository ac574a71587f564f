package style

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// clampU8 clamps an int value to the uint8 range [0, 255].
func clampU8(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// RGB converts the triple back to 8-bit channels.
// The triple is already rounded, so the result may be off by one per channel
// from the color it was derived from.
func (c HSL) RGB() RGB {
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	// Achromatic (gray)
	if s == 0 {
		v := clampU8(roundHalfUp(l * 255))
		return RGB{v, v, v}
	}

	// Chroma C = (1 - |2L-1|) * S
	chroma := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(float64(c.H), 360) / 60
	if hp < 0 {
		hp += 6
	}
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - chroma/2

	var rp, gp, bp float64
	switch int(hp) {
	case 0:
		rp, gp, bp = chroma, x, 0
	case 1:
		rp, gp, bp = x, chroma, 0
	case 2:
		rp, gp, bp = 0, chroma, x
	case 3:
		rp, gp, bp = 0, x, chroma
	case 4:
		rp, gp, bp = x, 0, chroma
	default:
		rp, gp, bp = chroma, 0, x
	}

	return RGB{
		R: clampU8(roundHalfUp((rp + m) * 255)),
		G: clampU8(roundHalfUp((gp + m) * 255)),
		B: clampU8(roundHalfUp((bp + m) * 255)),
	}
}

// HSLToHex converts an HSL triple to 6 lowercase hex digits.
func HSLToHex(c HSL) string {
	return c.RGB().Hex()
}

// ParseHSL parses an "H S% L%" string as produced by HSL.String.
// A surrounding hsl() wrapper and comma separators are tolerated.
func ParseHSL(s string) (HSL, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "hsl(")
	v = strings.TrimSuffix(v, ")")
	v = strings.ReplaceAll(v, ",", " ")

	var c HSL
	if _, err := fmt.Sscanf(v, "%d %d%% %d%%", &c.H, &c.S, &c.L); err != nil {
		return HSL{}, fmt.Errorf("%w: %q is not an \"H S%% L%%\" triple", ErrInvalidColorFormat, s)
	}
	if c.H < 0 || c.H >= 360 || c.S < 0 || c.S > 100 || c.L < 0 || c.L > 100 {
		return HSL{}, fmt.Errorf("%w: %q is out of range", ErrInvalidColorFormat, s)
	}
	return c, nil
}

// cssColor4Names holds the keywords CSS Color 4 added on top of the SVG 1.1
// list in colornames.
var cssColor4Names = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
}

// lookupColorName resolves a case-insensitive CSS color keyword.
func lookupColorName(name string) (color.RGBA, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := cssColor4Names[key]; ok {
		return c, true
	}
	c, ok := colornames.Map[key]
	return c, ok
}

// ResolveColor accepts a hex color or a CSS color keyword such as "white" and
// returns 6 lowercase hex digits.
func ResolveColor(value string) (string, error) {
	if c, ok := lookupColorName(value); ok {
		return RGB{R: c.R, G: c.G, B: c.B}.Hex(), nil
	}
	c, err := ParseHex(value)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
