package style

import (
	"errors"
	"fmt"
)

// ErrInvalidShadow is returned for shadows with negative blur or spread, or an
// opacity outside [0,1].
var ErrInvalidShadow = errors.New("invalid shadow")

// Shadow is a drop shadow as exported from the design tool's effects panel.
type Shadow struct {
	X       int     `json:"x" yaml:"x"`
	Y       int     `json:"y" yaml:"y"`
	Blur    int     `json:"blur" yaml:"blur"`
	Spread  int     `json:"spread" yaml:"spread"`
	Color   string  `json:"color" yaml:"color"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// NewShadow returns a fully opaque shadow.
func NewShadow(x, y, blur, spread int, color string) Shadow {
	return Shadow{X: x, Y: y, Blur: blur, Spread: spread, Color: color, Opacity: 1}
}

// ShadowToCSS renders s as a box-shadow value: "0px 4px 6px 0px rgba(0, 0, 0, 0.1)".
func ShadowToCSS(s Shadow) (string, error) {
	if s.Blur < 0 {
		return "", fmt.Errorf("%w: blur %d is negative", ErrInvalidShadow, s.Blur)
	}
	if s.Spread < 0 {
		return "", fmt.Errorf("%w: spread %d is negative", ErrInvalidShadow, s.Spread)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return "", fmt.Errorf("%w: opacity %v is outside [0,1]", ErrInvalidShadow, s.Opacity)
	}

	rgba, err := HexToRGBA(s.Color, s.Opacity)
	if err != nil {
		return "", fmt.Errorf("shadow color: %w", err)
	}
	return fmt.Sprintf("%dpx %dpx %dpx %dpx %s", s.X, s.Y, s.Blur, s.Spread, rgba), nil
}
