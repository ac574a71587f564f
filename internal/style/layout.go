package style

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalidLayout is returned when an auto-layout frame carries an unknown
// direction or alignment, or negative spacing.
var ErrInvalidLayout = errors.New("invalid auto-layout")

// Direction is the main axis of an auto-layout frame.
type Direction string

const (
	Horizontal Direction = "HORIZONTAL"
	Vertical   Direction = "VERTICAL"
)

// Alignment is the cross/main axis alignment of an auto-layout frame.
type Alignment string

const (
	AlignMin     Alignment = "MIN"
	AlignCenter  Alignment = "CENTER"
	AlignMax     Alignment = "MAX"
	AlignStretch Alignment = "STRETCH"
)

// alignmentClasses holds the classes appended for each alignment.
// STRETCH has no justify pairing.
var alignmentClasses = map[Alignment]string{
	AlignCenter:  "items-center justify-center",
	AlignMin:     "items-start justify-start",
	AlignMax:     "items-end justify-end",
	AlignStretch: "items-stretch",
}

// Padding is per-side padding in pixels.
type Padding struct {
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Left   int `json:"left" yaml:"left"`
}

// UniformPadding returns the same padding on all four sides.
func UniformPadding(px int) Padding {
	return Padding{Top: px, Right: px, Bottom: px, Left: px}
}

// AutoLayout describes an auto-layout frame.
type AutoLayout struct {
	Padding   Padding   `json:"padding" yaml:"padding"`
	Gap       int       `json:"gap" yaml:"gap"`
	Alignment Alignment `json:"alignment" yaml:"alignment"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// LayoutClasses is the result of AutoLayoutToClasses.
type LayoutClasses struct {
	Container string `json:"container"`
	// Items is reserved for per-child classes and is currently always empty.
	Items string `json:"items"`
}

// ValidateAutoLayout reports every problem with l, not just the first one.
func ValidateAutoLayout(l AutoLayout) error {
	var err error

	if l.Direction != Horizontal && l.Direction != Vertical {
		err = multierr.Append(err, fmt.Errorf("%w: unknown direction %q", ErrInvalidLayout, l.Direction))
	}
	if _, ok := alignmentClasses[l.Alignment]; !ok {
		err = multierr.Append(err, fmt.Errorf("%w: unknown alignment %q", ErrInvalidLayout, l.Alignment))
	}
	if l.Gap < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: gap %d is negative", ErrInvalidLayout, l.Gap))
	}

	sides := []struct {
		name string
		px   int
	}{
		{"top", l.Padding.Top},
		{"right", l.Padding.Right},
		{"bottom", l.Padding.Bottom},
		{"left", l.Padding.Left},
	}
	for _, side := range sides {
		if side.px < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: padding-%s %d is negative", ErrInvalidLayout, side.name, side.px))
		}
	}

	return err
}

// AutoLayoutToClasses compiles l into a space-separated class list:
// direction, gap (only when non-zero), alignment, then the four padding sides.
func AutoLayoutToClasses(l AutoLayout) (LayoutClasses, error) {
	if err := ValidateAutoLayout(l); err != nil {
		return LayoutClasses{}, err
	}

	classes := make([]string, 0, 7)

	if l.Direction == Horizontal {
		classes = append(classes, "flex flex-row")
	} else {
		classes = append(classes, "flex flex-col")
	}

	if l.Gap > 0 {
		classes = append(classes, "gap-"+PxToSpacingToken(l.Gap))
	}

	classes = append(classes, alignmentClasses[l.Alignment])

	// Padding sides are always emitted, zero included.
	classes = append(classes,
		"pt-"+PxToSpacingToken(l.Padding.Top),
		"pr-"+PxToSpacingToken(l.Padding.Right),
		"pb-"+PxToSpacingToken(l.Padding.Bottom),
		"pl-"+PxToSpacingToken(l.Padding.Left),
	)

	return LayoutClasses{Container: strings.Join(classes, " ")}, nil
}
