package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPxToSpacingToken(t *testing.T) {
	tests := []struct {
		px   int
		want string
	}{
		{0, "0"},
		{4, "1"},
		{16, "4"},
		{17, "[17px]"},
		{15, "[15px]"},
		{96, "24"},
		{128, "32"},
		{129, "[129px]"},
		{-4, "[-4px]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.px), func(t *testing.T) {
			assert.Equal(t, tt.want, PxToSpacingToken(tt.px))
		})
	}
}

func TestPxToTypeToken(t *testing.T) {
	tests := []struct {
		px   int
		want string
	}{
		{12, "xs"},
		{16, "base"},
		{15, "[15px]"},
		{30, "3xl"},
		{72, "7xl"},
		{0, "[0px]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.px), func(t *testing.T) {
			assert.Equal(t, tt.want, PxToTypeToken(tt.px))
		})
	}
}

func TestScalesAreAscending(t *testing.T) {
	for name, s := range map[string]Scale{"spacing": SpacingScale, "type": TypeScale, "padding": paddingScale} {
		vals := s.Values()
		for i := 1; i < len(vals); i++ {
			assert.Less(t, vals[i-1], vals[i], "%s scale out of order at %d", name, i)
		}
	}
}

func TestEveryCanonicalValueResolves(t *testing.T) {
	for _, step := range SpacingScale {
		label, ok := SpacingScale.Lookup(step.Px)
		assert.True(t, ok)
		assert.Equal(t, step.Label, label)
	}
	for _, step := range TypeScale {
		assert.Equal(t, step.Label, PxToTypeToken(step.Px))
	}
}

func TestSpacingClass(t *testing.T) {
	assert.Equal(t, "p-4", SpacingClass(16))
	assert.Equal(t, "p-16", SpacingClass(64))
	assert.Equal(t, "p-[0px]", SpacingClass(0))
	assert.Equal(t, "p-[80px]", SpacingClass(80))
	assert.Equal(t, "p-[18px]", SpacingClass(18))
}

func TestPxToRem(t *testing.T) {
	tests := []struct {
		px, base float64
		want     string
	}{
		{16, 16, "1rem"},
		{24, 16, "1.5rem"},
		{8, 16, "0.5rem"},
		{8, 0, "0.5rem"},
		{20, 10, "2rem"},
		{0, 16, "0rem"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, PxToRem(tt.px, tt.base))
		})
	}
}
