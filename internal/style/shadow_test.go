package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadowToCSS(t *testing.T) {
	tests := []struct {
		name   string
		shadow Shadow
		want   string
	}{
		{
			name:   "opaque default",
			shadow: NewShadow(0, 4, 6, 0, "#000000"),
			want:   "0px 4px 6px 0px rgba(0, 0, 0, 1)",
		},
		{
			name:   "translucent",
			shadow: Shadow{X: 0, Y: 1, Blur: 2, Spread: 0, Color: "000000", Opacity: 0.05},
			want:   "0px 1px 2px 0px rgba(0, 0, 0, 0.05)",
		},
		{
			name:   "negative offsets",
			shadow: Shadow{X: -2, Y: -8, Blur: 16, Spread: 4, Color: "#8b5cf6", Opacity: 0.25},
			want:   "-2px -8px 16px 4px rgba(139, 92, 246, 0.25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShadowToCSS(tt.shadow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShadowToCSSErrors(t *testing.T) {
	tests := []struct {
		name   string
		shadow Shadow
		target error
	}{
		{"negative blur", Shadow{Blur: -1, Color: "000000", Opacity: 1}, ErrInvalidShadow},
		{"negative spread", Shadow{Spread: -1, Color: "000000", Opacity: 1}, ErrInvalidShadow},
		{"opacity above one", Shadow{Color: "000000", Opacity: 1.5}, ErrInvalidShadow},
		{"bad color", Shadow{Color: "black!", Opacity: 1}, ErrInvalidColorFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShadowToCSS(tt.shadow)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
