package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponsiveClass(t *testing.T) {
	tests := []struct {
		name                    string
		bp                      Breakpoint
		mobile, tablet, desktop string
		want                    string
	}{
		{"mobile ignores larger values", Mobile, "2", "4", "8", "p-2"},
		{"tablet adds md", Tablet, "2", "4", "8", "p-2 md:p-4"},
		{"desktop adds md and lg", Desktop, "2", "4", "8", "p-2 md:p-4 lg:p-8"},
		{"desktop without tablet value", Desktop, "2", "", "8", "p-2 lg:p-8"},
		{"tablet without tablet value", Tablet, "2", "", "8", "p-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResponsiveClass(tt.bp, "p", tt.mobile, tt.tablet, tt.desktop))
		})
	}
}

func TestParseBreakpoint(t *testing.T) {
	bp, err := ParseBreakpoint(" Desktop ")
	require.NoError(t, err)
	assert.Equal(t, Desktop, bp)

	_, err = ParseBreakpoint("watch")
	assert.Error(t, err)
}
