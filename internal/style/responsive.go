package style

import (
	"fmt"
	"strings"
)

// Breakpoint is a design-tool frame size.
type Breakpoint string

const (
	Mobile  Breakpoint = "mobile"
	Tablet  Breakpoint = "tablet"
	Desktop Breakpoint = "desktop"
)

// ParseBreakpoint accepts "mobile", "tablet" or "desktop" in any case.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch bp := Breakpoint(strings.ToLower(strings.TrimSpace(s))); bp {
	case Mobile, Tablet, Desktop:
		return bp, nil
	default:
		return "", fmt.Errorf("unknown breakpoint %q (want mobile, tablet or desktop)", s)
	}
}

// breakpointPrefix maps frame sizes to utility-class variant prefixes.
var breakpointPrefix = map[Breakpoint]string{
	Mobile:  "sm",
	Tablet:  "md",
	Desktop: "lg",
}

// ResponsiveClass builds "property-mobile" plus the tablet and desktop variants
// that apply at bp. Empty tablet or desktop values are skipped.
//
//	ResponsiveClass(Desktop, "p", "2", "4", "8") == "p-2 md:p-4 lg:p-8"
func ResponsiveClass(bp Breakpoint, property, mobile, tablet, desktop string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s", property, mobile)

	if tablet != "" && bp != Mobile {
		fmt.Fprintf(&b, " %s:%s-%s", breakpointPrefix[Tablet], property, tablet)
	}
	if desktop != "" && bp == Desktop {
		fmt.Fprintf(&b, " %s:%s-%s", breakpointPrefix[Desktop], property, desktop)
	}

	return b.String()
}
