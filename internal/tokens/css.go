package tokens

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MeKo-Tech/figmatokens/internal/style"
)

// ColorVars returns the custom-property values a stylesheet should carry for
// every color token, keyed by variable name ("--primary-500") with "H S% L%" values.
func (s *Set) ColorVars() (map[string]string, error) {
	colors := s.FlatColors()
	vars := make(map[string]string, len(colors))
	for _, c := range colors {
		v, err := style.FormatHSL(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", c.Name, err)
		}
		vars["--"+c.Name] = v
	}
	return vars, nil
}

// WriteCSS writes the table as a :root block of custom properties.
// Colors are written as bare HSL triples so they can be wrapped with hsl().
func (s *Set) WriteCSS(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, ":root {")
	for _, c := range s.FlatColors() {
		v, err := style.FormatHSL(c.Hex)
		if err != nil {
			return fmt.Errorf("color %s: %w", c.Name, err)
		}
		fmt.Fprintf(bw, "  --%s: %s;\n", c.Name, v)
	}

	groups := []struct {
		prefix string
		values Ordered[string]
	}{
		{"spacing", s.Spacing},
		{"radius", s.BorderRadius},
		{"shadow", s.Shadows},
		{"breakpoint", s.Breakpoints},
		{"font-weight", s.Typography.FontWeight},
	}
	for _, g := range groups {
		for _, e := range g.values {
			fmt.Fprintf(bw, "  --%s: %s;\n", TokenName(g.prefix, e.Key), e.Value)
		}
	}
	for _, e := range s.Typography.FontSize {
		fmt.Fprintf(bw, "  --%s: %s;\n", TokenName("text", e.Key), e.Value.Size)
		if e.Value.LineHeight != "" {
			fmt.Fprintf(bw, "  --%s: %s;\n", TokenName("leading", e.Key), e.Value.LineHeight)
		}
	}
	for _, e := range s.ZIndex {
		fmt.Fprintf(bw, "  --%s: %d;\n", TokenName("z", e.Key), e.Value)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
