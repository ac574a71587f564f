package figma

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/MeKo-Tech/figmatokens/internal/style"
)

// Section names accepted by WriteSection.
const (
	SectionCSS        = "css"
	SectionTokens     = "tokens"
	SectionComponents = "components"
	SectionTailwind   = "tailwind"
)

// Sections lists every section in output order.
var Sections = []string{SectionCSS, SectionTokens, SectionComponents, SectionTailwind}

// Generator renders code snippets from design values.
type Generator struct {
	values Values
	logger *slog.Logger
}

// NewGenerator creates a snippet generator. A nil logger uses slog.Default().
func NewGenerator(values Values, logger *slog.Logger) *Generator {
	return &Generator{values: values, logger: logger}
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// WriteAll writes every section in order.
func (g *Generator) WriteAll(w io.Writer) error {
	for _, s := range Sections {
		if err := g.WriteSection(w, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteSection writes a single named section.
func (g *Generator) WriteSection(w io.Writer, section string) error {
	bw := bufio.NewWriter(w)

	var err error
	switch section {
	case SectionCSS:
		err = g.writeCSSVariables(bw)
	case SectionTokens:
		g.writeDesignTokens(bw)
	case SectionComponents:
		g.writeComponentSnippets(bw)
	case SectionTailwind:
		g.writeTailwindExamples(bw)
	default:
		return fmt.Errorf("unknown section %q (want one of %v)", section, Sections)
	}
	if err != nil {
		return fmt.Errorf("section %s: %w", section, err)
	}

	g.log().Debug("Snippet section written", "section", section)
	return bw.Flush()
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", title)
}

func (g *Generator) writeCSSVariables(w io.Writer) error {
	c := g.values.Colors

	vars := []struct {
		name string
		hex  string
	}{
		{"primary", c.Primary},
		{"primary-foreground", c.Background},
		{"background", c.Background},
		{"foreground", c.TextPrimary},
		{"secondary", c.Secondary},
		{"accent", c.Accent},
		{"destructive", c.Error},
	}

	heading(w, "CSS Variables for app/globals.css")
	fmt.Fprintln(w, ":root {")
	for _, v := range vars {
		hsl, err := style.FormatHSL(v.hex)
		if err != nil {
			return fmt.Errorf("--%s: %w", v.name, err)
		}
		fmt.Fprintf(w, "  --%s: %s;\n", v.name, hsl)
	}
	radius := style.PxToRem(float64(g.values.Components.Button.BorderRadius), style.DefaultBaseFontSize)
	fmt.Fprintf(w, "  --radius: %s;\n", radius)
	fmt.Fprint(w, "}\n\n")
	return nil
}

func (g *Generator) writeDesignTokens(w io.Writer) {
	c := g.values.Colors

	heading(w, "Design Tokens for assets/tokens/design-tokens.yaml")
	fmt.Fprintln(w, "colors:")
	fmt.Fprintln(w, "  primary:")
	fmt.Fprintf(w, "    \"500\": %q\n", c.Primary)
	fmt.Fprintf(w, "    \"600\": %q\n", c.PrimaryHover)
	fmt.Fprintln(w, "  secondary:")
	fmt.Fprintf(w, "    \"500\": %q\n", c.Secondary)
	fmt.Fprint(w, "  # ... add more colors\n\n")
}

func (g *Generator) writeComponentSnippets(w io.Writer) {
	b := g.values.Components.Button
	in := g.values.Components.Input
	card := g.values.Components.Card
	bt := g.values.Typography.Button

	heading(w, "Component Code Snippets")

	fmt.Fprintln(w, "// Button component")
	fmt.Fprintf(w, "const buttonHeight = %dpx;\n", b.Height)
	fmt.Fprintf(w, "const buttonPadding = %dpx %dpx;\n", b.PaddingX, b.PaddingY)
	fmt.Fprintf(w, "const buttonRadius = %dpx;\n", b.BorderRadius)
	fmt.Fprintf(w, "const buttonFontSize = %dpx;\n", bt.Size)
	fmt.Fprintf(w, "const buttonFontWeight = %d;\n", bt.Weight)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "// Input component")
	fmt.Fprintf(w, "const inputHeight = %dpx;\n", in.Height)
	fmt.Fprintf(w, "const inputPadding = %dpx;\n", in.Padding)
	fmt.Fprintf(w, "const inputRadius = %dpx;\n", in.BorderRadius)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "// Card component")
	fmt.Fprintf(w, "const cardPadding = %dpx;\n", card.Padding)
	fmt.Fprintf(w, "const cardRadius = %dpx;\n", card.BorderRadius)
	fmt.Fprint(w, "\n\n")
}

func (g *Generator) writeTailwindExamples(w io.Writer) {
	sp := g.values.Spacing
	b := g.values.Components.Button
	bt := g.values.Typography.Button
	h1 := g.values.Typography.H1

	heading(w, "Tailwind Class Examples")

	fmt.Fprintln(w, "// Container")
	fmt.Fprintf(w, "<div className=\"max-w-[%dpx] mx-auto px-[%dpx]\">\n", sp.ContainerMaxWidth, sp.ContainerPadding)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "// Button")
	fmt.Fprintf(w, "<button className=\"h-[%dpx] px-[%dpx] py-[%dpx] rounded-[%dpx] text-[%dpx] font-[%d]\">\n",
		b.Height, b.PaddingX, b.PaddingY, b.BorderRadius, bt.Size, bt.Weight)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "// Heading")
	fmt.Fprintf(w, "<h1 className=\"text-[%dpx] font-[%d] leading-[%s]\">\n",
		h1.Size, h1.Weight, strconv.FormatFloat(h1.LineHeight, 'f', -1, 64))
	fmt.Fprint(w, "\n\n")
}
