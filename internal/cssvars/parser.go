// Package cssvars reads CSS custom properties out of a stylesheet and checks
// them against the design-token table.
package cssvars

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// RootSelector is the scope design tokens are published under.
const RootSelector = ":root"

// Declaration is one custom property found in a ruleset.
type Declaration struct {
	Selector string
	Name     string
	Value    string
}

// Stylesheet holds the custom properties of a parsed stylesheet in source order.
type Stylesheet struct {
	Declarations []Declaration
}

// Scope returns the custom properties declared for selector. A ruleset with a
// selector list ("html, :root") counts for each of its selectors. Later
// declarations win.
func (s *Stylesheet) Scope(selector string) map[string]string {
	vars := make(map[string]string)
	for _, d := range s.Declarations {
		for _, sel := range SplitSelectors(d.Selector) {
			if sel == selector {
				vars[d.Name] = d.Value
				break
			}
		}
	}
	return vars
}

// SplitSelectors splits a selector list on its top-level commas. Commas inside
// parentheses or brackets (":is(a, b)", "[data-x='a,b']") do not split.
func SplitSelectors(list string) []string {
	var (
		out   []string
		depth int
		quote rune
		start int
	)
	for i, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			if sel := strings.TrimSpace(list[start:i]); sel != "" {
				out = append(out, sel)
			}
			start = i + 1
		}
	}
	if sel := strings.TrimSpace(list[start:]); sel != "" {
		out = append(out, sel)
	}
	return out
}

// Parser extracts custom properties from CSS.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger uses slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// Parse reads r to the end. Regular declarations and at-rule preludes are
// skipped; rulesets nested in @media blocks are read like top-level ones.
func (p *Parser) Parse(r io.Reader) (*Stylesheet, error) {
	parser := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}

	var selectors []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
			}
			p.log().Debug("Parsed stylesheet", "custom_properties", len(sheet.Declarations))
			return sheet, nil

		case css.BeginRulesetGrammar:
			selectors = append(selectors, joinTokens(data, parser.Values()))

		case css.EndRulesetGrammar:
			if len(selectors) > 0 {
				selectors = selectors[:len(selectors)-1]
			}

		case css.CustomPropertyGrammar:
			if len(selectors) == 0 {
				continue
			}
			d := Declaration{
				Selector: selectors[len(selectors)-1],
				Name:     string(data),
				Value:    joinTokens(nil, parser.Values()),
			}
			p.log().Debug("Custom property", "selector", d.Selector, "name", d.Name, "value", d.Value)
			sheet.Declarations = append(sheet.Declarations, d)
		}
	}
}

// joinTokens concatenates token data and collapses whitespace runs.
func joinTokens(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
