// Package tokens holds the design-token table: colors, typography, spacing,
// radii, shadows, breakpoints and z-index layers.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MeKo-Tech/figmatokens/assets"
	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DefaultKey is the key that names a group's base value, so accent.DEFAULT
// flattens to "accent".
const DefaultKey = "DEFAULT"

// ColorTree is either a single hex color or a group of named shades.
type ColorTree struct {
	Hex    string
	Shades Ordered[*ColorTree]
}

// UnmarshalYAML accepts a scalar hex string or a mapping of shades.
func (c *ColorTree) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		c.Hex = n.Value
		return nil
	case yaml.MappingNode:
		return n.Decode(&c.Shades)
	default:
		return fmt.Errorf("line %d: color must be a hex string or a mapping", n.Line)
	}
}

// MarshalYAML writes leaves as strings and groups as mappings.
func (c *ColorTree) MarshalYAML() (any, error) {
	if c.Shades == nil {
		return c.Hex, nil
	}
	return c.Shades, nil
}

// MarshalJSON writes leaves as strings and groups as objects.
func (c *ColorTree) MarshalJSON() ([]byte, error) {
	if c.Shades == nil {
		return json.Marshal(c.Hex)
	}
	return c.Shades.MarshalJSON()
}

// FontSize is a font size with its paired line height.
type FontSize struct {
	Size       string `yaml:"size" json:"size"`
	LineHeight string `yaml:"lineHeight" json:"lineHeight"`
}

// Typography groups the text tokens.
type Typography struct {
	FontFamily Ordered[[]string] `yaml:"fontFamily" json:"fontFamily"`
	FontSize   Ordered[FontSize] `yaml:"fontSize" json:"fontSize"`
	FontWeight Ordered[string]   `yaml:"fontWeight" json:"fontWeight"`
}

// Set is a complete design-token table.
type Set struct {
	Colors       Ordered[*ColorTree] `yaml:"colors" json:"colors"`
	Typography   Typography          `yaml:"typography" json:"typography"`
	Spacing      Ordered[string]     `yaml:"spacing" json:"spacing"`
	BorderRadius Ordered[string]     `yaml:"borderRadius" json:"borderRadius"`
	Shadows      Ordered[string]     `yaml:"shadows" json:"shadows"`
	Breakpoints  Ordered[string]     `yaml:"breakpoints" json:"breakpoints"`
	ZIndex       Ordered[int]        `yaml:"zIndex" json:"zIndex"`
}

// Color is one flattened color token.
type Color struct {
	Name string
	Hex  string
}

// Default returns the embedded token table.
func Default() (*Set, error) {
	data, err := assets.FS.ReadFile(assets.DesignTokensPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tokens: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// LoadFile reads a token table from a YAML file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tokens %s: %w", path, err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load decodes and validates a token table.
func Load(r io.Reader) (*Set, error) {
	var set Set
	if err := yaml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode tokens: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks every color token. All problems are reported together.
// Besides malformed hex values it rejects leaves without a value, a DEFAULT
// key at the top level (the token would have no name), and keys that flatten
// to the same name ("fgMuted" and "fg-muted").
func (s *Set) Validate() error {
	var err error
	seen := make(map[string]string)
	for _, l := range s.colorLeaves() {
		if l.tree == nil {
			err = multierr.Append(err, fmt.Errorf("colors.%s: no value", l.key))
			continue
		}
		if l.name == "" {
			err = multierr.Append(err, fmt.Errorf("colors.%s: token has no name", l.key))
			continue
		}
		if prev, dup := seen[l.name]; dup {
			err = multierr.Append(err, fmt.Errorf("colors.%s: name %s already used by colors.%s", l.key, l.name, prev))
		} else {
			seen[l.name] = l.key
		}
		if _, perr := style.ParseHex(l.tree.Hex); perr != nil {
			err = multierr.Append(err, fmt.Errorf("color %s: %w", l.name, perr))
		}
	}
	for _, e := range s.ZIndex {
		if e.Value < 0 {
			err = multierr.Append(err, fmt.Errorf("zIndex %s: %d is negative", e.Key, e.Value))
		}
	}
	return err
}

// colorLeaf is one leaf of the color tree. tree is nil for keys without a value.
type colorLeaf struct {
	key  string // dotted source path, "primary.500"
	name string
	tree *ColorTree
}

// colorLeaves walks the color tree depth-first in document order.
func (s *Set) colorLeaves() []colorLeaf {
	var out []colorLeaf
	var walk func(keys, path []string, shades Ordered[*ColorTree])
	walk = func(keys, path []string, shades Ordered[*ColorTree]) {
		for _, e := range shades {
			k := append(append([]string(nil), keys...), e.Key)
			p := path
			if e.Key != DefaultKey {
				p = append(append([]string(nil), path...), e.Key)
			}
			if e.Value != nil && e.Value.Shades != nil {
				walk(k, p, e.Value.Shades)
				continue
			}
			out = append(out, colorLeaf{
				key:  strings.Join(k, "."),
				name: TokenName(p...),
				tree: e.Value,
			})
		}
	}
	walk(nil, nil, s.Colors)
	return out
}

// FlatColors returns one entry per color leaf in document order, named by its
// path ("primary-500", "neutral-gray-50"). Leaves without a value are skipped.
func (s *Set) FlatColors() []Color {
	var out []Color
	for _, l := range s.colorLeaves() {
		if l.tree == nil {
			continue
		}
		out = append(out, Color{Name: l.name, Hex: l.tree.Hex})
	}
	return out
}

// Color looks up a flattened color by name.
func (s *Set) Color(name string) (Color, bool) {
	for _, c := range s.FlatColors() {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// TokenName joins path segments into a kebab-case token name.
// camelCase segments are split ("modalBackdrop" → "modal-backdrop").
func TokenName(path ...string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if p == "" || p == DefaultKey {
			continue
		}
		parts = append(parts, slug.Make(splitCamel(p)))
	}
	return strings.Join(parts, "-")
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := s[i-1]
			if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
				b.WriteByte('-')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
