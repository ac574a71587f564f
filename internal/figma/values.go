// Package figma turns values copied out of the design tool into code snippets
// for the project, and prints the manual extraction guide.
package figma

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/figmatokens/assets"
	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Colors are the named colors of the design, as hex strings.
type Colors struct {
	Primary       string `mapstructure:"primary"`
	PrimaryHover  string `mapstructure:"primaryHover"`
	Secondary     string `mapstructure:"secondary"`
	Background    string `mapstructure:"background"`
	BackgroundAlt string `mapstructure:"backgroundAlt"`
	TextPrimary   string `mapstructure:"textPrimary"`
	TextSecondary string `mapstructure:"textSecondary"`
	Accent        string `mapstructure:"accent"`
	Success       string `mapstructure:"success"`
	Error         string `mapstructure:"error"`
}

// TextStyle is one text style. LineHeight is unitless; zero means unset.
type TextStyle struct {
	Size       int     `mapstructure:"size"`
	Weight     int     `mapstructure:"weight"`
	LineHeight float64 `mapstructure:"lineHeight"`
}

// Typography holds the text styles used by the page.
type Typography struct {
	H1     TextStyle `mapstructure:"h1"`
	H2     TextStyle `mapstructure:"h2"`
	H3     TextStyle `mapstructure:"h3"`
	Body   TextStyle `mapstructure:"body"`
	Button TextStyle `mapstructure:"button"`
}

// Spacing holds page-level layout measurements in pixels.
type Spacing struct {
	ContainerMaxWidth int `mapstructure:"containerMaxWidth"`
	ContainerPadding  int `mapstructure:"containerPadding"`
	SectionGap        int `mapstructure:"sectionGap"`
	ElementGap        int `mapstructure:"elementGap"`
}

// Button measurements in pixels.
type Button struct {
	Height       int `mapstructure:"height"`
	PaddingX     int `mapstructure:"paddingX"`
	PaddingY     int `mapstructure:"paddingY"`
	BorderRadius int `mapstructure:"borderRadius"`
}

// Input measurements in pixels.
type Input struct {
	Height       int `mapstructure:"height"`
	Padding      int `mapstructure:"padding"`
	BorderRadius int `mapstructure:"borderRadius"`
}

// Card measurements in pixels.
type Card struct {
	Padding      int `mapstructure:"padding"`
	BorderRadius int `mapstructure:"borderRadius"`
}

// Components groups per-component measurements.
type Components struct {
	Button Button `mapstructure:"button"`
	Input  Input  `mapstructure:"input"`
	Card   Card   `mapstructure:"card"`
}

// Values is everything the snippet generator reads.
type Values struct {
	Colors     Colors     `mapstructure:"colors"`
	Typography Typography `mapstructure:"typography"`
	Spacing    Spacing    `mapstructure:"spacing"`
	Components Components `mapstructure:"components"`
}

// DefaultValues returns the embedded example values.
func DefaultValues() (Values, error) {
	data, err := assets.FS.ReadFile(assets.FigmaValuesPath)
	if err != nil {
		return Values{}, fmt.Errorf("failed to read embedded values: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Values{}, fmt.Errorf("failed to parse embedded values: %w", err)
	}
	return decode(v)
}

// LoadValues reads values from a YAML, JSON or TOML file. Keys missing from
// the file keep their embedded defaults.
func LoadValues(path string) (Values, error) {
	defaults, err := DefaultValues()
	if err != nil {
		return Values{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return Values{}, fmt.Errorf("failed to read values %s: %w", path, err)
	}

	out := defaults
	if err := v.Unmarshal(&out); err != nil {
		return Values{}, fmt.Errorf("failed to decode values %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return Values{}, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func decode(v *viper.Viper) (Values, error) {
	var out Values
	if err := v.Unmarshal(&out); err != nil {
		return Values{}, fmt.Errorf("failed to decode values: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Values{}, err
	}
	return out, nil
}

// Validate checks that every color the generator converts is a usable hex
// color. CSS color keywords are accepted and normalised to hex in place.
func (v *Values) Validate() error {
	var err error

	fields := []struct {
		name string
		ptr  *string
	}{
		{"primary", &v.Colors.Primary},
		{"primaryHover", &v.Colors.PrimaryHover},
		{"secondary", &v.Colors.Secondary},
		{"background", &v.Colors.Background},
		{"backgroundAlt", &v.Colors.BackgroundAlt},
		{"textPrimary", &v.Colors.TextPrimary},
		{"textSecondary", &v.Colors.TextSecondary},
		{"accent", &v.Colors.Accent},
		{"success", &v.Colors.Success},
		{"error", &v.Colors.Error},
	}
	for _, f := range fields {
		if *f.ptr == "" {
			continue
		}
		if strings.HasPrefix(*f.ptr, "#") {
			if _, perr := style.ParseHex(*f.ptr); perr != nil {
				err = multierr.Append(err, fmt.Errorf("colors.%s: %w", f.name, perr))
			}
			continue
		}
		hex, perr := style.ResolveColor(*f.ptr)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("colors.%s: %w", f.name, perr))
			continue
		}
		*f.ptr = "#" + hex
	}

	return err
}
