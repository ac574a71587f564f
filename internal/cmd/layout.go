package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compile an auto-layout frame into flex and padding classes",
	Long: `Compile an auto-layout frame (direction, gap, alignment, padding) into a
class list for the container element.

The frame can be given with flags or read from a YAML/JSON file with --file:

  direction: HORIZONTAL
  alignment: CENTER
  gap: 16
  padding: {top: 8, right: 8, bottom: 8, left: 8}`,
	Example: `  figmatokens layout --direction horizontal --alignment center --gap 16 --padding 8
  flex flex-row gap-4 items-center justify-center pt-2 pr-2 pb-2 pl-2`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().String("direction", string(style.Horizontal), "Layout direction: HORIZONTAL or VERTICAL")
	layoutCmd.Flags().String("alignment", string(style.AlignMin), "Alignment: MIN, CENTER, MAX or STRETCH")
	layoutCmd.Flags().Int("gap", 0, "Gap between items in pixels")
	layoutCmd.Flags().String("padding", "0", "Padding in pixels: all, vertical,horizontal, or top,right,bottom,left")
	layoutCmd.Flags().StringP("file", "f", "", "Read the frame from a YAML or JSON file instead of flags")
	layoutCmd.Flags().Bool("json", false, "Print container and items classes as JSON")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"layout.direction", "direction"},
		{"layout.alignment", "alignment"},
		{"layout.gap", "gap"},
		{"layout.padding", "padding"},
		{"layout.file", "file"},
		{"layout.json", "json"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, layoutCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runLayout(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	var (
		l   style.AutoLayout
		err error
	)
	if file := viper.GetString("layout.file"); file != "" {
		l, err = readLayoutFile(file)
	} else {
		l, err = layoutFromFlags()
	}
	if err != nil {
		return err
	}

	logger.Debug("Compiling auto-layout",
		"direction", l.Direction,
		"alignment", l.Alignment,
		"gap", l.Gap,
		"padding", l.Padding,
	)

	classes, err := style.AutoLayoutToClasses(l)
	if err != nil {
		return err
	}

	if viper.GetBool("layout.json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(classes)
	}

	fmt.Fprintln(cmd.OutOrStdout(), classes.Container)
	return nil
}

func layoutFromFlags() (style.AutoLayout, error) {
	padding, err := parsePadding(viper.GetString("layout.padding"))
	if err != nil {
		return style.AutoLayout{}, err
	}

	return style.AutoLayout{
		Padding:   padding,
		Gap:       viper.GetInt("layout.gap"),
		Alignment: style.Alignment(strings.ToUpper(viper.GetString("layout.alignment"))),
		Direction: style.Direction(strings.ToUpper(viper.GetString("layout.direction"))),
	}, nil
}

func readLayoutFile(path string) (style.AutoLayout, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return style.AutoLayout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var l style.AutoLayout
	if err := v.Unmarshal(&l); err != nil {
		return style.AutoLayout{}, fmt.Errorf("failed to decode layout %s: %w", path, err)
	}
	return l, nil
}

// parsePadding accepts CSS shorthand with one, two or four comma-separated
// pixel values.
func parsePadding(s string) (style.Padding, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, len(parts))
	for i, p := range parts {
		px, err := parsePx(p)
		if err != nil {
			return style.Padding{}, fmt.Errorf("invalid padding %q: %w", s, err)
		}
		vals[i] = px
	}

	switch len(vals) {
	case 1:
		return style.UniformPadding(vals[0]), nil
	case 2:
		return style.Padding{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 4:
		return style.Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return style.Padding{}, fmt.Errorf("invalid padding %q: expected 1, 2 or 4 values, got %d", s, len(vals))
	}
}
