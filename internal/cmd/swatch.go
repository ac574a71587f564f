package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/figmatokens/internal/swatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Render a PNG palette of the color tokens",
	RunE:  runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	def := swatch.DefaultOptions()
	swatchCmd.Flags().StringP("output", "o", "palette.png", "Output PNG path")
	swatchCmd.Flags().Int("columns", def.Columns, "Cells per row")
	swatchCmd.Flags().Int("cell-size", def.CellSize, "Cell size in pixels")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"swatch.output", "output"},
		{"swatch.columns", "columns"},
		{"swatch.cell_size", "cell-size"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, swatchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runSwatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	output := viper.GetString("swatch.output")
	opts := swatch.Options{
		Columns:  viper.GetInt("swatch.columns"),
		CellSize: viper.GetInt("swatch.cell_size"),
	}

	set, err := loadTokens()
	if err != nil {
		return err
	}

	colors := set.FlatColors()
	img, err := swatch.Render(colors, opts)
	if err != nil {
		return err
	}
	if err := swatch.Write(output, img); err != nil {
		return err
	}

	logger.Info("Palette written",
		"output", output,
		"colors", len(colors),
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
	)
	return nil
}
