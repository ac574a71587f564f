package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var hslCmd = &cobra.Command{
	Use:   "hsl <hex>...",
	Short: "Convert hex colors to \"H S% L%\" triples for CSS variables",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHSL,
}

var rgbaCmd = &cobra.Command{
	Use:   "rgba <hex>...",
	Short: "Convert hex colors to rgba() values",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRGBA,
}

var shadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Convert a drop shadow from the effects panel to a box-shadow value",
	RunE:  runShadow,
}

func init() {
	rootCmd.AddCommand(hslCmd, rgbaCmd, shadowCmd)

	rgbaCmd.Flags().Float64("alpha", 1, "Alpha channel (0..1)")

	shadowCmd.Flags().Int("x", 0, "Horizontal offset in pixels")
	shadowCmd.Flags().Int("y", 4, "Vertical offset in pixels")
	shadowCmd.Flags().Int("blur", 6, "Blur radius in pixels")
	shadowCmd.Flags().Int("spread", 0, "Spread in pixels")
	shadowCmd.Flags().String("color", "#000000", "Shadow color (hex)")
	shadowCmd.Flags().Float64("opacity", 1, "Shadow opacity (0..1)")

	bindFlags := []struct {
		key  string
		cmd  *cobra.Command
		flag string
	}{
		{"rgba.alpha", rgbaCmd, "alpha"},
		{"shadow.x", shadowCmd, "x"},
		{"shadow.y", shadowCmd, "y"},
		{"shadow.blur", shadowCmd, "blur"},
		{"shadow.spread", shadowCmd, "spread"},
		{"shadow.color", shadowCmd, "color"},
		{"shadow.opacity", shadowCmd, "opacity"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, bf.cmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runHSL(cmd *cobra.Command, args []string) error {
	for _, hex := range args {
		v, err := style.FormatHSL(hex)
		if err != nil {
			return err
		}
		printResult(cmd, args, hex, v)
	}
	return nil
}

func runRGBA(cmd *cobra.Command, args []string) error {
	alpha := viper.GetFloat64("rgba.alpha")
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("alpha must be within [0,1]")
	}

	for _, hex := range args {
		v, err := style.HexToRGBA(hex, alpha)
		if err != nil {
			return err
		}
		printResult(cmd, args, hex, v)
	}
	return nil
}

func runShadow(cmd *cobra.Command, args []string) error {
	s := style.Shadow{
		X:       viper.GetInt("shadow.x"),
		Y:       viper.GetInt("shadow.y"),
		Blur:    viper.GetInt("shadow.blur"),
		Spread:  viper.GetInt("shadow.spread"),
		Color:   viper.GetString("shadow.color"),
		Opacity: viper.GetFloat64("shadow.opacity"),
	}

	v, err := style.ShadowToCSS(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

// printResult prints just the value for a single input, or "input: value"
// lines when several inputs were given.
func printResult(cmd *cobra.Command, args []string, in, out string) {
	if len(args) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", in, out)
}
