package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var spacingCmd = &cobra.Command{
	Use:   "spacing <px>...",
	Short: "Map pixel values to spacing scale steps",
	Long: `Map pixel values to spacing scale steps (16 → 4). Values that are not on the
scale are printed as arbitrary values ([17px]).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpacing,
}

var typeCmd = &cobra.Command{
	Use:   "type <px>...",
	Short: "Map pixel font sizes to type scale steps",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runType,
}

var remCmd = &cobra.Command{
	Use:   "rem <px>...",
	Short: "Convert pixels to rem",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRem,
}

var responsiveCmd = &cobra.Command{
	Use:   "responsive <property> <mobile> [tablet] [desktop]",
	Short: "Build a responsive class list for a frame size",
	Example: `  figmatokens responsive p 2 4 8 --breakpoint desktop
  p-2 md:p-4 lg:p-8`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runResponsive,
}

func init() {
	rootCmd.AddCommand(spacingCmd, typeCmd, remCmd, responsiveCmd)

	spacingCmd.Flags().Bool("class", false, "Print padding classes (p-4) instead of bare steps")
	remCmd.Flags().Float64("base", style.DefaultBaseFontSize, "Root font size in pixels")
	responsiveCmd.Flags().String("breakpoint", string(style.Desktop), "Frame size: mobile, tablet or desktop")

	bindFlags := []struct {
		key  string
		cmd  *cobra.Command
		flag string
	}{
		{"spacing.class", spacingCmd, "class"},
		{"rem.base", remCmd, "base"},
		{"responsive.breakpoint", responsiveCmd, "breakpoint"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, bf.cmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runSpacing(cmd *cobra.Command, args []string) error {
	asClass := viper.GetBool("spacing.class")
	return convertPx(cmd, args, func(px int) string {
		if asClass {
			return style.SpacingClass(px)
		}
		return style.PxToSpacingToken(px)
	})
}

func runType(cmd *cobra.Command, args []string) error {
	return convertPx(cmd, args, style.PxToTypeToken)
}

func runRem(cmd *cobra.Command, args []string) error {
	base := viper.GetFloat64("rem.base")
	for _, arg := range args {
		px, err := strconv.ParseFloat(strings.TrimSuffix(arg, "px"), 64)
		if err != nil {
			return fmt.Errorf("invalid pixel value %q", arg)
		}
		printResult(cmd, args, arg, style.PxToRem(px, base))
	}
	return nil
}

func runResponsive(cmd *cobra.Command, args []string) error {
	bp, err := style.ParseBreakpoint(viper.GetString("responsive.breakpoint"))
	if err != nil {
		return err
	}

	vals := make([]string, 4)
	copy(vals, args)
	fmt.Fprintln(cmd.OutOrStdout(), style.ResponsiveClass(bp, vals[0], vals[1], vals[2], vals[3]))
	return nil
}

func convertPx(cmd *cobra.Command, args []string, conv func(int) string) error {
	for _, arg := range args {
		px, err := parsePx(arg)
		if err != nil {
			return err
		}
		printResult(cmd, args, arg, conv(px))
	}
	return nil
}

// parsePx accepts "16" or "16px".
func parsePx(s string) (int, error) {
	px, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil {
		return 0, fmt.Errorf("invalid pixel value %q", s)
	}
	return px, nil
}
