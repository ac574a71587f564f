package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/MeKo-Tech/figmatokens/internal/cssvars"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errCheckFailed = errors.New("stylesheet does not match the design tokens")

var checkCmd = &cobra.Command{
	Use:   "check <stylesheet>",
	Short: "Check a stylesheet's color variables against the design tokens",
	Long: `Check that a stylesheet declares every color token as a custom property with
the expected HSL triple, e.g. --primary-500: 199 89% 48%;

Only declarations in the --selector ruleset are considered (default :root).
The command exits non-zero when anything is missing or different.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("selector", cssvars.RootSelector, "Ruleset selector holding the variables")

	if err := viper.BindPFlag("check.selector", checkCmd.Flags().Lookup("selector")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	path := args[0]
	selector := viper.GetString("check.selector")

	set, err := loadTokens()
	if err != nil {
		return err
	}
	expected, err := set.ColorVars()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open stylesheet: %w", err)
	}
	defer f.Close()

	sheet, err := cssvars.NewParser(logger).Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	mismatches := cssvars.Check(sheet.Scope(selector), expected)
	for _, m := range mismatches {
		fmt.Fprintln(cmd.OutOrStdout(), m.String())
	}

	logger.Info("Stylesheet checked",
		"stylesheet", path,
		"selector", selector,
		"expected", len(expected),
		"mismatches", len(mismatches),
	)

	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %d mismatches", errCheckFailed, len(mismatches))
	}
	return nil
}
