package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/figmatokens/internal/figma"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Generate code snippets from values copied out of the design file",
	Long: `Generate CSS variables, design-token entries, component constants and
utility-class examples from a values file.

Copy assets/figma/values.yaml, fill in the values from Dev Mode, and pass it
with --values. Keys left out of the file keep the built-in example values.`,
	RunE: runSnippets,
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the manual token extraction guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		return figma.WriteGuide(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(snippetsCmd, guideCmd)

	snippetsCmd.Flags().String("values", "", "Values file (YAML, JSON or TOML; default: built-in example)")
	snippetsCmd.Flags().String("section", "all", "Section to print: all, css, tokens, components or tailwind")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"snippets.values", "values"},
		{"snippets.section", "section"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, snippetsCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runSnippets(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	path := viper.GetString("snippets.values")
	section := viper.GetString("snippets.section")

	var (
		values figma.Values
		err    error
	)
	if path == "" {
		values, err = figma.DefaultValues()
	} else {
		values, err = figma.LoadValues(path)
	}
	if err != nil {
		return err
	}

	logger.Debug("Generating snippets", "values", path, "section", section)

	gen := figma.NewGenerator(values, logger)
	if section == "all" {
		return gen.WriteAll(cmd.OutOrStdout())
	}
	return gen.WriteSection(cmd.OutOrStdout(), section)
}
