package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the design-token table",
	Long: `Print the design-token table as YAML, JSON, or a CSS :root block of custom
properties (colors become bare HSL triples).`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().String("format", "css", "Output format: css, yaml or json")

	if err := viper.BindPFlag("tokens_cmd.format", tokensCmd.Flags().Lookup("format")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runTokens(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	format := viper.GetString("tokens_cmd.format")
	if format != "css" && format != "yaml" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'css', 'yaml' or 'json'", format)
	}

	set, err := loadTokens()
	if err != nil {
		return err
	}
	logger.Debug("Design tokens loaded", "colors", len(set.FlatColors()))

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	default:
		return set.WriteCSS(out)
	}
}
