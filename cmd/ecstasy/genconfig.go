package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chubbymaggie/ecstasy/pkg/config"
)

var genconfigFormat string

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print a config file with the default options",
	Long: `Print a config file seeded with the default options. Redirect it to
$XDG_CONFIG_HOME/ecstasy/ecstasy.toml (or .yaml) and edit from there.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Default().Encode(genconfigFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	genconfigCmd.Flags().StringVar(&genconfigFormat, "format", "toml",
		"Output format: toml or yaml")
}
