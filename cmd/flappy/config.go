package main

import (
	"github.com/spf13/cobra"

	"github.com/zhangkai803/flappy-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.flappy/flappy.yaml or ./configs/flappy.yaml and edit it,
or pass it with --config. Missing fields keep their default values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
