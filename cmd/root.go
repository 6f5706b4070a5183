// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with NAIVELIST, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("NAIVELIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/naivelist", "$HOME/.naivelist", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "naivelist",
		Short: "Drive a singly-linked LIFO list from the command line",
		Long: `Drive a singly-linked LIFO list from the command line.

Operations are applied in order to a single list, which is dropped with an
iterative walk when the command finishes.`,
		SilenceUsage: true,
	}
}
