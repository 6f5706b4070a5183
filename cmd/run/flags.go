package run

import (
	"github.com/spf13/cobra"

	"github.com/stackbook/naivelist/cmd/util"
	"github.com/stackbook/naivelist/internal/config"
)

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.StringSlice("ops", defaultConfig.Ops, "list operations to apply before any positional ones, e.g. push:1,push:2,pop")
	util.MustBindPFlag("ops", flags.Lookup("ops"))
	util.MustBindEnv("ops", "NAIVELIST_OPS")

	flags.Bool("print-metrics", defaultConfig.Metrics.Print, "print the list operation metrics in Prometheus text format after the results")
	util.MustBindPFlag("metrics.print", flags.Lookup("print-metrics"))
	util.MustBindEnv("metrics.print", "NAIVELIST_METRICS_PRINT")

	util.BindLogFlags(flags)
}
