package main

import (
	"os"

	"github.com/stackbook/naivelist/cmd"
	"github.com/stackbook/naivelist/cmd/run"
	"github.com/stackbook/naivelist/cmd/teardown"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	runCmd := run.NewRunCommand()
	rootCmd.AddCommand(runCmd)

	teardownCmd := teardown.NewTeardownCommand()
	rootCmd.AddCommand(teardownCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
