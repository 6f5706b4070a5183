// Package teardown contains the command that drops a long list under a reduced stack ceiling.
package teardown

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackbook/naivelist/cmd/util"
	"github.com/stackbook/naivelist/internal/config"
	"github.com/stackbook/naivelist/internal/listops"
	"github.com/stackbook/naivelist/pkg/list"
	"github.com/stackbook/naivelist/pkg/logger"
)

func NewTeardownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Build a long list and drop it under a reduced stack ceiling",
		Long: `Build a long list and drop it under a reduced stack ceiling.

The goroutine stack limit is lowered to --max-stack-bytes while the list is
dropped and restored afterwards. A teardown that recursed once per node would
exceed the limit and crash the process.`,
		RunE: teardown,
		Args: cobra.NoArgs,
	}

	defaultConfig := config.DefaultConfig()
	flags := cmd.Flags()

	flags.Int("nodes", defaultConfig.Teardown.Nodes, "the number of values pushed before the list is dropped")
	util.MustBindPFlag("teardown.nodes", flags.Lookup("nodes"))
	util.MustBindEnv("teardown.nodes", "NAIVELIST_TEARDOWN_NODES")

	flags.Int("max-stack-bytes", defaultConfig.Teardown.MaxStackBytes, "the goroutine stack ceiling in bytes while the list is dropped")
	util.MustBindPFlag("teardown.maxStackBytes", flags.Lookup("max-stack-bytes"))
	util.MustBindEnv("teardown.maxStackBytes", "NAIVELIST_TEARDOWN_MAX_STACK_BYTES", "NAIVELIST_TEARDOWN_MAXSTACKBYTES")

	util.BindLogFlags(flags)

	return cmd
}

func teardown(cmd *cobra.Command, _ []string) error {
	cfg, err := util.ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	l := list.New()
	for i := 0; i < cfg.Teardown.Nodes; i++ {
		l.Push(int32(i))
	}

	released, elapsed, err := dropWithStackLimit(l, cfg.Teardown.MaxStackBytes, log)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "released %d nodes in %s with a %d byte stack ceiling\n",
		released, elapsed.Round(time.Microsecond), cfg.Teardown.MaxStackBytes)
	return err
}

// dropWithStackLimit refuses ceilings below config.MinTeardownMaxStackBytes and
// leaves the list untouched in that case.
func dropWithStackLimit(l *list.List, maxStackBytes int, log logger.Logger) (int, time.Duration, error) {
	if maxStackBytes < config.MinTeardownMaxStackBytes {
		return 0, 0, fmt.Errorf("stack ceiling of %d bytes is below the minimum of %d", maxStackBytes, config.MinTeardownMaxStackBytes)
	}

	prev := debug.SetMaxStack(maxStackBytes)
	defer debug.SetMaxStack(prev)

	runner := listops.NewRunner(listops.WithList(l), listops.WithLogger(log))

	start := time.Now()
	released := runner.Close()
	elapsed := time.Since(start)

	log.Info("list dropped",
		zap.Int("released", released),
		zap.Duration("elapsed", elapsed),
		zap.Int("max_stack_bytes", maxStackBytes),
	)

	return released, elapsed, nil
}
