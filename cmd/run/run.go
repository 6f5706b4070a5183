// Package run contains the command that applies list operations.
package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackbook/naivelist/cmd/util"
	"github.com/stackbook/naivelist/internal/listops"
	"github.com/stackbook/naivelist/pkg/logger"
)

const metricPrefix = "naivelist_"

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [ops...]",
		Short: "Apply list operations in order",
		Long: `Apply list operations in order and print one line per result.

Operations are push:<int32>, pop, peek, len and drop. They may be given as
positional arguments, comma-separated, or through --ops.`,
		Example: "naivelist run push:1 push:2 push:3 pop pop",
		RunE:    run,
	}

	bindRunFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
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

	ops, err := listops.ParseScript(append(cfg.Ops, args...))
	if err != nil {
		return fmt.Errorf("failed to parse operations: %w", err)
	}

	runner := listops.NewRunner(listops.WithLogger(log))
	defer runner.Close()

	log.Info("applying list operations", zap.Int("count", len(ops)))

	out := cmd.OutOrStdout()
	for _, res := range runner.Run(ops) {
		if _, err := fmt.Fprintln(out, res); err != nil {
			return err
		}
	}

	if cfg.Metrics.Print {
		return writeMetrics(out, prometheus.DefaultGatherer)
	}

	return nil
}

// writeMetrics writes the naivelist metric families gathered from g in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
