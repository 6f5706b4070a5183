// Package config contains all knobs and defaults used to configure the naivelist
// command line tools.
package config

import (
	"fmt"
	"math"
	"slices"
)

const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"

	DefaultTeardownNodes         = 1_000_000
	DefaultTeardownMaxStackBytes = 1 << 20 // 1 MiB

	// MinTeardownMaxStackBytes keeps the ceiling above what ordinary call
	// depth needs; the runtime aborts the process when a goroutine exceeds it.
	MinTeardownMaxStackBytes = 64 << 10 // 64 KiB

	// MaxTeardownNodes caps the node count so every pushed index is a distinct int32.
	MaxTeardownNodes = math.MaxInt32
)

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"none", "debug", "info", "warn", "error"}
)

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

// TeardownConfig controls the bulk destruction demo.
type TeardownConfig struct {
	// Nodes is how many values are pushed before the list is dropped. It is
	// capped at MaxTeardownNodes by Verify, so the pushed values 0..Nodes-1
	// never wrap around.
	Nodes int

	// MaxStackBytes is the goroutine stack ceiling in force while the list is dropped.
	// Verify rejects values below MinTeardownMaxStackBytes.
	MaxStackBytes int
}

type MetricsConfig struct {
	// Print writes the list operation metrics in Prometheus text format after a run.
	Print bool
}

type Config struct {
	// Ops are the list operations executed by the run command, e.g. "push:1" or "pop".
	Ops []string

	Log      LogConfig
	Teardown TeardownConfig
	Metrics  MetricsConfig
}

func (cfg *Config) Verify() error {
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error']")
	}

	if cfg.Teardown.Nodes <= 0 || cfg.Teardown.Nodes > MaxTeardownNodes {
		return fmt.Errorf("config 'teardown.nodes' must be between 1 and %d", MaxTeardownNodes)
	}

	if cfg.Teardown.MaxStackBytes < MinTeardownMaxStackBytes {
		return fmt.Errorf("config 'teardown.maxStackBytes' must be at least %d", MinTeardownMaxStackBytes)
	}

	return nil
}

// DefaultConfig is the naivelist default configuration.
func DefaultConfig() *Config {
	return &Config{
		Ops: []string{},
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Teardown: TeardownConfig{
			Nodes:         DefaultTeardownNodes,
			MaxStackBytes: DefaultTeardownMaxStackBytes,
		},
		Metrics: MetricsConfig{
			Print: false,
		},
	}
}

// MustDefaultConfig returns the default configuration and panics if it does not verify.
func MustDefaultConfig() *Config {
	config := DefaultConfig()

	if err := config.Verify(); err != nil {
		panic(err)
	}

	return config
}
