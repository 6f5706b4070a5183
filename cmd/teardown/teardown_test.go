package teardown

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stackbook/naivelist/cmd"
	"github.com/stackbook/naivelist/pkg/list"
	"github.com/stackbook/naivelist/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTeardownCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(NewTeardownCommand())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"teardown", "--log-level", "none", "--nodes", "1000000", "--max-stack-bytes", "1048576"})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, out.String(), "released 1000000 nodes in ")
	require.Contains(t, out.String(), "with a 1048576 byte stack ceiling")
}

func TestTeardownCommandRejectsBadBudget(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(NewTeardownCommand())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"teardown", "--log-level", "none", "--max-stack-bytes", "0"})

	require.ErrorContains(t, rootCmd.Execute(), "config 'teardown.maxStackBytes' must be at least 65536")
}

func TestTeardownCommandRejectsTinyStackCeiling(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(NewTeardownCommand())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"teardown", "--log-level", "none", "--nodes", "10", "--max-stack-bytes", "64"})

	require.ErrorContains(t, rootCmd.Execute(), "config 'teardown.maxStackBytes' must be at least 65536")
}

func TestTeardownCommandRejectsTooManyNodes(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(NewTeardownCommand())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"teardown", "--log-level", "none", "--nodes", "2147483648"})

	require.ErrorContains(t, rootCmd.Execute(), "config 'teardown.nodes' must be between 1 and 2147483647")
}

func TestDropWithStackLimitRefusesTinyCeiling(t *testing.T) {
	l := list.New()
	for i := int32(0); i < 10; i++ {
		l.Push(i)
	}

	before := debug.SetMaxStack(1 << 30)
	defer debug.SetMaxStack(before)

	released, _, err := dropWithStackLimit(l, 64, logger.NewNoopLogger())
	require.ErrorContains(t, err, "below the minimum of 65536")
	require.Zero(t, released)
	require.Equal(t, 10, l.Len())

	require.Equal(t, 1<<30, debug.SetMaxStack(1<<30), "limit must not change when the ceiling is refused")
}

func TestDropWithStackLimitRestoresLimit(t *testing.T) {
	l := list.New()
	for i := int32(0); i < 1000; i++ {
		l.Push(i)
	}

	log, logs := logger.NewObserverLogger("info")

	before := debug.SetMaxStack(1 << 30)
	defer debug.SetMaxStack(before)

	released, _, err := dropWithStackLimit(l, 1<<20, log)
	require.NoError(t, err)
	require.Equal(t, 1000, released)
	require.True(t, l.IsEmpty())

	require.Equal(t, 1<<30, debug.SetMaxStack(1<<30))
	require.Equal(t, 1, logs.FilterMessage("list dropped").Len())
}
