package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cpu-scheduler/internal/export"
	"cpu-scheduler/internal/schedulers"
)

const workload = `
jobs:
  - {process_id: P1, arrival_time: 0, burst_time: 4}
  - {process_id: P2, arrival_time: 1, burst_time: 3}
  - {process_id: P3, arrival_time: 2, burst_time: 1}
`

func writeWorkload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args, starting from clean flag state.
func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	configPath, logLevel, workloadPath = "", "", ""
	policyName = schedulers.NameFCFS
	comparePolicies, xlsxPath = nil, ""
	cliConfig = nil
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	path := writeWorkload(t, workload)

	out, err := execute(t, context.Background(), "run", "-f", path, "-p", "rr")
	require.NoError(t, err)

	assert.Contains(t, out, "RR")
	assert.Contains(t, out, "P1[0-2] P2[2-4] P3[4-5] P1[5-7] P2[7-8]")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "5.67")
}

func TestRunCommand_Errors(t *testing.T) {
	path := writeWorkload(t, workload)

	_, err := execute(t, context.Background(), "run", "-f", path, "-p", "edf")
	assert.ErrorIs(t, err, schedulers.ErrUnknownPolicy)

	_, err = execute(t, context.Background(), "run", "-f", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)

	_, err = execute(t, context.Background(), "run", "-f", path, "--log", "loud")
	assert.Error(t, err)
}

func TestCompareCommand_WritesWorkbook(t *testing.T) {
	path := writeWorkload(t, workload)
	xlsx := filepath.Join(t.TempDir(), "cmp.xlsx")

	out, err := execute(t, context.Background(), "compare", "-f", path, "--policies", "fcfs,sjf", "--xlsx", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "fcfs")
	assert.Contains(t, out, "sjf")
	assert.Contains(t, out, "0.614")

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.ComparisonSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestCompareCommand_UsesWorkloadPolicies(t *testing.T) {
	path := writeWorkload(t, workload+"policies: [srtf]\n")

	out, err := execute(t, context.Background(), "compare", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "srtf")
	assert.NotContains(t, out, "hrrn")
}

func TestWatchCommand_RunsOnceAndStopsWithContext(t *testing.T) {
	path := writeWorkload(t, workload)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := execute(t, ctx, "watch", "-f", path, "--policies", "fcfs")
	require.NoError(t, err)
	assert.Contains(t, out, "fcfs")
}

func TestRenderComparison_ShowsErrors(t *testing.T) {
	opts := schedulers.DefaultOptions()
	opts.Quantum = 0
	runs, err := schedulers.Compare(context.Background(), nil, []string{schedulers.NameRR}, opts)
	require.NoError(t, err)

	assert.Contains(t, renderComparison(schedulers.Rows(runs)), "error:")
}

func TestRootCommand_LogLevelFromConfigUnlessFlagGiven(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	path := writeWorkload(t, workload)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0o644))

	_, err := execute(t, context.Background(), "run", "-f", path, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	_, err = execute(t, context.Background(), "run", "-f", path, "--config", cfgPath, "--log", "error")
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
}

func TestRootCommand_UsesConfigOptions(t *testing.T) {
	path := writeWorkload(t, workload)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scheduler:\n  round_robin:\n    time_quantum: 4\n"), 0o644))

	out, err := execute(t, context.Background(), "run", "-f", path, "-p", "rr", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "P1[0-4] P2[4-7] P3[7-8]")
	assert.Equal(t, 4, cliConfig.Options.Quantum)
}
