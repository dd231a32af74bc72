package schedulers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestCompare_KeepsRequestedOrderAndDropsDuplicates(t *testing.T) {
	runs, err := Compare(context.Background(), classicSet(), []string{NameRR, NameFCFS, NameRR, NameSJF}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, runs, 3)
	assert.Equal(t, []string{NameRR, NameFCFS, NameSJF}, []string{runs[0].Policy, runs[1].Policy, runs[2].Policy})

	fcfs := runs[1].Row
	assert.Equal(t, NameFCFS, fcfs.Policy)
	assert.Empty(t, fcfs.Error)
	assert.Equal(t, 2.67, fcfs.MeanWaiting)
	assert.Equal(t, 0.614, fcfs.Fairness)
	assert.Equal(t, 8, fcfs.Makespan)
	assert.Equal(t, 2, fcfs.ContextSwitches)
}

func TestCompare_MatchesSingleSimulation(t *testing.T) {
	processes := mixedWorkload()
	runs, err := Compare(context.Background(), processes, PolicyNames(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, runs, len(PolicyNames()))

	for _, run := range runs {
		single, err := Simulate(run.Policy, processes, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, single.Trace, run.Result.Trace, run.Policy)
	}
}

func TestCompare_FailingPolicyGetsErrorRow(t *testing.T) {
	opts := DefaultOptions()
	opts.Quantum = 0

	runs, err := Compare(context.Background(), classicSet(), []string{NameFCFS, NameRR}, opts)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Empty(t, runs[0].Row.Error)
	assert.Contains(t, runs[1].Row.Error, ErrInvalidQuantum.Error())
	assert.NotNil(t, runs[1].Result.Trace)
	assert.Empty(t, runs[1].Result.Trace)

	rows := Rows(runs)
	assert.Equal(t, NameRR, rows[1].Policy)
}

func TestCompare_RejectsBadInput(t *testing.T) {
	_, err := Compare(context.Background(), classicSet(), []string{NameFCFS, "bogus"}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnknownPolicy))

	_, err = Compare(context.Background(), []core.Process{{ID: "", Burst: 1}}, []string{NameFCFS}, DefaultOptions())
	assert.True(t, errors.Is(err, core.ErrInvalidProcess))
}

func TestCompare_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compare(ctx, classicSet(), []string{NameFCFS, NameSJF}, DefaultOptions())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClone_IsDeep(t *testing.T) {
	original := []core.Process{{ID: "A", Burst: 1, Priority: core.IntPtr(2), Share: core.FloatPtr(1.5)}}
	copied := clone(original)

	*copied[0].Priority = 9
	*copied[0].Share = 9

	assert.Equal(t, 2, *original[0].Priority)
	assert.Equal(t, 1.5, *original[0].Share)
}
