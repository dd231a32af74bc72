package requests

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScheduleRequests_YAML(t *testing.T) {
	path := writeFile(t, "workload.yaml", `
jobs:
  - process_id: P1
    arrival_time: 0
    burst_time: 4
    priority: 2
    tickets: 30
  - process_id: P2
    arrival_time: 1
    burst_time: 3
    share: 1.5
policies: [fcfs, rr]
options:
  quantum: 3
  bg_policy: rr
`)

	request, err := LoadScheduleRequests(path)
	require.NoError(t, err)

	require.Len(t, request.Jobs, 2)
	assert.Equal(t, "P1", request.Jobs[0].ProcessId)
	assert.Equal(t, 2, *request.Jobs[0].Priority)
	assert.Equal(t, 30, *request.Jobs[0].Tickets)
	assert.Nil(t, request.Jobs[1].Priority)
	assert.Equal(t, 1.5, *request.Jobs[1].Share)
	assert.Equal(t, []string{"fcfs", "rr"}, request.Policies)

	opts := request.ResolveOptions(schedulers.DefaultOptions())
	assert.Equal(t, 3, opts.Quantum)
	assert.Equal(t, schedulers.ClassRoundRobin, opts.BgPolicy)
	assert.Equal(t, schedulers.DefaultLevels, opts.Levels)
}

func TestLoadScheduleRequests_JSON(t *testing.T) {
	path := writeFile(t, "workload.json", `{"jobs":[{"process_id":"A","arrival_time":2,"burst_time":5,"nice":-1}]}`)

	request, err := LoadScheduleRequests(path)
	require.NoError(t, err)

	processes, err := request.ToProcesses()
	require.NoError(t, err)
	require.Len(t, processes, 1)
	assert.Equal(t, core.Process{ID: "A", Arrival: 2, Burst: 5, Nice: core.IntPtr(-1)}, processes[0])
	assert.Equal(t, schedulers.DefaultOptions(), request.ResolveOptions(schedulers.DefaultOptions()))
}

func TestLoadScheduleRequests_Errors(t *testing.T) {
	_, err := LoadScheduleRequests(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading workload")

	_, err = LoadScheduleRequests(writeFile(t, "bad.yaml", "jobs: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing workload")
}

func TestToProcesses_Validates(t *testing.T) {
	request := &ScheduleRequests{Jobs: []Job{{ProcessId: "A", BurstTime: 0}}}

	_, err := request.ToProcesses()
	assert.True(t, errors.Is(err, core.ErrInvalidProcess))
}

func TestResolvePolicies(t *testing.T) {
	all, err := (&ScheduleRequests{}).ResolvePolicies()
	require.NoError(t, err)
	assert.Equal(t, schedulers.PolicyNames(), all)

	named, err := (&ScheduleRequests{Policies: []string{"srtf", "mlq"}}).ResolvePolicies()
	require.NoError(t, err)
	assert.Equal(t, []string{"srtf", "mlq"}, named)

	_, err = (&ScheduleRequests{Policies: []string{"fcfs", "edf"}}).ResolvePolicies()
	assert.True(t, errors.Is(err, schedulers.ErrUnknownPolicy))
}
