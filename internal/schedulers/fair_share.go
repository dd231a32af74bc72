package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// FairShare gives each unit to the ready task with the lowest used/share.
type FairShare struct {
	DefaultShare float64
}

func (FairShare) Name() string { return NameFairShare }

func (FairShare) policy() {}

func (f FairShare) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleFairShare(processes, f.DefaultShare), nil
}

func ScheduleFairShare(processes []core.Process, defaultShare float64) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	tasks := newTasks(processes)
	for _, t := range tasks {
		share := defaultShare
		if t.Share != nil {
			share = *t.Share
		}
		t.share = max(share, 1)
	}
	pick := func(candidates []*task, _ int) *task {
		return minBy(candidates, func(t *task) float64 { return float64(t.executed) / t.share })
	}
	return metrics.ComputeMetrics(processes, runQuantized(tasks, pick, nil))
}
