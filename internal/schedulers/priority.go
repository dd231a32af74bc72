package schedulers

import "cpu-scheduler/internal/core"

// Priority is non-preemptive static priority; lower value wins and a missing
// priority ranks last.
type Priority struct{}

func (Priority) Name() string { return NamePriority }

func (Priority) policy() {}

func (Priority) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return SchedulePriority(processes), nil
}

func SchedulePriority(processes []core.Process) core.SimulationResult {
	return scheduleNonPreemptive(processes, func(t *task, _ int) float64 {
		return t.PriorityValue()
	})
}
