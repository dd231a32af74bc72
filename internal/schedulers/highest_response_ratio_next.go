package schedulers

import "cpu-scheduler/internal/core"

// HighestResponseRatioNext is non-preemptive and picks the ready task with
// the largest (waited + burst) / burst at the decision time.
type HighestResponseRatioNext struct{}

func (HighestResponseRatioNext) Name() string { return NameHRRN }

func (HighestResponseRatioNext) policy() {}

func (HighestResponseRatioNext) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleHighestResponseRatioNext(processes), nil
}

func ScheduleHighestResponseRatioNext(processes []core.Process) core.SimulationResult {
	return scheduleNonPreemptive(processes, func(t *task, clock int) float64 {
		return -responseRatio(t, clock)
	})
}

func responseRatio(t *task, clock int) float64 {
	waited := clock - t.Arrival
	return float64(waited+t.Burst) / float64(t.Burst)
}
