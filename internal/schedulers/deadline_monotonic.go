package schedulers

import "cpu-scheduler/internal/core"

// DeadlineMonotonic is RateMonotonic keyed on the relative deadline.
type DeadlineMonotonic struct {
	DefaultDeadline int
}

func (DeadlineMonotonic) Name() string { return NameDM }

func (DeadlineMonotonic) policy() {}

func (d DeadlineMonotonic) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleDeadlineMonotonic(processes, d.DefaultDeadline), nil
}

func ScheduleDeadlineMonotonic(processes []core.Process, defaultDeadline int) core.SimulationResult {
	return scheduleStaticRank(processes, func(p core.Process) int {
		return valueOr(p.Deadline, defaultDeadline)
	})
}
