package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// PriorityAging is preemptive priority where waiting lowers the effective
// score: priority - Rate·waited, waited = clock - arrival - executed.
// The lowest score wins each unit.
type PriorityAging struct {
	Rate float64
}

func (PriorityAging) Name() string { return NameAging }

func (PriorityAging) policy() {}

func (a PriorityAging) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return SchedulePriorityAging(processes, a.Rate), nil
}

func SchedulePriorityAging(processes []core.Process, rate float64) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	rate = max(rate, 0)
	logrus.Debugf("priority aging algorithm with rate = %g", rate)

	pick := func(candidates []*task, clock int) *task {
		return minBy(candidates, func(t *task) float64 {
			waited := clock - t.Arrival - t.executed
			return t.PriorityValue() - rate*float64(waited)
		})
	}
	return metrics.ComputeMetrics(processes, runQuantized(newTasks(processes), pick, nil))
}
