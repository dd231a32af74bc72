package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/util"
)

// Stride is deterministic proportional share: each unit goes to the ready
// task with the smallest pass, which then advances by 10000/tickets.
type Stride struct {
	DefaultTickets int
}

func (Stride) Name() string { return NameStride }

func (Stride) policy() {}

func (s Stride) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleStride(processes, s.DefaultTickets), nil
}

func ScheduleStride(processes []core.Process, defaultTickets int) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	tasks := newTasks(processes)
	for _, t := range tasks {
		t.tickets = ticketsOf(t.Process, defaultTickets)
		// more tickets than the constant would freeze the pass
		t.stride = util.ClampMin(strideConstant/t.tickets, 1)
	}
	pick := func(candidates []*task, _ int) *task {
		return minBy(candidates, func(t *task) float64 { return float64(t.pass) })
	}
	charge := func(t *task) { t.pass += t.stride }
	return metrics.ComputeMetrics(processes, runQuantized(tasks, pick, charge))
}
