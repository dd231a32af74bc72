package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return NameFCFS }

func (FirstComeFirstServe) policy() {}

func (FirstComeFirstServe) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleFirstComeFirstServe(processes), nil
}

func ScheduleFirstComeFirstServe(processes []core.Process) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	cpu := core.NewCPU()
	clock := 0
	for _, t := range newTasks(processes) {
		clock = max(clock, t.Arrival)
		logrus.Tracef("pid: %s dispatched at t=%d", t.ID, clock)
		cpu.Run(t.ID, clock, clock+t.Burst)
		clock += t.Burst
	}
	return metrics.ComputeMetrics(processes, cpu.Trace())
}
