package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// ShortestRemainingTimeFirst is the preemptive variant of SJF. The running
// task is only interrupted at arrival instants, and only by a ready task with
// strictly less remaining time.
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Name() string { return NameSRTF }

func (ShortestRemainingTimeFirst) policy() {}

func (ShortestRemainingTimeFirst) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleShortestRemainingTimeFirst(processes), nil
}

func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	incoming := &arrivals{tasks: newTasks(processes)}
	readyQueue := make([]*task, 0, len(processes))
	byRemaining := func(t *task) float64 { return float64(t.remaining) }
	cpu := core.NewCPU()
	clock := 0
	var current *task

	for incoming.pending() || len(readyQueue) > 0 || current != nil {
		if current == nil && len(readyQueue) == 0 {
			clock = max(clock, incoming.peek().Arrival)
			readyQueue = append(readyQueue, incoming.until(clock)...)
		}
		if current == nil {
			current = minBy(readyQueue, byRemaining)
			readyQueue = remove(readyQueue, current)
			clock = max(clock, current.Arrival)
			logrus.Tracef("pid: %s dispatched at t=%d", current.ID, clock)
		}

		// run until completion or the next arrival, whichever comes first
		slice := current.remaining
		if incoming.pending() {
			slice = min(slice, incoming.peek().Arrival-clock)
		}
		if slice > 0 {
			cpu.Run(current.ID, clock, clock+slice)
			clock += slice
			current.remaining -= slice
		}
		readyQueue = append(readyQueue, incoming.until(clock)...)

		if current.remaining <= 0 {
			current = nil
			continue
		}
		if len(readyQueue) > 0 {
			if best := minBy(readyQueue, byRemaining); best.remaining < current.remaining {
				logrus.Tracef("pid: %s preempted by pid: %s at t=%d", current.ID, best.ID, clock)
				readyQueue = append(readyQueue, current)
				current = nil
			}
		}
	}
	return metrics.ComputeMetrics(processes, cpu.Trace())
}
