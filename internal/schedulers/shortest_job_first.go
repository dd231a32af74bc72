package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// ShortestJobFirst is non-preemptive: the shortest ready burst runs to completion.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return NameSJF }

func (ShortestJobFirst) policy() {}

func (ShortestJobFirst) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleShortestJobFirst(processes), nil
}

func ScheduleShortestJobFirst(processes []core.Process) core.SimulationResult {
	return scheduleNonPreemptive(processes, func(t *task, _ int) float64 {
		return float64(t.Burst)
	})
}

// scheduleNonPreemptive is the event loop shared by SJF, Priority and HRRN.
// At each decision point the ready task with the smallest key (evaluated at
// the current clock, ties by arrival then id) runs to completion. When
// nothing is ready the clock jumps to the next arrival.
func scheduleNonPreemptive(processes []core.Process, key func(t *task, clock int) float64) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	incoming := &arrivals{tasks: newTasks(processes)}
	readyQueue := make([]*task, 0, len(processes))
	cpu := core.NewCPU()
	clock := 0

	for incoming.pending() || len(readyQueue) > 0 {
		readyQueue = append(readyQueue, incoming.until(clock)...)
		if len(readyQueue) == 0 {
			clock = incoming.peek().Arrival
			continue
		}
		next := minBy(readyQueue, func(t *task) float64 { return key(t, clock) })
		readyQueue = remove(readyQueue, next)

		start := max(clock, next.Arrival)
		logrus.Tracef("pid: %s dispatched at t=%d", next.ID, start)
		cpu.Run(next.ID, start, start+next.Burst)
		next.remaining = 0
		clock = start + next.Burst
	}
	return metrics.ComputeMetrics(processes, cpu.Trace())
}

// remove deletes t from queue, keeping order.
func remove(queue []*task, t *task) []*task {
	for i, q := range queue {
		if q == t {
			return append(queue[:i], queue[i+1:]...)
		}
	}
	return queue
}
