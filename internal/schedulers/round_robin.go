package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// RoundRobin serves a FIFO ready queue, each dispatch running at most Quantum units.
type RoundRobin struct {
	Quantum int
}

func (RoundRobin) Name() string { return NameRR }

func (RoundRobin) policy() {}

func (r RoundRobin) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleRoundRobin(processes, r.Quantum)
}

func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.SimulationResult, error) {
	if timeQuantum <= 0 {
		return core.SimulationResult{}, fmt.Errorf("%w, got %d", ErrInvalidQuantum, timeQuantum)
	}
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	incoming := &arrivals{tasks: newTasks(processes)}
	cpu := core.NewCPU()
	clock := incoming.peek().Arrival
	roundRobinQueue := append([]*task(nil), incoming.until(clock)...)

	for len(roundRobinQueue) > 0 || incoming.pending() {
		if len(roundRobinQueue) == 0 {
			clock = max(clock, incoming.peek().Arrival)
			roundRobinQueue = append(roundRobinQueue, incoming.until(clock)...)
		}
		p := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		run := min(timeQuantum, p.remaining)
		logrus.Tracef("pid: %s runs %d units at t=%d", p.ID, run, clock)
		cpu.Run(p.ID, clock, clock+run)
		clock += run
		p.remaining -= run

		// arrivals during the slice queue up ahead of the preempted task
		roundRobinQueue = append(roundRobinQueue, incoming.until(clock)...)
		if p.remaining > 0 {
			logrus.Tracef("pid: %s context switch detected. send process back to roundRobin queue", p.ID)
			roundRobinQueue = append(roundRobinQueue, p)
		}
	}
	return metrics.ComputeMetrics(processes, cpu.Trace()), nil
}
