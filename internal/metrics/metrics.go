// Package metrics reduces an execution trace to per-process timings,
// aggregate averages, general KPIs and a fairness index.
package metrics

import (
	"math"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

type accumulator struct {
	firstStart int
	completion int
	executed   int
	ran        bool
}

// ProcessDetails derives the timing of every process from the trace, in
// input order. A process that never ran is reported with firstStart and
// completion at its own arrival.
func ProcessDetails(processes []core.Process, trace core.Trace) []core.ProcessMetrics {
	acc := make(map[string]*accumulator, len(processes))
	for _, p := range processes {
		acc[p.ID] = &accumulator{firstStart: math.MaxInt}
	}
	for _, s := range trace {
		a, ok := acc[s.ProcessID]
		if !ok {
			continue
		}
		a.ran = true
		a.firstStart = min(a.firstStart, s.Start)
		a.completion = max(a.completion, s.End)
		a.executed += s.Duration()
	}

	details := make([]core.ProcessMetrics, 0, len(processes))
	for _, p := range processes {
		a := acc[p.ID]
		if !a.ran {
			a.firstStart = p.Arrival
			a.completion = p.Arrival
		}
		turnaround := a.completion - p.Arrival
		details = append(details, core.ProcessMetrics{
			ID:         p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			FirstStart: a.firstStart,
			Completion: a.completion,
			Executed:   a.executed,
			Waiting:    turnaround - a.executed,
			Turnaround: turnaround,
			Response:   a.firstStart - p.Arrival,
			Slowdown:   float64(turnaround) / float64(max(p.Burst, 1)),
		})
	}
	return details
}

// ComputeMetrics builds the SimulationResult for a trace. Means are rounded
// to two decimals; an empty process set yields the zero sentinel.
func ComputeMetrics(processes []core.Process, trace core.Trace) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	if trace == nil {
		trace = core.Trace{}
	}

	details := ProcessDetails(processes, trace)
	waiting, turnaround, response := timings(details)

	return core.SimulationResult{
		Trace:          trace,
		MeanWaiting:    util.Round(util.CalculateAverage(waiting), 2),
		MeanTurnaround: util.Round(util.CalculateAverage(turnaround), 2),
		MeanResponse:   util.Round(util.CalculateAverage(response), 2),
		Details:        details,
	}
}

func timings(details []core.ProcessMetrics) (waiting, turnaround, response []int) {
	waiting = make([]int, 0, len(details))
	turnaround = make([]int, 0, len(details))
	response = make([]int, 0, len(details))
	for _, d := range details {
		waiting = append(waiting, d.Waiting)
		turnaround = append(turnaround, d.Turnaround)
		response = append(response, d.Response)
	}
	return waiting, turnaround, response
}
