package metrics

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// ComputeGeneralKpis derives makespan, utilization, throughput, context
// switches, slowdown and dispersion. Values are not rounded.
func ComputeGeneralKpis(processes []core.Process, trace core.Trace) core.GeneralKpis {
	if len(processes) == 0 {
		return core.GeneralKpis{}
	}

	origin := processes[0].Arrival
	for _, p := range processes {
		origin = min(origin, p.Arrival)
	}
	maxEnd := origin
	totalExecuted := 0
	for _, s := range trace {
		origin = min(origin, s.Start)
		maxEnd = max(maxEnd, s.End)
		totalExecuted += s.Duration()
	}

	kpis := core.GeneralKpis{
		Makespan:        maxEnd - origin,
		ContextSwitches: contextSwitches(trace),
	}
	kpis.IdleTime = max(kpis.Makespan-totalExecuted, 0)
	if kpis.Makespan > 0 {
		kpis.Utilization = float64(totalExecuted) / float64(kpis.Makespan)
		kpis.Throughput = float64(len(processes)) / float64(kpis.Makespan)
	}

	details := ProcessDetails(processes, trace)
	slowdowns := make([]float64, 0, len(details))
	for _, d := range details {
		slowdowns = append(slowdowns, d.Slowdown)
		kpis.MaxSlowdown = max(kpis.MaxSlowdown, d.Slowdown)
	}
	kpis.MeanSlowdown = util.CalculateAverage(slowdowns)

	waiting, turnaround, response := timings(details)
	kpis.StdDevWaiting = util.CalculateStdDev(waiting)
	kpis.StdDevTurnaround = util.CalculateStdDev(turnaround)
	kpis.StdDevResponse = util.CalculateStdDev(response)
	return kpis
}

// contextSwitches counts process changes between consecutive slices in
// chronological order.
func contextSwitches(trace core.Trace) int {
	sorted := trace.Sorted()
	switches := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ProcessID != sorted[i-1].ProcessID {
			switches++
		}
	}
	return switches
}
