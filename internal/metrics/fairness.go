package metrics

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// JainIndex computes (Σx)² / (n·Σx²), rounded to three decimals.
// 1.0 means perfectly equal values. Empty input or a zero sum gives 0.
func JainIndex(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum, squares float64
	for _, v := range values {
		sum += v
		squares += v * v
	}
	if sum == 0 {
		return 0
	}
	return util.Round((sum*sum)/(float64(len(values))*squares), 3)
}

// FairnessByWaiting applies JainIndex to the equity transform 1/(waiting+1).
func FairnessByWaiting(processes []core.Process, trace core.Trace) float64 {
	details := ProcessDetails(processes, trace)
	equity := make([]float64, 0, len(details))
	for _, d := range details {
		equity = append(equity, 1/(float64(d.Waiting)+1))
	}
	return JainIndex(equity)
}
