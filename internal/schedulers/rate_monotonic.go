package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/util"
)

// RateMonotonic is static-priority real-time scheduling: the shortest period wins each unit.
type RateMonotonic struct {
	DefaultPeriod int
}

func (RateMonotonic) Name() string { return NameRM }

func (RateMonotonic) policy() {}

func (r RateMonotonic) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleRateMonotonic(processes, r.DefaultPeriod), nil
}

func ScheduleRateMonotonic(processes []core.Process, defaultPeriod int) core.SimulationResult {
	return scheduleStaticRank(processes, func(p core.Process) int {
		return valueOr(p.Period, defaultPeriod)
	})
}

// scheduleStaticRank runs a per-unit loop where the smallest static rank
// wins, ties by arrival then id. Ranks are clamped to >= 1.
func scheduleStaticRank(processes []core.Process, rankOf func(p core.Process) int) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	tasks := newTasks(processes)
	for _, t := range tasks {
		t.rank = util.ClampMin(rankOf(t.Process), 1)
	}
	pick := func(candidates []*task, _ int) *task {
		return minBy(candidates, func(t *task) float64 { return float64(t.rank) })
	}
	return metrics.ComputeMetrics(processes, runQuantized(tasks, pick, nil))
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
