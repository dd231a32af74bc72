package schedulers

import (
	"math"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// CompletelyFair gives each unit to the ready task with the smallest virtual
// runtime. A task's vruntime grows by 1024/weight per unit, where the weight
// shrinks by 1.25x per nice level.
type CompletelyFair struct {
	DefaultNice int
}

func (CompletelyFair) Name() string { return NameCFS }

func (CompletelyFair) policy() {}

func (c CompletelyFair) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleCompletelyFair(processes, c.DefaultNice), nil
}

func ScheduleCompletelyFair(processes []core.Process, defaultNice int) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	tasks := newTasks(processes)
	for _, t := range tasks {
		nice := defaultNice
		if t.Nice != nil {
			nice = *t.Nice
		}
		t.weight = niceToWeight(nice)
	}
	pick := func(candidates []*task, _ int) *task {
		return minBy(candidates, func(t *task) float64 { return t.vrun })
	}
	charge := func(t *task) { t.vrun += cfsBaseWeight / t.weight }
	return metrics.ComputeMetrics(processes, runQuantized(tasks, pick, charge))
}

func niceToWeight(nice int) float64 {
	return max(1, math.Floor(cfsBaseWeight/math.Pow(cfsNiceStep, float64(nice))))
}
