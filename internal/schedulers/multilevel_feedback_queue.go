package schedulers

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/util"
)

// MultilevelFeedbackQueue has Levels round-robin queues; level L has quantum
// BaseQuantum·2^L. A task that burns its whole quantum drops one level, and
// every BoostPeriod units all active tasks go back to level 0. A BoostPeriod
// <= 0 disables boosting.
type MultilevelFeedbackQueue struct {
	Levels      int
	BaseQuantum int
	BoostPeriod int
}

func (MultilevelFeedbackQueue) Name() string { return NameMLFQ }

func (MultilevelFeedbackQueue) policy() {}

func (m MultilevelFeedbackQueue) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleMultilevelFeedbackQueue(processes, m.Levels, m.BaseQuantum, m.BoostPeriod), nil
}

// deeper levels would overflow the doubled quantum
const maxFeedbackLevels = 32

func ScheduleMultilevelFeedbackQueue(processes []core.Process, levels, baseQuantum, boostPeriod int) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	quanta := feedbackQuanta(levels, baseQuantum)
	levels = len(quanta)
	logrus.Debugf("mlfq algorithm with time quanta = %v, boost period = %d", quanta, boostPeriod)

	timeQuantum := func(level int) int { return quanta[level] }
	tasks := newTasks(processes)
	incoming := &arrivals{tasks: tasks}
	queues := make([][]*task, levels)
	cpu := core.NewCPU()

	enqueue := func(t *task, level, clock int) {
		t.level = level
		t.enteredAt = clock
		queues[level] = append(queues[level], t)
	}
	admit := func(clock int) {
		for _, t := range incoming.until(clock) {
			logrus.Tracef("pid: %s send process to level 0 queue", t.ID)
			enqueue(t, 0, clock)
		}
	}

	var current *task
	used := 0
	clock := 0
	for !allDone(tasks) {
		admit(clock)

		if boostPeriod > 0 && clock > 0 && clock%boostPeriod == 0 {
			boostAll(queues, current, clock)
			current = nil
		}

		// a task waiting on a higher level preempts the running one
		if h := highestNonEmpty(queues); current != nil && h >= 0 && h < current.level {
			queues[current.level] = append(queues[current.level], current)
			current = nil
		}

		if current == nil {
			level := highestNonEmpty(queues)
			if level < 0 {
				clock++
				continue
			}
			current = queues[level][0]
			queues[level] = queues[level][1:]
			used = 0
		}

		cpu.Run(current.ID, clock, clock+1)
		current.remaining--
		used++
		clock++
		admit(clock)

		switch {
		case current.remaining == 0:
			current = nil
		case used >= timeQuantum(current.level):
			next := min(current.level+1, levels-1)
			logrus.Tracef("pid: %s used its quantum, level %d -> %d", current.ID, current.level, next)
			enqueue(current, next, clock)
			current = nil
		}
	}
	return metrics.ComputeMetrics(processes, cpu.Trace())
}

// feedbackQuanta returns the quantum of every level, baseQuantum·2^L, after
// clamping levels to [1, 32] and baseQuantum to [1, MaxInt>>(levels-1)] so
// the deepest quantum stays positive.
func feedbackQuanta(levels, baseQuantum int) []int {
	levels = min(util.ClampMin(levels, 1), maxFeedbackLevels)
	baseQuantum = min(util.ClampMin(baseQuantum, 1), math.MaxInt>>(levels-1))
	quanta := make([]int, levels)
	for level := range quanta {
		quanta[level] = baseQuantum << level
	}
	return quanta
}

// highestNonEmpty returns the index of the first non-empty queue, or -1.
func highestNonEmpty(queues [][]*task) int {
	for level, q := range queues {
		if len(q) > 0 {
			return level
		}
	}
	return -1
}

// boostAll empties every queue and refills level 0 with all active tasks,
// including the running one, ordered by the time they last entered a queue.
func boostAll(queues [][]*task, running *task, clock int) {
	active := make([]*task, 0)
	for level := range queues {
		active = append(active, queues[level]...)
		queues[level] = nil
	}
	if running != nil {
		active = append(active, running)
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].enteredAt != active[j].enteredAt {
			return active[i].enteredAt < active[j].enteredAt
		}
		return arrivedBefore(active[i], active[j])
	})
	for _, t := range active {
		t.level = 0
		t.enteredAt = clock
	}
	queues[0] = active
	logrus.Tracef("priority boost at t=%d, %d processes back on level 0", clock, len(active))
}
