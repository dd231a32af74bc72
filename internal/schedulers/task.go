package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// task is a simulator-local working copy of a process. Only the fields the
// running policy needs are touched; the embedded Process is never modified.
type task struct {
	core.Process
	remaining int
	executed  int

	// feedback queues
	level     int
	enteredAt int
	quantum   int

	// proportional share
	tickets int
	stride  int
	pass    int
	share   float64
	weight  float64
	vrun    float64

	// static real-time key (period or deadline)
	rank int
}

// newTasks copies processes into working tasks ordered by arrival, then id.
func newTasks(processes []core.Process) []*task {
	tasks := make([]*task, 0, len(processes))
	for _, p := range processes {
		tasks = append(tasks, &task{Process: p, remaining: p.Burst})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return arrivedBefore(tasks[i], tasks[j])
	})
	return tasks
}

// arrivedBefore is the final tie-break shared by every policy: arrival, then id.
func arrivedBefore(a, b *task) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

func allDone(tasks []*task) bool {
	for _, t := range tasks {
		if t.remaining > 0 {
			return false
		}
	}
	return true
}

// ready returns the arrived, unfinished tasks at clock, in arrival order.
func ready(tasks []*task, clock int) []*task {
	out := make([]*task, 0, len(tasks))
	for _, t := range tasks {
		if t.Arrival <= clock && t.remaining > 0 {
			out = append(out, t)
		}
	}
	return out
}

// arrivals hands out tasks in arrival order as the clock passes them.
type arrivals struct {
	tasks []*task
	next  int
}

// until returns every not yet admitted task with arrival <= clock.
func (a *arrivals) until(clock int) []*task {
	start := a.next
	for a.next < len(a.tasks) && a.tasks[a.next].Arrival <= clock {
		a.next++
	}
	return a.tasks[start:a.next]
}

func (a *arrivals) pending() bool {
	return a.next < len(a.tasks)
}

func (a *arrivals) peek() *task {
	return a.tasks[a.next]
}

// pickFunc selects the task that receives the next time unit.
type pickFunc func(candidates []*task, clock int) *task

// runQuantized advances the clock one unit at a time, giving each unit to
// the task chosen by pick and then calling charge on it. The CPU idles a
// unit whenever nothing has arrived yet.
func runQuantized(tasks []*task, pick pickFunc, charge func(t *task)) core.Trace {
	cpu := core.NewCPU()
	clock := 0
	for !allDone(tasks) {
		candidates := ready(tasks, clock)
		if len(candidates) == 0 {
			clock++
			continue
		}
		t := pick(candidates, clock)
		logrus.Tracef("pid: %s runs at t=%d", t.ID, clock)
		cpu.Run(t.ID, clock, clock+1)
		t.remaining--
		t.executed++
		if charge != nil {
			charge(t)
		}
		clock++
	}
	return cpu.Trace()
}

// minBy returns the candidate with the smallest key, ties going to the
// earlier arrival and then the smaller id.
func minBy(candidates []*task, key func(t *task) float64) *task {
	best := candidates[0]
	bestKey := key(best)
	for _, t := range candidates[1:] {
		k := key(t)
		if k < bestKey || (k == bestKey && arrivedBefore(t, best)) {
			best, bestKey = t, k
		}
	}
	return best
}
