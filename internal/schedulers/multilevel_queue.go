package schedulers

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// Per-class policies of MultilevelQueue.
const (
	ClassRoundRobin          = "rr"
	ClassFirstComeFirstServe = "fcfs"
)

// MultilevelQueue splits processes into a foreground class (priority <= 1)
// and a background class (everything else, including no priority).
// Foreground always goes first; each class runs RR or FCFS independently.
// A background dispatch is cut short at the next foreground arrival.
type MultilevelQueue struct {
	FgPolicy  string
	FgQuantum int
	BgPolicy  string
	BgQuantum int
}

func (MultilevelQueue) Name() string { return NameMLQ }

func (MultilevelQueue) policy() {}

func (m MultilevelQueue) Schedule(processes []core.Process) (core.SimulationResult, error) {
	return ScheduleMultilevelQueue(processes, m)
}

// queueClass is one MLQ class with its own FIFO queue.
type queueClass struct {
	name    string
	policy  string
	quantum int
	queue   []*task
}

func newQueueClass(name, policy string, quantum int) (*queueClass, error) {
	switch policy {
	case ClassRoundRobin:
		if quantum <= 0 {
			return nil, fmt.Errorf("%s class: %w, got %d", name, ErrInvalidQuantum, quantum)
		}
	case ClassFirstComeFirstServe:
		quantum = math.MaxInt
	default:
		return nil, fmt.Errorf("%s class: %w %q", name, ErrUnknownPolicy, policy)
	}
	return &queueClass{name: name, policy: policy, quantum: quantum}, nil
}

func (c *queueClass) pop() *task {
	t := c.queue[0]
	c.queue = c.queue[1:]
	return t
}

// requeue puts back a task that still has work. Round robin sends it to
// the tail; FCFS keeps its place at the head.
func (c *queueClass) requeue(t *task) {
	if c.policy == ClassRoundRobin {
		c.queue = append(c.queue, t)
		return
	}
	c.queue = append([]*task{t}, c.queue...)
}

func isForeground(p core.Process) bool {
	return p.PriorityValue() <= foregroundMaxPriority
}

func ScheduleMultilevelQueue(processes []core.Process, cfg MultilevelQueue) (core.SimulationResult, error) {
	fg, err := newQueueClass("foreground", cfg.FgPolicy, cfg.FgQuantum)
	if err != nil {
		return core.SimulationResult{}, err
	}
	bg, err := newQueueClass("background", cfg.BgPolicy, cfg.BgQuantum)
	if err != nil {
		return core.SimulationResult{}, err
	}
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	logrus.Debugf("mlq algorithm with foreground %s/%d, background %s/%d", cfg.FgPolicy, cfg.FgQuantum, cfg.BgPolicy, cfg.BgQuantum)

	tasks := newTasks(processes)
	incoming := &arrivals{tasks: tasks}
	admit := func(clock int) {
		for _, t := range incoming.until(clock) {
			if isForeground(t.Process) {
				fg.queue = append(fg.queue, t)
			} else {
				bg.queue = append(bg.queue, t)
			}
		}
	}
	nextForegroundArrival := func(clock int) (int, bool) {
		for _, t := range tasks {
			if t.Arrival > clock && isForeground(t.Process) {
				return t.Arrival, true
			}
		}
		return 0, false
	}

	cpu := core.NewCPU()
	var current *task
	var class *queueClass
	used, limit := 0, 0
	clock := 0

	for !allDone(tasks) {
		admit(clock)
		if current == nil {
			switch {
			case len(fg.queue) > 0:
				class = fg
			case len(bg.queue) > 0:
				class = bg
			default:
				clock++
				continue
			}
			current = class.pop()
			used, limit = 0, class.quantum
			if class == bg {
				if at, ok := nextForegroundArrival(clock); ok {
					limit = min(limit, at-clock)
				}
			}
			logrus.Tracef("pid: %s dispatched from %s class at t=%d for up to %d units", current.ID, class.name, clock, limit)
		}

		cpu.Run(current.ID, clock, clock+1)
		current.remaining--
		used++
		clock++
		admit(clock)

		switch {
		case current.remaining == 0:
			current = nil
		case used >= limit:
			class.requeue(current)
			current = nil
		}
	}
	return metrics.ComputeMetrics(processes, cpu.Trace()), nil
}
