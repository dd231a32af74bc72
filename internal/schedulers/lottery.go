package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/util"
)

// TicketDrawer picks a winning ticket in [0, n). *core.LCG and *rand.Rand
// both satisfy it.
type TicketDrawer interface {
	Intn(n int) int
}

// Lottery awards every time unit to a ticket drawn uniformly over the ready
// tasks' tickets. Draws come from Rand when set, otherwise from an LCG
// seeded with Seed, so equal inputs give equal schedules.
type Lottery struct {
	DefaultTickets int
	Seed           int64
	Rand           TicketDrawer
}

func (Lottery) Name() string { return NameLottery }

func (Lottery) policy() {}

func (l Lottery) Schedule(processes []core.Process) (core.SimulationResult, error) {
	drawer := l.Rand
	if drawer == nil {
		drawer = core.NewLCG(l.Seed)
	}
	return ScheduleLottery(processes, l.DefaultTickets, drawer), nil
}

func ScheduleLottery(processes []core.Process, defaultTickets int, drawer TicketDrawer) core.SimulationResult {
	if len(processes) == 0 {
		return core.EmptyResult()
	}
	tasks := newTasks(processes)
	for _, t := range tasks {
		t.tickets = ticketsOf(t.Process, defaultTickets)
	}
	logrus.Debugf("lottery algorithm with default tickets = %d", defaultTickets)

	draw := func(candidates []*task, _ int) *task {
		total := 0
		for _, t := range candidates {
			total += t.tickets
		}
		winner := drawer.Intn(total)
		for _, t := range candidates {
			if winner < t.tickets {
				return t
			}
			winner -= t.tickets
		}
		return candidates[len(candidates)-1]
	}
	return metrics.ComputeMetrics(processes, runQuantized(tasks, draw, nil))
}

// ticketsOf returns the process's tickets or the default, clamped to >= 1.
func ticketsOf(p core.Process, defaultTickets int) int {
	tickets := defaultTickets
	if p.Tickets != nil {
		tickets = *p.Tickets
	}
	return util.ClampMin(tickets, 1)
}
