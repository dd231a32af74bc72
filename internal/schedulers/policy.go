package schedulers

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownPolicy  = errors.New("unknown scheduling policy")
	ErrInvalidQuantum = errors.New("time quantum must be > 0")
)

// Policy is one scheduling algorithm together with its configuration.
// The set of implementations is closed: only types in this package satisfy it.
type Policy interface {
	Name() string
	Schedule(processes []core.Process) (core.SimulationResult, error)
	policy()
}

const (
	NameFCFS      = "fcfs"
	NameSJF       = "sjf"
	NameSRTF      = "srtf"
	NameRR        = "rr"
	NamePriority  = "priority"
	NameHRRN      = "hrrn"
	NameMLFQ      = "mlfq"
	NameLottery   = "lottery"
	NameStride    = "stride"
	NameFairShare = "fair-share"
	NameCFS       = "cfs"
	NameAging     = "aging"
	NameMLQ       = "mlq"
	NameRM        = "rm"
	NameDM        = "dm"
)

var policyNames = []string{
	NameFCFS, NameSJF, NameSRTF, NameRR, NamePriority, NameHRRN,
	NameMLFQ, NameLottery, NameStride, NameFairShare, NameCFS,
	NameAging, NameMLQ, NameRM, NameDM,
}

// ValidPolicies is the set of recognized policy names.
var ValidPolicies = func() map[string]bool {
	m := make(map[string]bool, len(policyNames))
	for _, n := range policyNames {
		m[n] = true
	}
	return m
}()

// PolicyNames lists every policy in presentation order.
func PolicyNames() []string {
	out := make([]string, len(policyNames))
	copy(out, policyNames)
	return out
}

// NewPolicy builds the named policy from opts.
func NewPolicy(name string, opts Options) (Policy, error) {
	switch name {
	case NameFCFS:
		return FirstComeFirstServe{}, nil
	case NameSJF:
		return ShortestJobFirst{}, nil
	case NameSRTF:
		return ShortestRemainingTimeFirst{}, nil
	case NameRR:
		return RoundRobin{Quantum: opts.Quantum}, nil
	case NamePriority:
		return Priority{}, nil
	case NameHRRN:
		return HighestResponseRatioNext{}, nil
	case NameMLFQ:
		return MultilevelFeedbackQueue{Levels: opts.Levels, BaseQuantum: opts.BaseQuantum, BoostPeriod: opts.BoostPeriod}, nil
	case NameLottery:
		return Lottery{DefaultTickets: opts.DefaultTickets, Seed: opts.Seed}, nil
	case NameStride:
		return Stride{DefaultTickets: opts.DefaultTickets}, nil
	case NameFairShare:
		return FairShare{DefaultShare: opts.DefaultShare}, nil
	case NameCFS:
		return CompletelyFair{DefaultNice: opts.DefaultNice}, nil
	case NameAging:
		return PriorityAging{Rate: opts.AgingRate}, nil
	case NameMLQ:
		return MultilevelQueue{FgPolicy: opts.FgPolicy, FgQuantum: opts.FgQuantum, BgPolicy: opts.BgPolicy, BgQuantum: opts.BgQuantum}, nil
	case NameRM:
		return RateMonotonic{DefaultPeriod: opts.DefaultPeriod}, nil
	case NameDM:
		return DeadlineMonotonic{DefaultDeadline: opts.DefaultDeadline}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
}

// Simulate validates processes and runs the named policy on them.
func Simulate(name string, processes []core.Process, opts Options) (core.SimulationResult, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return core.SimulationResult{}, err
	}
	p, err := NewPolicy(name, opts)
	if err != nil {
		return core.SimulationResult{}, err
	}
	logrus.Debugf("running %s algorithm on %d processes", p.Name(), len(processes))
	result, err := p.Schedule(processes)
	if err != nil {
		return core.SimulationResult{}, fmt.Errorf("%s: %w", p.Name(), err)
	}
	return result, nil
}
