package requests

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type Job struct {
	ProcessId    string   `json:"process_id" yaml:"process_id"`
	ArrivalTime  int      `json:"arrival_time" yaml:"arrival_time"`
	BurstTime    int      `json:"burst_time" yaml:"burst_time"`
	Priority     *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Tickets      *int     `json:"tickets,omitempty" yaml:"tickets,omitempty"`
	Share        *float64 `json:"share,omitempty" yaml:"share,omitempty"`
	Nice         *int     `json:"nice,omitempty" yaml:"nice,omitempty"`
	Group        string   `json:"group,omitempty" yaml:"group,omitempty"`
	Period       *int     `json:"period,omitempty" yaml:"period,omitempty"`
	Deadline     *int     `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	InitialQueue string   `json:"initial_queue,omitempty" yaml:"initial_queue,omitempty"`
	InitialLevel *int     `json:"initial_level,omitempty" yaml:"initial_level,omitempty"`
}

// ScheduleRequests is the body of a simulation request and the layout of a
// workload file. Policies is only read by comparison requests; Options
// overrides the configured defaults field by field.
type ScheduleRequests struct {
	Jobs     []Job                       `json:"jobs" yaml:"jobs"`
	Policies []string                    `json:"policies,omitempty" yaml:"policies,omitempty"`
	Options  *schedulers.OptionsOverride `json:"options,omitempty" yaml:"options,omitempty"`
}

func (j Job) toProcess() core.Process {
	return core.Process{
		ID:           j.ProcessId,
		Arrival:      j.ArrivalTime,
		Burst:        j.BurstTime,
		Priority:     j.Priority,
		Tickets:      j.Tickets,
		Share:        j.Share,
		Nice:         j.Nice,
		Group:        j.Group,
		Period:       j.Period,
		Deadline:     j.Deadline,
		InitialQueue: j.InitialQueue,
		InitialLevel: j.InitialLevel,
	}
}

// ToProcesses converts and validates the jobs.
func (r *ScheduleRequests) ToProcesses() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		processes = append(processes, j.toProcess())
	}
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// ResolveOptions applies the request's overrides on top of base.
func (r *ScheduleRequests) ResolveOptions(base schedulers.Options) schedulers.Options {
	return r.Options.Apply(base)
}

// ResolvePolicies returns the requested policies, or every policy when none
// were named. Unknown names are rejected.
func (r *ScheduleRequests) ResolvePolicies() ([]string, error) {
	if len(r.Policies) == 0 {
		return schedulers.PolicyNames(), nil
	}
	for _, name := range r.Policies {
		if !schedulers.ValidPolicies[name] {
			return nil, fmt.Errorf("%w %q", schedulers.ErrUnknownPolicy, name)
		}
	}
	return r.Policies, nil
}

// LoadScheduleRequests reads a workload file. YAML and JSON are both accepted.
func LoadScheduleRequests(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	var request ScheduleRequests
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	return &request, nil
}
