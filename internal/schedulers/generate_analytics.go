package schedulers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// Run pairs a policy name with its simulation output.
type Run struct {
	Policy string
	Result core.SimulationResult
	Row    core.ComparisonRow
}

// Compare simulates every named policy on its own copy of processes and
// summarizes each into a ComparisonRow, in the order the names were given
// (duplicates dropped). A policy that fails gets a row with Error set; only
// invalid processes, an unknown name or a cancelled ctx fail the whole call.
func Compare(ctx context.Context, processes []core.Process, names []string, opts Options) ([]Run, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	names = dedupe(names)
	policies := make([]Policy, 0, len(names))
	for _, name := range names {
		p, err := NewPolicy(name, opts)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	runs := make([]Run, len(policies))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range policies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[i] = runPolicy(p, clone(processes))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Rows extracts the comparison rows from runs.
func Rows(runs []Run) []core.ComparisonRow {
	rows := make([]core.ComparisonRow, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, r.Row)
	}
	return rows
}

func runPolicy(p Policy, processes []core.Process) Run {
	run := Run{Policy: p.Name(), Row: core.ComparisonRow{Policy: p.Name()}}
	result, err := p.Schedule(processes)
	if err != nil {
		logrus.Warnf("[%s] can not process request: %v", p.Name(), err)
		run.Row.Error = err.Error()
		run.Result = core.EmptyResult()
		return run
	}
	run.Result = result
	run.Row = generateComparisonRow(p.Name(), processes, result)
	return run
}

func generateComparisonRow(policy string, processes []core.Process, result core.SimulationResult) core.ComparisonRow {
	return core.ComparisonRow{
		Policy:         policy,
		MeanWaiting:    result.MeanWaiting,
		MeanTurnaround: result.MeanTurnaround,
		MeanResponse:   result.MeanResponse,
		Fairness:       metrics.FairnessByWaiting(processes, result.Trace),
		GeneralKpis:    metrics.ComputeGeneralKpis(processes, result.Trace),
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// clone copies processes, including the optional fields behind pointers.
func clone(processes []core.Process) []core.Process {
	out := make([]core.Process, len(processes))
	for i, p := range processes {
		p.Priority = cloneInt(p.Priority)
		p.Tickets = cloneInt(p.Tickets)
		p.Nice = cloneInt(p.Nice)
		p.Period = cloneInt(p.Period)
		p.Deadline = cloneInt(p.Deadline)
		p.InitialLevel = cloneInt(p.InitialLevel)
		if p.Share != nil {
			p.Share = core.FloatPtr(*p.Share)
		}
		out[i] = p
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return core.IntPtr(*v)
}
