// Package export writes simulation results to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cpu-scheduler/internal/schedulers"
)

const ComparisonSheet = "comparison"

var comparisonHeader = []interface{}{
	"policy", "avg waiting", "avg turnaround", "avg response", "fairness",
	"makespan", "idle time", "utilization", "throughput", "context switches",
	"avg slowdown", "max slowdown", "stddev waiting", "stddev turnaround",
	"stddev response", "error",
}

var traceHeader = []interface{}{"process", "start", "end"}

// WriteComparison saves a comparison sheet plus one trace sheet per policy.
func WriteComparison(path string, runs []schedulers.Run) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ComparisonSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := setRow(f, ComparisonSheet, 1, comparisonHeader); err != nil {
		return err
	}
	for i, run := range runs {
		r := run.Row
		row := []interface{}{
			r.Policy, r.MeanWaiting, r.MeanTurnaround, r.MeanResponse, r.Fairness,
			r.Makespan, r.IdleTime, r.Utilization, r.Throughput, r.ContextSwitches,
			r.MeanSlowdown, r.MaxSlowdown, r.StdDevWaiting, r.StdDevTurnaround,
			r.StdDevResponse, r.Error,
		}
		if err := setRow(f, ComparisonSheet, i+2, row); err != nil {
			return err
		}
		if err := writeTrace(f, run); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}
	return nil
}

func writeTrace(f *excelize.File, run schedulers.Run) error {
	sheet := "trace-" + run.Policy
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, traceHeader); err != nil {
		return err
	}
	for i, s := range run.Result.Trace {
		if err := setRow(f, sheet, i+2, []interface{}{s.ProcessID, s.Start, s.End}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
