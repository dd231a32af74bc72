package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"cpu-scheduler/internal/core"
)

var (
	muted = lipgloss.Color("#666666")
	white = lipgloss.Color("#FFFFFF")
	red   = lipgloss.Color("#FF0000")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(white)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(red).Padding(0, 1)
)

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func renderResult(policy string, result core.SimulationResult, kpis core.GeneralKpis) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("▸ " + strings.ToUpper(policy)))
	b.WriteString("\n")

	slices := make([]string, 0, len(result.Trace))
	for _, s := range result.Trace {
		slices = append(slices, fmt.Sprintf("%s[%d-%d]", s.ProcessID, s.Start, s.End))
	}
	b.WriteString(mutedStyle.Render("  trace: "))
	b.WriteString(strings.Join(slices, " "))
	b.WriteString("\n\n")

	details := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("pid", "arrival", "burst", "start", "completion", "waiting", "turnaround", "response").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, d := range result.Details {
		details.Row(d.ID, strconv.Itoa(d.Arrival), strconv.Itoa(d.Burst), strconv.Itoa(d.FirstStart),
			strconv.Itoa(d.Completion), strconv.Itoa(d.Waiting), strconv.Itoa(d.Turnaround), strconv.Itoa(d.Response))
	}
	b.WriteString(details.Render())
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s  %s %s  %s %s\n",
		mutedStyle.Render("avg waiting:"), f2(result.MeanWaiting),
		mutedStyle.Render("avg turnaround:"), f2(result.MeanTurnaround),
		mutedStyle.Render("avg response:"), f2(result.MeanResponse))
	fmt.Fprintf(&b, "  %s %d  %s %s  %s %d",
		mutedStyle.Render("makespan:"), kpis.Makespan,
		mutedStyle.Render("utilization:"), f2(kpis.Utilization),
		mutedStyle.Render("context switches:"), kpis.ContextSwitches)
	return b.String()
}

func renderComparison(rows []core.ComparisonRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("policy", "waiting", "turnaround", "response", "jain", "makespan", "util", "switches", "max slowdown").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row].Error != "" {
				return errorStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		if r.Error != "" {
			t.Row(r.Policy, "error: "+r.Error, "", "", "", "", "", "", "")
			continue
		}
		t.Row(r.Policy, f2(r.MeanWaiting), f2(r.MeanTurnaround), f2(r.MeanResponse),
			strconv.FormatFloat(r.Fairness, 'f', 3, 64), strconv.Itoa(r.Makespan),
			f2(r.Utilization), strconv.Itoa(r.ContextSwitches), f2(r.MaxSlowdown))
	}
	return t.Render()
}
