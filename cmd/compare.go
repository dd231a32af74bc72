package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/export"
	"cpu-scheduler/internal/schedulers"
)

var (
	comparePolicies []string
	xlsxPath        string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate several policies on a workload file and compare them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComparison(cmd, cliConfig, cmd.OutOrStdout())
	},
}

// runComparison loads the workload, runs every selected policy and prints
// the table. Flags win over the workload's own policy list.
func runComparison(cmd *cobra.Command, cfg *config.SchedulerConfig, out io.Writer) error {
	request, opts, err := loadWorkload(cfg)
	if err != nil {
		return err
	}
	processes, err := request.ToProcesses()
	if err != nil {
		return err
	}
	if len(comparePolicies) > 0 {
		request.Policies = comparePolicies
	}
	policies, err := request.ResolvePolicies()
	if err != nil {
		return err
	}

	logrus.Infof("Comparing %d policies on %d processes", len(policies), len(processes))
	runs, err := schedulers.Compare(cmd.Context(), processes, policies, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderComparison(schedulers.Rows(runs)))

	if xlsxPath != "" {
		if err := export.WriteComparison(xlsxPath, runs); err != nil {
			return err
		}
		logrus.Infof("Comparison written to %s", xlsxPath)
	}
	return nil
}

func init() {
	compareCmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file with the process set")
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies (default: workload list, else all)")
	compareCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the comparison to this .xlsx file")
	_ = compareCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(compareCmd)
}
