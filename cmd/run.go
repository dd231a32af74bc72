package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/schedulers"
)

var policyName string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one policy on a workload file",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, opts, err := loadWorkload(cliConfig)
		if err != nil {
			return err
		}
		processes, err := request.ToProcesses()
		if err != nil {
			return err
		}

		logrus.Infof("Starting %s simulation with %d processes", policyName, len(processes))
		result, err := schedulers.Simulate(policyName, processes, opts)
		if err != nil {
			return err
		}
		kpis := metrics.ComputeGeneralKpis(processes, result.Trace)
		fmt.Fprintln(cmd.OutOrStdout(), renderResult(policyName, result, kpis))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file with the process set")
	runCmd.Flags().StringVarP(&policyName, "policy", "p", schedulers.NameFCFS, "Scheduling policy")
	_ = runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}
