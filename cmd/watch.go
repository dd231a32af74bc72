package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the comparison every time the workload file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cliConfig
		out := cmd.OutOrStdout()
		rerun := func() {
			if err := runComparison(cmd, cfg, out); err != nil {
				logrus.Errorf("comparison failed: %v", err)
			}
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		// editors often replace the file, so watch its directory
		absPath, err := filepath.Abs(workloadPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		if err := watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		rerun()
		var pending <-chan time.Time
		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != absPath || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				pending = time.After(watchDebounce)
			case <-pending:
				pending = nil
				logrus.Infof("%s changed, re-running comparison", workloadPath)
				rerun()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logrus.Warnf("watch error: %v", err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file with the process set")
	watchCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies (default: workload list, else all)")
	watchCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the comparison to this .xlsx file")
	_ = watchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(watchCmd)
}
