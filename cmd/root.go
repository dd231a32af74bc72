package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

var (
	configPath   string // Path to config.yaml
	logLevel     string // Log verbosity level
	workloadPath string // Workload file (YAML or JSON)

	cliConfig *config.SchedulerConfig // Loaded once per invocation
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpu-scheduler",
	Short:         "CPU scheduling policy simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// an explicit --log wins over log_level from the config
		name := cfg.LogLevel
		if cmd.Flags().Changed("log") {
			name = logLevel
		}
		level, err := logrus.ParseLevel(name)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		cliConfig = cfg
		return nil
	},
}

// Execute runs the CLI root command until it returns or SIGINT/SIGTERM
// cancels its context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic); default log_level from the config")
}

// loadConfig uses the cached ./config.yaml unless --config names another file.
func loadConfig() (*config.SchedulerConfig, error) {
	if configPath == "" {
		return config.GetSchedulerConfig()
	}
	return config.LoadSchedulerConfig(configPath)
}

// loadWorkload reads the workload file and resolves its options against the config.
func loadWorkload(cfg *config.SchedulerConfig) (*requests.ScheduleRequests, schedulers.Options, error) {
	request, err := requests.LoadScheduleRequests(workloadPath)
	if err != nil {
		return nil, schedulers.Options{}, err
	}
	return request, request.ResolveOptions(cfg.Options), nil
}
