package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *cliConfig
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		app := api.NewApp(api.NewSchedulerHandlerImpl(&cfg))

		go func() {
			<-cmd.Context().Done()
			logrus.Info("shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.Warnf("shutdown: %v", err)
			}
		}()

		logrus.Infof("listening on :%d", cfg.Port)
		return app.Listen(fmt.Sprintf(":%d", cfg.Port))
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
