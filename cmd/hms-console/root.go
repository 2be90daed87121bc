package main

import (
	"hms-console/internal/app/config"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/drivers/logger"
	"hms-console/internal/app/drivers/metrics"
	"hms-console/internal/app/services/console"
	"hms-console/internal/app/services/hmsapi"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cliApp struct {
	internalConfig *config.InternalConfig
	driverConfig   *config.DriverConfig
	log            *zap.Logger
	metrics        *metrics.Collector
}

func (a *cliApp) init(baseURL, env string) error {
	a.internalConfig = config.NewInternalConfig()
	a.driverConfig = config.NewDriverConfig()
	if baseURL != "" {
		a.internalConfig.HMS.BaseUrl = strings.TrimRight(baseURL, "/")
	}
	if env != "" {
		a.internalConfig.App.Env = env
	}
	if err := a.internalConfig.Validate(); err != nil {
		return err
	}

	a.log = logger.NewZapLogger(a.driverConfig, a.internalConfig)
	a.metrics = metrics.NewPrometheusCollector()
	return nil
}

// newSession wires a page session against the configured hospital API.
// notify may be nil.
func (a *cliApp) newSession(notify contracts.Notifier) *console.Session {
	timeout := a.internalConfig.HMS.RequestTimeout()
	return console.NewSession(console.Dependencies{
		Log:      a.log,
		Fetcher:  hmsapi.NewCollectionFetcher(a.internalConfig.HMS.BaseUrl, timeout, a.log, a.metrics),
		Client:   hmsapi.NewMutationClient(a.internalConfig.HMS.BaseUrl, timeout, a.log),
		Metrics:  a.metrics,
		Notifier: notify,
		FeedSize: a.internalConfig.App.NotificationFeedSize,
	})
}

func newRootCommand() *cobra.Command {
	app := &cliApp{}
	var baseURL, env string

	rootCmd := &cobra.Command{
		Use:           "hms-console",
		Short:         "Console for the hospital management API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(baseURL, env)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "hospital API base URL, overrides HMS_BASE_URL")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "application environment (development or production), overrides APP_ENV")

	rootCmd.AddCommand(serveCmd(app))
	rootCmd.AddCommand(patientsCmd(app))
	rootCmd.AddCommand(staffCmd(app))
	rootCmd.AddCommand(appointmentsCmd(app))
	rootCmd.AddCommand(departmentsCmd(app))

	return rootCmd
}
