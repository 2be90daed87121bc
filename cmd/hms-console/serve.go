package main

import (
	"context"
	"errors"
	"hms-console/internal/app/config"
	"hms-console/internal/app/delivery/http/controllers"
	"hms-console/internal/app/delivery/http/middlewares"
	"hms-console/internal/app/delivery/http/routers"
	"hms-console/internal/app/drivers/metrics"
	"hms-console/internal/app/services/console"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(app *cliApp) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the console API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				app.internalConfig.App.Port = port
			}
			return runServer(cmd.Context(), app)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen address, overrides APP_PORT")
	return cmd
}

func runServer(ctx context.Context, app *cliApp) error {
	session := app.newSession(nil)
	session.Load(ctx)

	chiRouter := chi.NewRouter()
	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         app.log,
		InternalConfig: app.internalConfig,
		DriverConfig:   app.driverConfig,
		StoreClose:     session.Close,
	}
	bootstrapingTheApp(bootstrap, session, app.metrics)

	server := &http.Server{
		Addr:    app.internalConfig.App.Port,
		Handler: chiRouter,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.log.Info("Console API listening",
			zap.String("address", app.internalConfig.App.Port),
			zap.String("hms_base_url", app.internalConfig.HMS.BaseUrl),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			app.log.Error("Server failed to start", zap.Error(err))
			_ = bootstrap.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
	}

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(app.internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.log.Error("Server forced to shutdown", zap.Error(err))
		_ = bootstrap.Shutdown(shutdownCtx)
		return err
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("Server exiting")
	return nil
}

func bootstrapingTheApp(bootstrap config.Bootstrap, session *console.Session, collector *metrics.Collector) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Controllers
	patientController := controllers.NewPatientController(bootstrap.Logger, session.PatientView, session.Patients)
	staffController := controllers.NewStaffController(bootstrap.Logger, session.DoctorView, session.NurseView, session.Staff)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, session.AppointmentView, session.Appointments)
	departmentController := controllers.NewDepartmentController(bootstrap.Logger, session.DepartmentView)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, session.Feed)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		collector.Handler(),
		patientController,
		staffController,
		appointmentController,
		departmentController,
		notificationController,
	)
}
