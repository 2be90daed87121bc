package routers

import (
	"fmt"
	"hms-console/internal/app/config"
	"hms-console/internal/app/delivery/http/controllers"
	"hms-console/internal/app/delivery/http/middlewares"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	patientController *controllers.PatientController,
	staffController *controllers.StaffController,
	appointmentController *controllers.AppointmentController,
	departmentController *controllers.DepartmentController,
	notificationController *controllers.NotificationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	if metricsHandler != nil {
		router.Method(http.MethodGet, internalConfig.App.MetricsPath, metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})

		r.Route("/staff", func(r chi.Router) {
			attachStaffRoutes(r, staffController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		r.Route("/departments", func(r chi.Router) {
			attachDepartmentRoutes(r, departmentController)
		})

		r.Get("/notifications", notificationController.Drain)
	})
}
