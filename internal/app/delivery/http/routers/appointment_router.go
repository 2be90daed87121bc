package routers

import (
	"hms-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.List)
	router.Post("/", appointmentController.Create)
	router.Post("/sort/{field}", appointmentController.ToggleSort)
	router.Get("/departments", appointmentController.Departments)
}

func attachDepartmentRoutes(router chi.Router, departmentController *controllers.DepartmentController) {
	router.Get("/", departmentController.List)
	router.Post("/sort/{field}", departmentController.ToggleSort)
}
