package routers

import (
	"hms-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.List)
	router.Post("/", patientController.Create)
	router.Post("/sort/{field}", patientController.ToggleSort)
	router.Put("/{id}", patientController.Update)
	router.Delete("/{id}", patientController.Delete)
}
