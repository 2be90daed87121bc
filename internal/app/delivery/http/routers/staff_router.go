package routers

import (
	"hms-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, staffController *controllers.StaffController) {
	router.Get("/", staffController.List)
	router.Post("/", staffController.Create)
	router.Post("/sort/{field}", staffController.ToggleSort)
	router.Put("/{id}", staffController.Update)
	router.Delete("/{id}", staffController.Delete)
}
