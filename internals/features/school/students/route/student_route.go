package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "raporku_backend/internals/features/school/students/controller"
)

// RegisterStudentAdminRoutes
// Base: /api/a/students
func RegisterStudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// RegisterStudentUserRoutes
// Base: /api/u/students (read-only)
func RegisterStudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
