package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "raporku_backend/internals/features/school/grades/controller"
)

// RegisterGradeAdminRoutes
// Base: /api/a/grades
func RegisterGradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	g := r.Group("/grades")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// RegisterGradeUserRoutes
// Base: /api/u/grades (read-only)
func RegisterGradeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	g := r.Group("/grades")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
