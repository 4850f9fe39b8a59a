package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "raporku_backend/internals/features/school/subjects/controller"
)

// RegisterSubjectAdminRoutes
// Base: /api/a/subjects
func RegisterSubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// RegisterSubjectUserRoutes
// Base: /api/u/subjects (read-only)
func RegisterSubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
