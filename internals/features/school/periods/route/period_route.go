package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodController "raporku_backend/internals/features/school/periods/controller"
)

// RegisterPeriodAdminRoutes
// Base: /api/a/periods
func RegisterPeriodAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := periodController.NewPeriodController(db)

	g := r.Group("/periods")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Post("/:id/activate", ctrl.Activate)
	g.Delete("/:id", ctrl.Delete)
}

// RegisterPeriodUserRoutes
// Base: /api/u/periods (read-only)
func RegisterPeriodUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := periodController.NewPeriodController(db)

	g := r.Group("/periods")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
